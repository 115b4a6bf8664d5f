package radint

// CmpAbs compares the magnitudes of a and b, ignoring their signs, and
// returns:
//
//	-1 if |a| <  |b|
//	 0 if |a| == |b|
//	+1 if |a| >  |b|
//
// Only the digits are inspected; callers are responsible for ensuring a and b
// share a radix.
func CmpAbs(a, b Int) int {
	return cmpAbs(a.digits, b.digits)
}

// LargerAbs returns whichever of a and b has the larger magnitude. If the
// magnitudes are equal, a is returned.
func LargerAbs(a, b Int) Int {
	if cmpAbs(a.digits, b.digits) < 0 {
		return b
	}
	return a
}

// SmallerAbs returns whichever of a and b has the smaller magnitude. If the
// magnitudes are equal, a is returned.
func SmallerAbs(a, b Int) Int {
	if cmpAbs(a.digits, b.digits) > 0 {
		return b
	}
	return a
}

// DifferenceAbs subtracts the smaller of |a| and |b| from the larger. The
// result is never negative.
func DifferenceAbs(a, b Int) (Int, error) {
	if a.base() != b.base() {
		return zeroInt, errRadixMismatch("difference", a, b)
	}
	larger, smaller := LargerAbs(a, b), SmallerAbs(a, b)
	return Int{radix: a.radix, digits: subAbs(larger.digits, smaller.digits, a.base())}, nil
}
