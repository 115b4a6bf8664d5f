package radint

// Int is an arbitrary-precision signed integer held as a sign and a magnitude
// of digits in a fixed radix.
//
// The zero value is 0 in DefaultRadix.
type Int struct {
	radix  uint8 // 0 means DefaultRadix
	neg    bool
	digits []uint8 // least-significant first, normalized
}

func (i Int) base() uint {
	if i.radix == 0 {
		return DefaultRadix
	}
	return uint(i.radix)
}

// Radix returns the radix i is held in.
func (i Int) Radix() int { return int(i.base()) }

func (i Int) IsZero() bool { return len(i.digits) == 0 }

// Len returns the number of digits in the magnitude of i. Zero has no digits.
func (i Int) Len() int { return len(i.digits) }

// Digits returns a copy of the magnitude of i, least-significant digit first.
func (i Int) Digits() []uint8 {
	if len(i.digits) == 0 {
		return nil
	}
	out := make([]uint8, len(i.digits))
	copy(out, i.digits)
	return out
}

func (i Int) Sign() int {
	if len(i.digits) == 0 {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Neg returns -i.
func (i Int) Neg() Int {
	i = i.negate()
	i.digits = i.Digits()
	return i
}

func (i Int) Abs() Int {
	i.neg = false
	i.digits = i.Digits()
	return i
}

// negate flips the sign of i without copying its digits.
func (i Int) negate() Int {
	if len(i.digits) == 0 {
		return Int{radix: i.radix}
	}
	i.neg = !i.neg
	return i
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// Like CmpAbs, Cmp only inspects signs and digits; comparing Ints held in
// different radices gives meaningless results.
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := cmpAbs(i.digits, n.digits)
	if i.neg {
		return -c
	}
	return c
}

// Equal reports whether i and n have the same radix, sign and digits.
func (i Int) Equal(n Int) bool {
	return i.base() == n.base() && i.neg == n.neg && cmpAbs(i.digits, n.digits) == 0
}

// Add returns i + n. Both must share a radix, otherwise an *Error wrapping
// RadixMismatch is returned.
func (i Int) Add(n Int) (Int, error) {
	if i.base() != n.base() {
		return zeroInt, errRadixMismatch("add", i, n)
	}
	return i.add(n), nil
}

func (i Int) add(n Int) Int {
	radix := i.base()
	out := Int{radix: i.radix}

	if i.neg == n.neg {
		out.neg = i.neg
		out.digits = addAbs(i.digits, n.digits, radix)
		return out
	}

	larger, smaller := i, n
	switch cmpAbs(i.digits, n.digits) {
	case 0:
		return out
	case -1:
		larger, smaller = n, i
	}
	out.neg = larger.neg
	out.digits = subAbs(larger.digits, smaller.digits, radix)
	return out
}

// Sub returns i - n. Both must share a radix, otherwise an *Error wrapping
// RadixMismatch is returned.
func (i Int) Sub(n Int) (Int, error) {
	if i.base() != n.base() {
		return zeroInt, errRadixMismatch("sub", i, n)
	}
	return i.add(n.negate()), nil
}

// Mul returns the product of i and n. Both must share a radix, otherwise an
// *Error wrapping RadixMismatch is returned.
func (i Int) Mul(n Int) (Int, error) {
	if i.base() != n.base() {
		return zeroInt, errRadixMismatch("mul", i, n)
	}
	out := Int{radix: i.radix}
	out.digits = mulAbs(i.digits, n.digits, i.base())
	if len(out.digits) > 0 {
		out.neg = i.neg != n.neg
	}
	return out, nil
}
