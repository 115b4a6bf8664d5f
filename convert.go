package radint

// In returns i re-expressed in the given radix. The value, and therefore the
// sign, is unchanged.
func (i Int) In(radix int) (Int, error) {
	r, err := narrowRadix("convert", radix)
	if err != nil {
		return zeroInt, err
	}

	out := Int{radix: r, neg: i.neg}
	if uint(r) == i.base() {
		out.digits = i.Digits()
		return out, nil
	}

	from := uint8(i.base())
	var acc []uint8
	for n := len(i.digits) - 1; n >= 0; n-- {
		acc = mulAbsSmall(acc, from, i.digits[n], uint(r))
	}
	out.digits = acc
	return out, nil
}

// SameRadix converts n into the radix of i if they differ, so the pair can be
// passed to Add, Sub or Mul.
func (i Int) SameRadix(n Int) (Int, error) {
	if i.base() == n.base() {
		return n, nil
	}
	return n.In(i.Radix())
}
