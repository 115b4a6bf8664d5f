package radint

// The functions in this file operate on unsigned magnitudes: digit slices,
// least-significant digit first, in a radix of at most MaxRadix. Operands are
// expected to be normalized (no most-significant zero digit). Results are
// always freshly allocated.

// cmpAbs compares two normalized magnitudes, returning -1, 0 or +1.
func cmpAbs(a, b []uint8) int {
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// addAbs returns a + b. A missing digit in the shorter operand counts as 0.
func addAbs(a, b []uint8, radix uint) []uint8 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make([]uint8, n, n+1)

	var carry uint
	for i := 0; i < n; i++ {
		sum := carry
		if i < len(a) {
			sum += uint(a[i])
		}
		if i < len(b) {
			sum += uint(b[i])
		}
		carry = 0
		if sum >= radix {
			sum -= radix
			carry = 1
		}
		out[i] = uint8(sum)
	}
	if carry != 0 {
		out = append(out, 1)
	}
	return out
}

// subAbs returns a - b. It requires |a| >= |b|; the result is meaningless
// otherwise.
func subAbs(a, b []uint8, radix uint) []uint8 {
	out := make([]uint8, len(a))

	var borrow int
	for i := 0; i < len(a); i++ {
		diff := int(a[i]) - borrow
		if i < len(b) {
			diff -= int(b[i])
		}
		borrow = 0
		if diff < 0 {
			diff += int(radix)
			borrow = 1
		}
		out[i] = uint8(diff)
	}
	return trimDigits(out)
}

// mulAbs returns a * b using the schoolbook method: one partial product of b
// per digit of a, shifted into position and accumulated with addAbs.
func mulAbs(a, b []uint8, radix uint) []uint8 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	var acc []uint8
	partial := make([]uint8, 0, len(a)+len(b))
	for i, ad := range a {
		if ad == 0 {
			// A zero partial product would leave acc with spurious
			// most-significant zeros; skipping it leaves the sum unchanged.
			continue
		}

		partial = partial[:i]
		for j := range partial {
			partial[j] = 0
		}

		var carry uint
		for _, bd := range b {
			prod := uint(ad)*uint(bd) + carry
			carry = prod / radix
			partial = append(partial, uint8(prod-carry*radix))
		}
		if carry > 0 {
			partial = append(partial, uint8(carry))
		}

		acc = addAbs(acc, partial, radix)
	}
	return trimDigits(acc)
}

// mulAbsSmall returns a * m + c. Unlike the digits of a, m and c may be
// greater than or equal to radix; this is what radix conversion needs when the
// source radix is larger than the target.
func mulAbsSmall(a []uint8, m, c uint8, radix uint) []uint8 {
	out := make([]uint8, 0, len(a)+1)
	carry := uint(c)
	for _, d := range a {
		prod := uint(d)*uint(m) + carry
		carry = prod / radix
		out = append(out, uint8(prod-carry*radix))
	}
	for carry > 0 {
		out = append(out, uint8(carry%radix))
		carry /= radix
	}
	return trimDigits(out)
}

// trimDigits strips most-significant zero digits. A fully zero slice becomes
// nil.
func trimDigits(d []uint8) []uint8 {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return d[:n]
}
