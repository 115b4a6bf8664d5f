package radint

import (
	"math/big"
	"strconv"
)

// IntFromBigInt creates an Int holding the value of v in the given radix.
func IntFromBigInt(v *big.Int, radix int) (Int, error) {
	if _, err := narrowRadix("frombigint", radix); err != nil {
		return zeroInt, err
	}
	return Parse(v.Text(radix), radix)
}

func IntFrom64(v int64, radix int) (Int, error) {
	if _, err := narrowRadix("from64", radix); err != nil {
		return zeroInt, err
	}
	return Parse(strconv.FormatInt(v, radix), radix)
}

// IntFromDigits creates an Int from a magnitude given least-significant digit
// first. Most-significant zeros are discarded. The digits are copied; an
// *Error wrapping InvalidDigit is returned if any of them is not less than
// radix.
func IntFromDigits(neg bool, digits []uint8, radix int) (Int, error) {
	r, err := narrowRadix("digits", radix)
	if err != nil {
		return zeroInt, err
	}
	for idx, d := range digits {
		if d >= r {
			return zeroInt, &Error{Kind: InvalidDigit, Op: "digits", Radix: radix, Pos: idx}
		}
	}

	out := Int{radix: r}
	out.digits = trimDigits(append([]uint8(nil), digits...))
	out.neg = neg && len(out.digits) > 0
	return out, nil
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	var radix, digit big.Int
	radix.SetUint64(uint64(i.base()))

	b.SetInt64(0)
	for n := len(i.digits) - 1; n >= 0; n-- {
		digit.SetUint64(uint64(i.digits[n]))
		b.Mul(b, &radix)
		b.Add(b, &digit)
	}
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 returns i as an int64. If i does not fit, ok is false and v is 0.
func (i Int) AsInt64() (v int64, ok bool) {
	radix := uint64(i.base())

	var mag uint64
	for n := len(i.digits) - 1; n >= 0; n-- {
		d := uint64(i.digits[n])
		if mag > (maxUint64-d)/radix {
			return 0, false
		}
		mag = mag*radix + d
	}

	if i.neg {
		if mag > maxInt64+1 {
			return 0, false
		}
		return int64(-mag), true
	}
	if mag > maxInt64 {
		return 0, false
	}
	return int64(mag), true
}
