package radint

import "unicode/utf8"

// Parse creates an Int from its text representation in the given radix.
//
// A leading '-' makes the result negative. Every other character is read as a
// case-insensitive digit from the alphabet 0-9a-z; characters that are not
// valid digits in radix (including a leading '+', whitespace, or a '-' that is
// not the first character) are skipped. Leading zeros are discarded and "-0"
// yields 0. Use ParseStrict to reject malformed input instead.
//
// An *Error wrapping InvalidRadix is returned if radix is outside
// [MinRadix, MaxRadix].
func Parse(s string, radix int) (Int, error) {
	r, err := narrowRadix("parse", radix)
	if err != nil {
		return zeroInt, err
	}

	out := Int{radix: r}
	digits := make([]uint8, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if d := digitValues[s[i]]; int(d) < radix {
			digits = append(digits, d)
		}
	}

	out.digits = trimDigits(digits)
	if len(out.digits) > 0 && len(s) > 0 && s[0] == '-' {
		out.neg = true
	}
	return out, nil
}

// ParseStrict creates an Int from its text representation in the given radix.
// The input must be an optional '+' or '-' followed by at least one digit
// valid in radix; anything else produces an *Error wrapping InvalidDigit.
func ParseStrict(s string, radix int) (Int, error) {
	r, err := narrowRadix("parse", radix)
	if err != nil {
		return zeroInt, err
	}

	out := Int{radix: r}
	start := 0
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		out.neg = s[0] == '-'
		start = 1
	}
	if start == len(s) {
		return zeroInt, &Error{Kind: InvalidDigit, Op: "parse", Radix: radix, Pos: -1}
	}

	digits := make([]uint8, len(s)-start)
	for i := start; i < len(s); i++ {
		d := digitValues[s[i]]
		if int(d) >= radix {
			ch, _ := utf8.DecodeRuneInString(s[i:])
			return zeroInt, &Error{Kind: InvalidDigit, Op: "parse", Radix: radix, Pos: i, Char: ch}
		}
		digits[len(s)-1-i] = d
	}

	out.digits = trimDigits(digits)
	if len(out.digits) == 0 {
		out.neg = false
	}
	return out, nil
}
