package radint

import (
	"fmt"
	"strconv"
)

func (i Int) String() string {
	return string(i.Append(make([]byte, 0, len(i.digits)+1)))
}

// Append appends the text form of i, as produced by String, to dst.
func (i Int) Append(dst []byte) []byte {
	if len(i.digits) == 0 {
		return append(dst, '0')
	}
	if i.neg {
		dst = append(dst, '-')
	}
	for n := len(i.digits) - 1; n >= 0; n-- {
		dst = append(dst, digitChars[i.digits[n]])
	}
	return dst
}

// Format implements fmt.Formatter. The 'v' and 's' verbs print the same text
// as String, 'q' prints it double-quoted. The '+' flag forces a sign on
// non-negative values. Width pads with spaces, on the right if the '-' flag
// is present.
func (i Int) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's', 'q':
	default:
		fmt.Fprintf(s, "%%!%c(radint.Int=%s)", c, i.String())
		return
	}

	buf := make([]byte, 0, len(i.digits)+3)
	if s.Flag('+') && !i.neg {
		buf = append(buf, '+')
	}
	buf = i.Append(buf)
	if c == 'q' {
		buf = []byte(strconv.Quote(string(buf)))
	}

	if w, ok := s.Width(); ok && w > len(buf) {
		pad := make([]byte, w-len(buf))
		for n := range pad {
			pad[n] = ' '
		}
		if s.Flag('-') {
			buf = append(buf, pad...)
		} else {
			buf = append(pad, buf...)
		}
	}
	s.Write(buf)
}
