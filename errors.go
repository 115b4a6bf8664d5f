package radint

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// ErrorKind classifies every error returned by this package. An ErrorKind is
// itself an error, so it can be used as the target of errors.Is:
//
//	if errors.Is(err, radint.RadixMismatch) { ... }
//
type ErrorKind int

const (
	// RadixMismatch is returned by Add, Sub and Mul when the operands are
	// held in different radices.
	RadixMismatch ErrorKind = iota + 1

	// InvalidRadix is returned when a radix outside [MinRadix, MaxRadix] is
	// requested.
	InvalidRadix

	// InvalidDigit is returned by ParseStrict, IntFromDigits and the
	// unmarshalers when the input contains something that is not a digit in
	// the requested radix.
	InvalidDigit
)

func (k ErrorKind) Error() string { return "radint: " + k.String() }

func (k ErrorKind) String() string {
	switch k {
	case RadixMismatch:
		return "radix mismatch"
	case InvalidRadix:
		return "invalid radix"
	case InvalidDigit:
		return "invalid digit"
	default:
		return "unknown error kind " + strconv.Itoa(int(k))
	}
}

// Error describes a failed operation. Unwrap returns the Kind.
type Error struct {
	Kind ErrorKind
	Op   string

	// Radix is the offending radix for InvalidRadix and InvalidDigit, and the
	// receiver's radix for RadixMismatch.
	Radix int

	// Other is the argument's radix for RadixMismatch.
	Other int

	// Pos is the byte offset (ParseStrict) or digit index (IntFromDigits) of
	// an InvalidDigit, or -1 if there is no offending position (empty input).
	Pos  int
	Char rune
}

func (e *Error) Error() string {
	switch e.Kind {
	case RadixMismatch:
		return fmt.Sprintf("radint: %s: radix mismatch (%d != %d)", e.Op, e.Radix, e.Other)
	case InvalidRadix:
		return fmt.Sprintf("radint: %s: invalid radix %d, must be in [%d, %d]", e.Op, e.Radix, MinRadix, MaxRadix)
	case InvalidDigit:
		if e.Pos < 0 {
			return fmt.Sprintf("radint: %s: no digits in input", e.Op)
		}
		if e.Char != 0 {
			return fmt.Sprintf("radint: %s: invalid digit %q at %d for radix %d", e.Op, e.Char, e.Pos, e.Radix)
		}
		return fmt.Sprintf("radint: %s: digit at %d out of range for radix %d", e.Op, e.Pos, e.Radix)
	}
	return fmt.Sprintf("radint: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }

func errRadixMismatch(op string, a, b Int) error {
	return &Error{Kind: RadixMismatch, Op: op, Radix: a.Radix(), Other: b.Radix()}
}

// narrowRadix returns radix as the uint8 stored in an Int, or an *Error
// wrapping InvalidRadix if it is outside [MinRadix, MaxRadix].
func narrowRadix(op string, radix int) (uint8, error) {
	r, err := safecast.Conv[uint8](radix)
	if err != nil || r < MinRadix || r > MaxRadix {
		return 0, &Error{Kind: InvalidRadix, Op: op, Radix: radix}
	}
	return r, nil
}
