/*
Package radint provides an arbitrary-precision signed integer (Int) whose
digits are held in a fixed radix between 2 and 36, supporting parsing,
formatting, magnitude comparison, addition, subtraction and multiplication.

Int is a value type; all operations return new values and never modify or
share the digits of their operands, so an Int may be used freely from many
goroutines at once.

Simple example:

	a := radint.MustParse("ff", 16)
	b := radint.MustParse("ff", 16)
	c, _ := a.Mul(b)
	fmt.Println(c)
	// Output: fe01

Ints can be created from a variety of sources:

	Parse(s string, radix int) (Int, error)
	ParseStrict(s string, radix int) (Int, error)
	MustParse(s string, radix int) Int
	IntFrom64(v int64, radix int) (Int, error)
	IntFromBigInt(v *big.Int, radix int) (Int, error)
	IntFromDigits(neg bool, digits []uint8, radix int) (Int, error)

Both operands of Add, Sub and Mul must share a radix; use Int.In to convert
explicitly. Mismatches are reported as an *Error wrapping RadixMismatch.

Parse is deliberately lenient: a leading '-' marks a negative number and any
character that is not a digit in the radix is skipped. ParseStrict rejects
such input with InvalidDigit instead.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package radint
