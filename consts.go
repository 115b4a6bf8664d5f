package radint

const (
	MinRadix = 2
	MaxRadix = 36

	// DefaultRadix is used by the zero value of Int and by UnmarshalText when
	// no radix prefix is present.
	DefaultRadix = 10

	maxInt64  = 1<<63 - 1
	maxUint64 = 1<<64 - 1
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// digitValues maps an input byte to its digit value, or 0xff if the byte is
// not a digit in any supported radix.
var digitValues [256]uint8

var zeroInt Int

func init() {
	for i := range digitValues {
		digitValues[i] = 0xff
	}
	for i := 0; i < len(digitChars); i++ {
		c := digitChars[i]
		digitValues[c] = uint8(i)
		if c >= 'a' {
			digitValues[c-'a'+'A'] = uint8(i)
		}
	}
}
