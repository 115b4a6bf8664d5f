package radint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// MarshalText encodes i as "<radix>:<digits>", for example "16:-ff".
func (i Int) MarshalText() ([]byte, error) {
	out := strconv.AppendInt(make([]byte, 0, len(i.digits)+4), int64(i.base()), 10)
	out = append(out, ':')
	return i.Append(out), nil
}

// UnmarshalText decodes the output of MarshalText. A value without a radix
// prefix is read in DefaultRadix. Digits are parsed with ParseStrict.
func (i *Int) UnmarshalText(bts []byte) (err error) {
	s := string(bts)
	radix := DefaultRadix
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		radix, err = strconv.Atoi(s[:idx])
		if err != nil {
			return fmt.Errorf("radint: invalid radix prefix in %q: %w", s, err)
		}
		s = s[idx+1:]
	}

	v, err := ParseStrict(s, radix)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	txt, _ := i.MarshalText()
	out := make([]byte, 0, len(txt)+2)
	out = append(out, '"')
	out = append(out, txt...)
	return append(out, '"'), nil
}

// UnmarshalJSON accepts the quoted text form, or the bare text form for
// compatibility. A JSON null leaves i unchanged.
func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("radint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}

// EncodeMsgpack writes i as the array [radix, negative, digits], with digits
// least-significant first.
func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(i.base())); err != nil {
		return err
	}
	if err := enc.EncodeBool(i.neg); err != nil {
		return err
	}
	return enc.EncodeBytes(i.digits)
}

func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 3 {
		return fmt.Errorf("radint: msgpack array has %d elements, expected 3", n)
	}

	radix, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	digits, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	v, err := IntFromDigits(neg, digits, int(radix))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
