package radint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestParse(t *testing.T) {
	for idx, tc := range []struct {
		in     string
		radix  int
		out    string
		digits []uint8
	}{
		{"", 10, "0", nil},
		{"0", 10, "0", nil},
		{"-0", 10, "0", nil},
		{"-000", 16, "0", nil},
		{"00ff", 16, "ff", []uint8{15, 15}},
		{"-ff", 16, "-ff", []uint8{15, 15}},
		{"FF", 16, "ff", []uint8{15, 15}},
		{"-Ab", 16, "-ab", []uint8{11, 10}},
		{"+12", 10, "12", []uint8{2, 1}},
		{"1-2", 10, "12", []uint8{2, 1}},
		{" -12", 10, "12", []uint8{2, 1}}, // sign must be the first character
		{"1 000 000", 10, "1000000", []uint8{0, 0, 0, 0, 0, 0, 1}},
		{"129", 2, "1", []uint8{1}},
		{"xyz", 10, "0", nil},
		{"-xyz", 10, "0", nil},
		{"Zz", 36, "zz", []uint8{35, 35}},
		{"héllo", 36, "hllo", []uint8{24, 21, 21, 17}},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := Parse(tc.in, tc.radix)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
			tt.MustEqual(tc.digits, v.Digits())
			tt.MustEqual(tc.radix, v.Radix())
			assertNormalized(tt, v)
		})
	}
}

func TestParseInvalidRadix(t *testing.T) {
	for _, radix := range []int{-1, 0, 1, 37, 256, 1 << 20} {
		t.Run(fmt.Sprint(radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for _, fn := range []func(string, int) (Int, error){Parse, ParseStrict} {
				_, err := fn("1", radix)
				tt.MustAssert(errors.Is(err, InvalidRadix), "unexpected error %v", err)

				var rerr *Error
				tt.MustAssert(errors.As(err, &rerr))
				tt.MustEqual(radix, rerr.Radix)
			}
		})
	}
}

func TestParseStrict(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		out   string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"+0", 10, "0"},
		{"+12", 10, "12"},
		{"-12", 10, "-12"},
		{"000", 2, "0"},
		{"0101", 2, "101"},
		{"-00FF", 16, "-ff"},
		{"zZ", 36, "zz"},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := ParseStrict(tc.in, tc.radix)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
			assertNormalized(tt, v)

			lenient, err := Parse(tc.in, tc.radix)
			tt.MustOK(err)
			tt.MustAssert(lenient.Equal(v))
		})
	}
}

func TestParseStrictInvalid(t *testing.T) {
	for idx, tc := range []struct {
		in    string
		radix int
		pos   int
		char  rune
	}{
		{"", 10, -1, 0},
		{"-", 10, -1, 0},
		{"+", 10, -1, 0},
		{"12a", 10, 2, 'a'},
		{"2", 2, 0, '2'},
		{"--1", 10, 1, '-'},
		{"+-1", 10, 1, '-'},
		{" 1", 10, 0, ' '},
		{"1 ", 10, 1, ' '},
		{"1_000", 10, 1, '_'},
		{"1é", 16, 1, 'é'},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := ParseStrict(tc.in, tc.radix)
			tt.MustAssert(errors.Is(err, InvalidDigit), "unexpected error %v", err)
			tt.MustAssert(v.IsZero())

			var rerr *Error
			tt.MustAssert(errors.As(err, &rerr))
			tt.MustEqual(tc.pos, rerr.Pos)
			tt.MustEqual(tc.char, rerr.Char)
			tt.MustEqual(tc.radix, rerr.Radix)
			tt.MustEqual("parse", rerr.Op)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := newTestRNG()
	for i := 0; i < 1000; i++ {
		radix := MinRadix + rng.Intn(MaxRadix-MinRadix+1)
		v := randInt(rng, radix, 50)

		s := v.String()
		for _, fn := range []func(string, int) (Int, error){Parse, ParseStrict} {
			p, err := fn(s, radix)
			tt.MustOK(err)
			tt.MustAssert(p.Equal(v), "%s in radix %d", s, radix)
			tt.MustEqual(s, p.String())
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	MustParse("1", 99)
}
