package radint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIn(t *testing.T) {
	for idx, tc := range []struct {
		in       string
		from, to int
		out      string
	}{
		{"0", 10, 2, "0"},
		{"255", 10, 16, "ff"},
		{"-255", 10, 16, "-ff"},
		{"ff", 16, 2, "11111111"},
		{"11111111", 2, 36, "73"},
		{"zz", 36, 10, "1295"},
		{"1295", 10, 36, "zz"},
		{"-1", 36, 2, "-1"},
		{"ff", 16, 16, "ff"},
	} {
		t.Run(fmt.Sprintf("%d/%s:%d->%d", idx, tc.in, tc.from, tc.to), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := MustParse(tc.in, tc.from).In(tc.to)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
			tt.MustEqual(tc.to, v.Radix())
			assertNormalized(tt, v)
		})
	}
}

func TestInInvalidRadix(t *testing.T) {
	for _, radix := range []int{-1, 0, 1, 37, 300} {
		t.Run(fmt.Sprint(radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := dec("10").In(radix)
			tt.MustAssert(errors.Is(err, InvalidRadix), "unexpected error %v", err)
		})
	}
}

func TestSameRadix(t *testing.T) {
	tt := assert.WrapTB(t)
	a, b := hex("ff"), dec("1")

	_, err := a.Add(b)
	tt.MustAssert(errors.Is(err, RadixMismatch))

	b, err = a.SameRadix(b)
	tt.MustOK(err)
	tt.MustEqual(16, b.Radix())
	tt.MustEqual("100", a.MustAdd(b).String())
}
