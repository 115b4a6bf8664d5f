package radint_test

import (
	"fmt"

	radint "github.com/shabbyrobe/go-radint"
)

func Example() {
	a := radint.MustParse("ff", 16)
	b := radint.MustParse("ff", 16)
	c, _ := a.Mul(b)
	fmt.Println(c)
	// Output: fe01
}

func ExampleInt_Sub() {
	a := radint.MustParse("1", 16)
	b := radint.MustParse("ff", 16)
	c, _ := a.Sub(b)
	fmt.Println(c)
	// Output: -fe
}

func ExampleInt_In() {
	v := radint.MustParse("-ff", 16)
	d, _ := v.In(10)
	fmt.Println(d, d.Radix())
	// Output: -255 10
}

func ExampleParse() {
	// Characters that are not digits in the radix are skipped:
	v, _ := radint.Parse("-1_000_000", 10)
	fmt.Println(v)

	_, err := radint.ParseStrict("-1_000_000", 10)
	fmt.Println(err)
	// Output:
	// -1000000
	// radint: parse: invalid digit '_' at 2 for radix 10
}
