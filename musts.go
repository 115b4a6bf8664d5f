package radint

import "fmt"

// MustParse is like Parse but panics if the radix is invalid.
func MustParse(s string, radix int) Int {
	v, err := Parse(s, radix)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %d) failed: %v", s, radix, err))
	}
	return v
}

// MustAdd is like Add but panics if the radices differ.
func (i Int) MustAdd(n Int) Int {
	v, err := i.Add(n)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", n, err))
	}
	return v
}

// MustSub is like Sub but panics if the radices differ.
func (i Int) MustSub(n Int) Int {
	v, err := i.Sub(n)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", n, err))
	}
	return v
}

// MustMul is like Mul but panics if the radices differ.
func (i Int) MustMul(n Int) Int {
	v, err := i.Mul(n)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", n, err))
	}
	return v
}
