package main

import (
	"fmt"
	"strconv"
	"strings"

	radint "github.com/shabbyrobe/go-radint"
)

type parseOptions struct {
	radix  int
	strict bool
}

// parseOperand reads a number in opts.radix. An operand written as
// "<radix>:<digits>" is read in its own radix and converted to opts.radix.
func parseOperand(s string, opts parseOptions) (radint.Int, error) {
	radix := opts.radix
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		r, err := strconv.Atoi(s[:idx])
		if err != nil {
			return radint.Int{}, fmt.Errorf("invalid radix prefix in %q", s)
		}
		radix, s = r, s[idx+1:]
	}

	var v radint.Int
	var err error
	if opts.strict {
		v, err = radint.ParseStrict(s, radix)
	} else {
		v, err = radint.Parse(s, radix)
	}
	if err != nil {
		return radint.Int{}, err
	}
	return v.In(opts.radix)
}

type expr struct {
	a, b radint.Int
	op   string
}

// parseExpr reads "<a> <op> <b>", where op is one of + - * cmp.
func parseExpr(line string, opts parseOptions) (expr, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return expr{}, fmt.Errorf("expected '<a> <op> <b>', found %q", line)
	}

	e := expr{op: fields[1]}
	switch e.op {
	case "+", "-", "*", "cmp":
	default:
		return expr{}, fmt.Errorf("unknown operator %q (want + - * cmp)", e.op)
	}

	var err error
	if e.a, err = parseOperand(fields[0], opts); err != nil {
		return expr{}, err
	}
	if e.b, err = parseOperand(fields[2], opts); err != nil {
		return expr{}, err
	}
	return e, nil
}

// eval applies the operator. "cmp" yields -1, 0 or 1 in the operands' radix.
func (e expr) eval() (radint.Int, error) {
	switch e.op {
	case "+":
		return e.a.Add(e.b)
	case "-":
		return e.a.Sub(e.b)
	case "*":
		return e.a.Mul(e.b)
	case "cmp":
		return radint.IntFrom64(int64(e.a.Cmp(e.b)), e.a.Radix())
	}
	return radint.Int{}, fmt.Errorf("unknown operator %q", e.op)
}

func evalLine(line string, opts parseOptions) (radint.Int, error) {
	e, err := parseExpr(line, opts)
	if err != nil {
		return radint.Int{}, err
	}
	return e.eval()
}
