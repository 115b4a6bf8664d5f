// Command radint evaluates arbitrary-precision integer arithmetic in any radix
// from 2 to 36.
//
//	radint eval ff '*' ff --radix 16
//	radint convert -- -ff --from 16 --to 2
//	radint batch exprs.txt --jobs 8
//
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := run(os.Args[1:]); err != nil {
		errColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
