package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		radix  int
		strict bool
		out    outputOptions
	)

	cmd := &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate a single expression (op is one of + - * cmp)",
		Long: `Evaluate a single expression. Operands are read in --radix unless they
carry their own radix prefix, as in 2:1011. Put '--' before the expression
if the first operand is negative.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			opts := parseOptions{radix: a.cfg.Defaults.Radix, strict: a.cfg.Defaults.Strict}
			if cmd.Flags().Changed("radix") {
				if err := checkRadix("--radix", radix); err != nil {
					return err
				}
				opts.radix = radix
			}
			if cmd.Flags().Changed("strict") {
				opts.strict = strict
			}

			v, err := evalLine(strings.Join(args, " "), opts)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), v, out)
		},
	}

	cmd.Flags().IntVarP(&radix, "radix", "r", 10, "radix of the operands and the result")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject characters that are not digits in the radix")
	cmd.Flags().StringVar(&out.format, "format", "text", "output format (text|json|msgpack)")
	cmd.Flags().BoolVar(&out.dump, "dump", false, "dump the internal representation of the result")
	return cmd
}
