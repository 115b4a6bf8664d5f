package main

import (
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		from, to int
		strict   bool
		out      outputOptions
	)

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Re-express a value in another radix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			opts := parseOptions{radix: a.cfg.Defaults.Radix, strict: a.cfg.Defaults.Strict}
			if cmd.Flags().Changed("from") {
				if err := checkRadix("--from", from); err != nil {
					return err
				}
				opts.radix = from
			}
			if err := checkRadix("--to", to); err != nil {
				return err
			}
			if cmd.Flags().Changed("strict") {
				opts.strict = strict
			}

			v, err := parseOperand(args[0], opts)
			if err != nil {
				return err
			}
			if v, err = v.In(to); err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), v, out)
		},
	}

	cmd.Flags().IntVar(&from, "from", 10, "radix of the input")
	cmd.Flags().IntVar(&to, "to", 10, "radix of the output")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject characters that are not digits in the radix")
	cmd.Flags().StringVar(&out.format, "format", "text", "output format (text|json|msgpack)")
	cmd.Flags().BoolVar(&out.dump, "dump", false, "dump the internal representation of the result")
	return cmd
}
