package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds the settings shared by every subcommand once the configuration
// file and the global flags have been resolved.
type app struct {
	configPath string
	colorMode  string
	cfg        config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	cmd := &cobra.Command{
		Use:           "radint",
		Short:         "Arbitrary-precision integer arithmetic in radix 2 to 36",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to "+configFileName+" (default: search from the working directory)")
	cmd.PersistentFlags().StringVar(&a.colorMode, "color", "", "colorize output (auto|on|off)")

	cmd.AddCommand(newEvalCmd(a))
	cmd.AddCommand(newConvertCmd(a))
	cmd.AddCommand(newBatchCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg

	} else {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		path, ok, err := findConfig(wd)
		if err != nil {
			return err
		}
		if ok {
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			a.cfg = cfg
		}
	}

	if cmd.Flags().Changed("color") {
		a.cfg.Defaults.Color = a.colorMode
	}
	return applyColorMode(a.cfg.Defaults.Color)
}

func applyColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "", "auto":
		color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}
	return nil
}
