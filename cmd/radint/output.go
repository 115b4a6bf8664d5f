package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/vmihailenco/msgpack/v5"

	radint "github.com/shabbyrobe/go-radint"
)

type outputOptions struct {
	format string
	dump   bool
}

func (o outputOptions) validate() error {
	switch strings.ToLower(o.format) {
	case "text", "json", "msgpack":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text|json|msgpack)", o.format)
}

// dumpConfig shows the fields of radint.Int rather than its String method.
var dumpConfig = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, DisableCapacities: true}

func writeResult(w io.Writer, v radint.Int, opts outputOptions) error {
	switch strings.ToLower(opts.format) {
	case "json":
		bts, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", bts); err != nil {
			return err
		}

	case "msgpack":
		bts, err := msgpack.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := w.Write(bts); err != nil {
			return err
		}

	default:
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	if opts.dump {
		dumpConfig.Fdump(w, v)
	}
	return nil
}
