package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	radint "github.com/shabbyrobe/go-radint"
)

type batchLine struct {
	num  int
	text string
}

type batchResult struct {
	value radint.Int
	err   error
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		radix  int
		strict bool
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Evaluate one expression per line from a file or stdin",
		Long: `Evaluate one '<a> <op> <b>' expression per line. Blank lines and lines
starting with '#' are skipped. Results are written in input order; failed
lines are reported with their line number.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Defaults.Jobs
			} else if err := checkJobs("--jobs", jobs); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := readBatch(in)
			if err != nil {
				return err
			}
			results, err := evalBatch(cmd.Context(), lines, opts, jobs)
			if err != nil {
				return err
			}
			return writeBatch(cmd.OutOrStdout(), cmd.ErrOrStderr(), lines, results)
		},
	}

	cmd.Flags().IntVarP(&radix, "radix", "r", 10, "radix of the operands and the results")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject characters that are not digits in the radix")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of expressions to evaluate concurrently")
	return cmd
}

func readBatch(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	num := 0
	for scn.Scan() {
		num++
		text := strings.TrimSpace(scn.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{num: num, text: text})
	}
	if err := scn.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return lines, nil
}

// evalBatch evaluates every line with at most jobs running at once. A failing
// line does not stop the others; its error is kept in its result.
func evalBatch(ctx context.Context, lines []batchLine, opts parseOptions, jobs int) ([]batchResult, error) {
	if jobs < 1 {
		return nil, fmt.Errorf("jobs must be at least 1, found %d", jobs)
	}
	results := make([]batchResult, len(lines))
	if len(lines) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := evalLine(line.text, opts)
			results[i] = batchResult{value: v, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeBatch(out, errOut io.Writer, lines []batchLine, results []batchResult) error {
	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			errColor.Fprintf(errOut, "line %d: ", lines[i].num)
			fmt.Fprintln(errOut, res.err)
			continue
		}
		if _, err := fmt.Fprintln(out, res.value); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}
