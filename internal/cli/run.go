// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input string
	Part  string // "1" | "2" | "all"
}

// dayReport is the structured output of the run command.
type dayReport struct {
	Day   int             `json:"day" yaml:"day"`
	Title string          `json:"title" yaml:"title"`
	Parts []puzzle.Result `json:"parts" yaml:"parts"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve a day's puzzle",
		Long: `Solve the puzzle for a 1-based day number.

The input is read from --input, or from stdin when --input is "-" or empty.

Example:
  advent run 3 --input day3.txt
  advent run 1 --part 2 < day1.txt
  advent run 3 -i day3.txt --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "-", "puzzle input file (- for stdin)")
	cmd.Flags().StringVar(&opts.Part, "part", "all", "part to solve (1|2|all)")

	return cmd
}

func runDay(opts *RunOptions, dayArg string, cmd *cobra.Command) error {
	log := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid day", err)
	}
	p, err := puzzle.Lookup(day)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot select puzzle", err)
	}
	parts, err := parseParts(opts.Part)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --part", err)
	}

	input, err := readInput(opts.Input, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read input", err)
	}
	log.Debug("input loaded", "source", opts.Input, "bytes", len(input))

	results, err := p.Solve(input, parts, log)
	if err != nil {
		return WrapExitError(ExitFailure, "solve failed", err)
	}

	report := dayReport{Day: p.Day, Title: p.Title, Parts: results}
	return opts.formatter(cmd).Emit(report, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, p.Banner()); err != nil {
			return err
		}
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "\nPart %d:\n%d\n", r.Part, r.Answer); err != nil {
				return err
			}
		}
		return nil
	})
}

func parseParts(s string) ([]int, error) {
	switch s {
	case "", "all":
		return []int{1, 2}, nil
	case "1":
		return []int{1}, nil
	case "2":
		return []int{2}, nil
	}
	return nil, fmt.Errorf("%w: %q", puzzle.ErrUnknownPart, s)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, errors.New("no stdin available")
		}
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
