// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/wires"
)

// WiresOptions holds flags for the wires command.
type WiresOptions struct {
	*RootOptions
	A, B  string
	Index bool
}

// NewWiresCommand creates the wires command, which lists every crossing of
// two wires given on the command line.
func NewWiresCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WiresOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "wires",
		Short: "List the crossings of two wires",
		Long: `Trace two wires and print every crossing with both reductions.

Example:
  advent wires --a R8,U5,L5,D3 --b U7,R6,D4,L4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWires(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.A, "a", "", "first wire, e.g. R8,U5,L5,D3 (required)")
	cmd.Flags().StringVar(&opts.B, "b", "", "second wire (required)")
	cmd.Flags().BoolVar(&opts.Index, "index", false, "enumerate crossings through the offset index")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func runWires(opts *WiresOptions, cmd *cobra.Command) error {
	log := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	var traced [2]wires.Wire
	for i, line := range []string{opts.A, opts.B} {
		steps, err := wires.ParseSteps(line)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("wire %d", i+1), err)
		}
		traced[i] = wires.Trace(steps)
		log.Debug("wire traced", "wire", i+1, "runs", traced[i].Len(), "steps", traced[i].TotalSteps())
	}

	var options []wires.Option
	if opts.Index {
		options = append(options, wires.WithIndex())
	}
	rep, err := wires.Analyze(traced[0], traced[1], options...)
	if errors.Is(err, wires.ErrNoIntersection) {
		return WrapExitError(ExitFailure, "wires do not cross", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "analyze failed", err)
	}
	log.Debug("crossings found", "count", len(rep.Crossings))

	return opts.formatter(cmd).Emit(rep, func(w io.Writer) error {
		for _, c := range rep.Crossings {
			if _, err := fmt.Fprintf(w, "crossing (%d,%d) distance %d steps %d\n",
				c.Point.X, c.Point.Y, c.Distance(), c.Steps()); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "closest: (%d,%d) distance %d\nfewest: (%d,%d) steps %d\n",
			rep.Closest.Point.X, rep.Closest.Point.Y, rep.Closest.Distance(),
			rep.Fewest.Point.X, rep.Fewest.Point.Y, rep.Fewest.Steps())
		return err
	})
}
