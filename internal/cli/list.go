// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

type listEntry struct {
	Day   int    `json:"day" yaml:"day"`
	Title string `json:"title" yaml:"title"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := puzzle.All()
			entries := make([]listEntry, len(all))
			for i, p := range all {
				entries[i] = listEntry{Day: p.Day, Title: p.Title}
			}
			return rootOpts.formatter(cmd).Emit(entries, func(w io.Writer) error {
				for _, e := range entries {
					if _, err := fmt.Fprintf(w, "%2d  %s\n", e.Day, e.Title); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
