// SPDX-License-Identifier: MIT

// Command advent solves daily puzzles selected by day number.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/advent/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
