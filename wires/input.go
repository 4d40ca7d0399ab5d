// SPDX-License-Identifier: MIT

package wires

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadPair reads two wire lines from r, parses and traces them.
// Blank lines are skipped; lines after the second wire are ignored.
// Returns ErrMissingWire if fewer than two wires are present.
func ReadPair(r io.Reader) (Wire, Wire, error) {
	sc := bufio.NewScanner(r)
	// Real inputs are a few kilobytes per line; allow generously more.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for len(lines) < 2 && sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return Wire{}, Wire{}, fmt.Errorf("wires: read input: %w", err)
	}
	if len(lines) < 2 {
		return Wire{}, Wire{}, ErrMissingWire
	}

	var traced [2]Wire
	for i, line := range lines {
		steps, err := ParseSteps(line)
		if err != nil {
			return Wire{}, Wire{}, fmt.Errorf("wire %d: %w", i+1, err)
		}
		traced[i] = Trace(steps)
	}

	return traced[0], traced[1], nil
}
