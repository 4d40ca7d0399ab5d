// SPDX-License-Identifier: MIT

// Package puzzle registers the daily puzzles and runs their parts.
//
// Each Puzzle has a 1-based day number, a title and two Solvers. A Solver
// reads the raw puzzle input and returns an integer answer; parsing and
// validation errors are returned, never panicked.
package puzzle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrUnknownDay indicates that no puzzle is registered for a day.
var ErrUnknownDay = errors.New("puzzle: unknown day")

// ErrUnknownPart indicates a part other than 1 or 2.
var ErrUnknownPart = errors.New("puzzle: part must be 1 or 2")

// Solver computes one part's answer from the raw input.
type Solver func(r io.Reader) (int, error)

// Puzzle describes one day.
type Puzzle struct {
	Day   int
	Title string
	Part1 Solver
	Part2 Solver
}

// Result is one solved part.
type Result struct {
	Part    int           `json:"part" yaml:"part"`
	Answer  int           `json:"answer" yaml:"answer"`
	Elapsed time.Duration `json:"-" yaml:"-"`
}

// Banner returns the heading printed above a day's answers.
func (p Puzzle) Banner() string {
	return fmt.Sprintf("--- Day %d: %s ---", p.Day, p.Title)
}

// solver returns the Solver for part 1 or 2.
func (p Puzzle) solver(part int) (Solver, error) {
	switch part {
	case 1:
		return p.Part1, nil
	case 2:
		return p.Part2, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPart, part)
}

// Solve runs the requested parts in order against the same input.
// A nil logger discards log output.
func (p Puzzle) Solve(input []byte, parts []int, log *slog.Logger) ([]Result, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	results := make([]Result, 0, len(parts))
	for _, part := range parts {
		fn, err := p.solver(part)
		if err != nil {
			return nil, err
		}
		log.Debug("solving", "day", p.Day, "part", part, "input_bytes", len(input))
		start := time.Now()
		answer, err := fn(bytes.NewReader(input))
		elapsed := time.Since(start)
		if err != nil {
			log.Error("part failed", "day", p.Day, "part", part, "error", err)
			return nil, fmt.Errorf("day %d part %d: %w", p.Day, part, err)
		}
		log.Info("part solved", "day", p.Day, "part", part, "elapsed", elapsed)
		results = append(results, Result{Part: part, Answer: answer, Elapsed: elapsed})
	}

	return results, nil
}

var registry = []Puzzle{day1, day2, day3}

// All returns every registered puzzle ordered by day.
func All() []Puzzle {
	out := make([]Puzzle, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the puzzle for a 1-based day number.
func Lookup(day int) (Puzzle, error) {
	if day < 1 || day > len(registry) {
		return Puzzle{}, fmt.Errorf("%w: %d (have 1..%d)", ErrUnknownDay, day, len(registry))
	}
	return registry[day-1], nil
}
