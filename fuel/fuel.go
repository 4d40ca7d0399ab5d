// SPDX-License-Identifier: MIT

// Package fuel computes the fuel a spacecraft module needs for launch.
//
// Required(mass) = max(mass/3 - 2, 0). Total also fuels the fuel itself,
// repeating Required until the extra amount reaches zero.
package fuel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadMass indicates an input line that is not a non-negative integer.
var ErrBadMass = errors.New("fuel: mass must be a non-negative integer")

// Required returns the fuel needed to launch a module of the given mass,
// ignoring the mass of the fuel.
// Complexity: O(1).
func Required(mass int) int {
	if mass < 9 {
		return 0
	}
	return mass/3 - 2
}

// Total returns the fuel needed for mass plus the fuel needed to carry that fuel.
// Complexity: O(log mass).
func Total(mass int) int {
	sum := 0
	for extra := Required(mass); extra > 0; extra = Required(extra) {
		sum += extra
	}
	return sum
}

// Sum applies fn to every module mass in r (one per line) and adds the results.
// Blank lines are skipped.
func Sum(r io.Reader, fn func(int) int) (int, error) {
	sc := bufio.NewScanner(r)
	sum, line := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		mass, err := strconv.Atoi(text)
		if err != nil || mass < 0 {
			return 0, fmt.Errorf("line %d: %q: %w", line, text, ErrBadMass)
		}
		sum += fn(mass)
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("fuel: read input: %w", err)
	}

	return sum, nil
}
