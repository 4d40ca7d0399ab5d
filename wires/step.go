// SPDX-License-Identifier: MIT

package wires

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseStep parses one token such as "R8" or "D30".
//
// The first character selects the direction (U, D, L, R); the rest must be a
// non-negative decimal integer. Returns a *DirectionError (ErrInvalidDirection)
// or a *MagnitudeError (ErrMalformedMagnitude).
// Complexity: O(len(token)).
func ParseStep(token string) (Step, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Step{}, &DirectionError{}
	}

	var (
		axis Axis
		sign int
	)
	switch token[0] {
	case 'U':
		axis, sign = Y, 1
	case 'D':
		axis, sign = Y, -1
	case 'R':
		axis, sign = X, 1
	case 'L':
		axis, sign = X, -1
	default:
		r := []rune(token)[0]
		return Step{}, &DirectionError{Char: r}
	}

	digits := token[1:]
	// strconv accepts a leading sign; a magnitude must not carry one.
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return Step{}, &MagnitudeError{Token: token}
	}
	magnitude, err := strconv.Atoi(digits)
	if err != nil {
		return Step{}, &MagnitudeError{Token: token, Err: err}
	}

	return Step{Axis: axis, Length: sign * magnitude}, nil
}

// ParseSteps parses a comma-separated wire description such as "R8,U5,L5,D3".
// The first bad token fails the whole wire.
func ParseSteps(line string) ([]Step, error) {
	tokens := strings.Split(strings.TrimSpace(line), ",")
	steps := make([]Step, 0, len(tokens))
	for i, tok := range tokens {
		s, err := ParseStep(tok)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, s)
	}

	return steps, nil
}
