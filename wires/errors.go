// SPDX-License-Identifier: MIT

package wires

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; the typed errors below unwrap to them.
var (
	// ErrInvalidDirection indicates a step token with an unknown leading character.
	ErrInvalidDirection = errors.New("wires: invalid direction")
	// ErrMalformedMagnitude indicates a step token whose length is not a non-negative integer.
	ErrMalformedMagnitude = errors.New("wires: malformed magnitude")
	// ErrNoIntersection indicates that two wires never cross.
	ErrNoIntersection = errors.New("wires: no intersection found")
	// ErrMissingWire indicates the input did not hold two wire lines.
	ErrMissingWire = errors.New("wires: input must contain two wires")
)

// DirectionError reports the offending leading character of a step token.
type DirectionError struct {
	Char rune
}

func (e *DirectionError) Error() string {
	if e.Char == 0 {
		return "wires: invalid direction: empty token"
	}
	return fmt.Sprintf("wires: invalid direction %q", e.Char)
}

// Is makes errors.Is(err, ErrInvalidDirection) hold for every DirectionError.
func (e *DirectionError) Is(target error) bool {
	return target == ErrInvalidDirection
}

// MagnitudeError reports a step token whose length could not be parsed.
type MagnitudeError struct {
	Token string
	Err   error // underlying strconv error, may be nil
}

func (e *MagnitudeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wires: malformed magnitude in %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("wires: malformed magnitude in %q", e.Token)
}

func (e *MagnitudeError) Is(target error) bool {
	return target == ErrMalformedMagnitude
}

func (e *MagnitudeError) Unwrap() error {
	return e.Err
}
