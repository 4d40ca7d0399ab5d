// SPDX-License-Identifier: MIT

package wires_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/wires"
)

// TestReadPair_Valid tolerates CRLF, blank lines and trailing content.
func TestReadPair_Valid(t *testing.T) {
	a, b, err := wires.ReadPair(strings.NewReader("\nR8,U5,L5,D3\r\n\nU7,R6,D4,L4\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, wires.Point{X: 3, Y: 2}, a.End())
	assert.Equal(t, wires.Point{X: 2, Y: 3}, b.End())
}

// TestReadPair_Errors covers missing wires and bad tokens on either line.
func TestReadPair_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{"Empty", "", wires.ErrMissingWire, ""},
		{"OneWire", "R8,U5\n\n", wires.ErrMissingWire, ""},
		{"BadDirectionSecond", "R8\nU7,W6\n", wires.ErrInvalidDirection, "wire 2: step 1"},
		{"BadMagnitudeFirst", "R8x\nU7\n", wires.ErrMalformedMagnitude, "wire 1: step 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := wires.ReadPair(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}
