// SPDX-License-Identifier: MIT

package wires_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/wires"
)

func mustTrace(t testing.TB, line string) wires.Wire {
	t.Helper()
	steps, err := wires.ParseSteps(line)
	require.NoError(t, err)
	return wires.Trace(steps)
}

// TestTrace_Runs checks offsets, normalized extents and step counters.
func TestTrace_Runs(t *testing.T) {
	w := mustTrace(t, "R8,U5,L5,D3")
	want := []wires.Run{
		{Axis: wires.X, Offset: 0, Start: 0, Length: 8, StepsAtStart: 0},
		{Axis: wires.Y, Offset: 8, Start: 0, Length: 5, StepsAtStart: 8},
		{Axis: wires.X, Offset: 5, Start: 3, Length: 5, StepsAtStart: 13, Reversed: true},
		{Axis: wires.Y, Offset: 3, Start: 2, Length: 3, StepsAtStart: 18, Reversed: true},
	}
	assert.Equal(t, want, w.Runs())
	assert.Equal(t, 4, w.Len())
	assert.Equal(t, wires.Point{X: 3, Y: 2}, w.End())
	assert.Equal(t, 21, w.TotalSteps())
}

// TestTrace_Empty verifies an empty step list yields an empty wire at the origin.
func TestTrace_Empty(t *testing.T) {
	w := wires.Trace(nil)
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, wires.Point{}, w.End())
	assert.Equal(t, 0, w.TotalSteps())
}

// TestTrace_RunsIsCopy ensures callers cannot mutate a traced wire.
func TestTrace_RunsIsCopy(t *testing.T) {
	w := mustTrace(t, "R8,U5")
	runs := w.Runs()
	runs[0].Length = 100
	assert.Equal(t, 8, w.Runs()[0].Length)
}

// TestTrace_ZeroLength keeps a zero-length step as a degenerate run.
func TestTrace_ZeroLength(t *testing.T) {
	w := mustTrace(t, "R3,U0,L0")
	runs := w.Runs()
	require.Len(t, runs, 3)
	assert.Equal(t, wires.Run{Axis: wires.Y, Offset: 3, Start: 0, Length: 0, StepsAtStart: 3}, runs[1])
	assert.Equal(t, wires.Run{Axis: wires.X, Offset: 0, Start: 3, Length: 0, StepsAtStart: 3}, runs[2])
}

// TestTrace_Continuity walks random wires run by run and compares the result
// with direct simulation of the raw steps.
func TestTrace_Continuity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		steps := randomSteps(rng, 1+rng.Intn(40))

		var x, y, walked int
		for _, s := range steps {
			if s.Axis == wires.X {
				x += s.Length
			} else {
				y += s.Length
			}
			if s.Length < 0 {
				walked -= s.Length
			} else {
				walked += s.Length
			}
		}

		w := wires.Trace(steps)
		cur := wires.Point{}
		prevSteps := 0
		for i, r := range w.Runs() {
			require.GreaterOrEqual(t, r.Length, 0)
			require.Equal(t, prevSteps, r.StepsAtStart, "trial %d run %d", trial, i)

			entry := wires.Point{X: r.Offset, Y: r.Entry()}
			exit := wires.Point{X: r.Offset, Y: r.Exit()}
			if r.Axis == wires.X {
				entry = wires.Point{X: r.Entry(), Y: r.Offset}
				exit = wires.Point{X: r.Exit(), Y: r.Offset}
			}
			require.Equal(t, cur, entry, "trial %d run %d starts off the path", trial, i)
			cur = exit
			prevSteps = r.StepsAtStart + r.Length
		}
		assert.Equal(t, wires.Point{X: x, Y: y}, cur)
		assert.Equal(t, wires.Point{X: x, Y: y}, w.End())
		assert.Equal(t, walked, w.TotalSteps())
	}
}

func randomSteps(rng *rand.Rand, n int) []wires.Step {
	steps := make([]wires.Step, n)
	for i := range steps {
		ax := wires.X
		if rng.Intn(2) == 1 {
			ax = wires.Y
		}
		steps[i] = wires.Step{Axis: ax, Length: rng.Intn(41) - 20}
	}
	return steps
}
