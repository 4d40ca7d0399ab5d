// SPDX-License-Identifier: MIT

package wires_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/wires"
)

// cellVisits maps a lattice point to the fewest steps at which the wire
// passed straight through it along each axis. Turning points and run ends
// are not recorded.
type cellVisits map[wires.Point][2]int

// walkCells rasterizes steps cell by cell, the naive approach the Run model
// avoids. Only usable on small wires.
func walkCells(steps []wires.Step) cellVisits {
	visits := cellVisits{}
	var x, y, walked int
	for _, s := range steps {
		dir, n := 1, s.Length
		if n < 0 {
			dir, n = -1, -n
		}
		for i := 1; i <= n; i++ {
			if s.Axis == wires.X {
				x += dir
			} else {
				y += dir
			}
			walked++
			if i == n {
				break // run end
			}
			p := wires.Point{X: x, Y: y}
			v, ok := visits[p]
			if !ok {
				v = [2]int{-1, -1}
			}
			if v[s.Axis] < 0 || walked < v[s.Axis] {
				v[s.Axis] = walked
			}
			visits[p] = v
		}
	}
	return visits
}

// TestCrossings_MatchCellWalk compares the Run engine with the cell walk on
// random small wires: same distinct points, same minimum distance and steps.
func TestCrossings_MatchCellWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(2019))
	for trial := 0; trial < 150; trial++ {
		sa := randomSteps(rng, 1+rng.Intn(25))
		sb := randomSteps(rng, 1+rng.Intn(25))
		va, vb := walkCells(sa), walkCells(sb)

		want := map[wires.Point]bool{}
		bestDist, bestSteps := -1, -1
		for p, a := range va {
			b, ok := vb[p]
			if !ok {
				continue
			}
			for ax := 0; ax < 2; ax++ {
				if a[ax] < 0 || b[1-ax] < 0 {
					continue
				}
				want[p] = true
				if d := p.Manhattan(); bestDist < 0 || d < bestDist {
					bestDist = d
				}
				if s := a[ax] + b[1-ax]; bestSteps < 0 || s < bestSteps {
					bestSteps = s
				}
			}
		}

		cs := wires.Crossings(wires.Trace(sa), wires.Trace(sb))
		got := map[wires.Point]bool{}
		for _, c := range cs {
			got[c.Point] = true
		}
		require.Equal(t, want, got, "trial %d: crossing points", trial)

		rep, err := wires.Analyze(wires.Trace(sa), wires.Trace(sb))
		if len(want) == 0 {
			assert.ErrorIs(t, err, wires.ErrNoIntersection)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, bestDist, rep.Closest.Distance(), "trial %d: closest", trial)
		assert.Equal(t, bestSteps, rep.Fewest.Steps(), "trial %d: fewest", trial)
	}
}
