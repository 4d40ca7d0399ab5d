// SPDX-License-Identifier: MIT

package wires

// cursor is the accumulator threaded through Trace.
type cursor struct {
	x, y  int
	steps int
}

// along returns the cursor coordinate on axis a.
func (c cursor) along(a Axis) int {
	if a == X {
		return c.x
	}
	return c.y
}

// advance returns the cursor after walking s.
func (c cursor) advance(s Step) cursor {
	if s.Axis == X {
		c.x += s.Length
	} else {
		c.y += s.Length
	}
	c.steps += abs(s.Length)
	return c
}

// Trace lays a wire from the origin following steps and returns its Runs.
//
// Algorithm:
//  1. Start a cursor at (0,0) with zero steps walked.
//  2. For each Step, record the Run the cursor sweeps: its lateral offset,
//     its extent normalized so Start is the smaller endpoint, and the steps
//     walked so far.
//  3. Advance the cursor by the signed length and the step counter by |length|.
//
// Trace never fails. Zero-length steps produce zero-length Runs, which can
// never contain a crossing.
// Complexity: O(n) time and memory.
func Trace(steps []Step) Wire {
	runs := make([]Run, 0, len(steps))
	var c cursor
	for _, s := range steps {
		start, length := c.along(s.Axis), s.Length
		if length < 0 {
			start, length = start+length, -length
		}
		runs = append(runs, Run{
			Axis:         s.Axis,
			Offset:       c.along(s.Axis.Perpendicular()),
			Start:        start,
			Length:       length,
			StepsAtStart: c.steps,
			Reversed:     s.Length < 0,
		})
		c = c.advance(s)
	}

	return Wire{runs: runs}
}
