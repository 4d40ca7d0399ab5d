// SPDX-License-Identifier: MIT

package wires

// Axis names the grid axis a Step or Run extends along.
type Axis int

const (
	// X is the horizontal axis (L and R moves).
	X Axis = iota
	// Y is the vertical axis (U and D moves).
	Y
)

// Perpendicular returns the other axis.
func (a Axis) Perpendicular() Axis {
	if a == X {
		return Y
	}
	return X
}

func (a Axis) String() string {
	if a == X {
		return "X"
	}
	return "Y"
}

// Step is one parsed wire-laying instruction. Length is signed:
// negative values move towards smaller coordinates (D and L).
type Step struct {
	Axis   Axis
	Length int
}

// Point is a lattice point on the grid.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Manhattan returns |X| + |Y|, the distance from the origin.
func (p Point) Manhattan() int {
	return abs(p.X) + abs(p.Y)
}

// Run is a maximal straight segment of a wire.
//
// Offset is the fixed coordinate on the perpendicular axis. The extent along
// Axis is [Start, Start+Length], always stored in increasing order; Reversed
// records that the wire walked it from the larger end. StepsAtStart counts
// the unit moves made along the wire before the Run begins.
type Run struct {
	Axis         Axis
	Offset       int
	Start        int
	Length       int
	StepsAtStart int
	Reversed     bool
}

// End returns the larger endpoint of the Run's extent.
func (r Run) End() int {
	return r.Start + r.Length
}

// Entry returns the coordinate along Axis at which the wire enters the Run.
func (r Run) Entry() int {
	if r.Reversed {
		return r.End()
	}
	return r.Start
}

// Exit returns the coordinate along Axis at which the wire leaves the Run.
func (r Run) Exit() int {
	if r.Reversed {
		return r.Start
	}
	return r.End()
}

// point maps an (along, lateral) pair on this Run's axes to grid coordinates.
func (r Run) point(along, lateral int) Point {
	if r.Axis == X {
		return Point{X: along, Y: lateral}
	}
	return Point{X: lateral, Y: along}
}

// Wire is a traced path: Runs in traversal order. It is immutable once built.
type Wire struct {
	runs []Run
}

// Runs returns a copy of the Wire's Runs in traversal order.
func (w Wire) Runs() []Run {
	out := make([]Run, len(w.runs))
	copy(out, w.runs)
	return out
}

// Len returns the number of Runs.
func (w Wire) Len() int {
	return len(w.runs)
}

// End returns the final cursor position. An empty Wire ends at the origin.
func (w Wire) End() Point {
	if len(w.runs) == 0 {
		return Point{}
	}
	last := w.runs[len(w.runs)-1]
	return last.point(last.Exit(), last.Offset)
}

// TotalSteps returns the number of unit moves along the whole Wire.
func (w Wire) TotalSteps() int {
	if len(w.runs) == 0 {
		return 0
	}
	last := w.runs[len(w.runs)-1]
	return last.StepsAtStart + last.Length
}

// Crossing is a point where the two wires cross, with the steps each wire
// walks from the origin to reach it.
type Crossing struct {
	Point  Point `json:"point" yaml:"point"`
	StepsA int   `json:"steps_a" yaml:"steps_a"`
	StepsB int   `json:"steps_b" yaml:"steps_b"`
}

// Distance returns the Manhattan distance of the crossing from the origin.
func (c Crossing) Distance() int {
	return c.Point.Manhattan()
}

// Steps returns the combined steps of both wires.
func (c Crossing) Steps() int {
	return c.StepsA + c.StepsB
}

// Report bundles every crossing with both reductions.
type Report struct {
	Crossings []Crossing `json:"crossings" yaml:"crossings"`
	Closest   Crossing   `json:"closest" yaml:"closest"`
	Fewest    Crossing   `json:"fewest" yaml:"fewest"`
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
