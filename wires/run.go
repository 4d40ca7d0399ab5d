// SPDX-License-Identifier: MIT

package wires

// Intersect reports whether r (on wire A) and other (on wire B) cross.
//
// Only perpendicular Runs can cross, and the crossing point must lie strictly
// inside both extents: touching an endpoint (a corner, or the origin) does
// not count. StepsA and StepsB are measured from the origin along each wire,
// adding to StepsAtStart the distance from the Run's entry point.
// Complexity: O(1).
func (r Run) Intersect(other Run) (Crossing, bool) {
	if r.Axis == other.Axis {
		return Crossing{}, false
	}
	if !strictlyInside(other.Offset, r.Start, r.End()) || !strictlyInside(r.Offset, other.Start, other.End()) {
		return Crossing{}, false
	}

	return Crossing{
		Point:  r.point(other.Offset, r.Offset),
		StepsA: r.StepsAtStart + abs(other.Offset-r.Entry()),
		StepsB: other.StepsAtStart + abs(r.Offset-other.Entry()),
	}, true
}

// strictlyInside reports lo < v < hi.
func strictlyInside(v, lo, hi int) bool {
	return lo < v && v < hi
}
