// SPDX-License-Identifier: MIT

// Package wires finds where two wires laid on an integer grid cross.
//
// What:
//
//   - ParseStep / ParseSteps turn tokens like "R8" or "U5,L5" into Steps.
//   - Trace folds a Step sequence into a Wire: an ordered list of axis-aligned
//     Runs, each tagged with its extent and the steps walked before it.
//   - Run.Intersect decides whether two perpendicular Runs cross.
//   - Crossings, Closest, Fewest and Analyze reduce the cross-product of two
//     Wires to the crossing nearest the origin and the one reached with the
//     fewest combined steps.
//
// Why:
//
//   - Wires may be hundreds of thousands of cells long. Reasoning about
//     Runs keeps memory proportional to the number of turns, not the path length.
//
// Complexity:
//
//   - Trace:     O(n) time, O(n) memory (n = number of steps).
//   - Crossings: O(n×m) time; with WithIndex O(n log m + k) where k is the
//     number of candidate pairs.
//
// Rules:
//
//   - Only perpendicular crossings count; parallel Runs never cross.
//   - A crossing must lie strictly inside both Runs. Corners and the shared
//     origin are interval endpoints and are therefore never reported.
//   - Ties in either reduction keep the first crossing found with wire A's
//     Runs as the outer loop and wire B's Runs as the inner loop.
//
// Errors:
//
//   - ErrInvalidDirection: a token does not start with U, D, L or R.
//   - ErrMalformedMagnitude: a token's length is not a non-negative integer.
//   - ErrNoIntersection: the wires never cross.
//   - ErrMissingWire: input holds fewer than two wire lines.
package wires
