// Package advent solves daily programming puzzles, built around an
// interval-based engine for crossing wires on an integer grid.
//
// Under the hood, everything is organized under these subpackages:
//
//	wires/        step parsing, wire tracing, run intersection & reductions
//	fuel/         module fuel requirements
//	intcode/      add/multiply/halt stored-program calculator
//	puzzle/       day registry and part runner
//	internal/cli/ cobra command line (run, list, wires)
//	cmd/advent/   the advent binary
//
// Quick ASCII example:
//
//	+-----+
//	|     |
//	|  +--X-+
//	|  |  | |
//	|  X--+ |
//	|  |    |
//	o-------+
//
// Two wires leave the origin o and cross at the two X points; corners and
// the origin itself never count.
//
//	go install github.com/katalvlaran/advent/cmd/advent@latest
package advent
