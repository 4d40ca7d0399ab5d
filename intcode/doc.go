// SPDX-License-Identifier: MIT

// Package intcode runs the minimal stored-program calculator: memory is a
// slice of integers and execution starts at address 0.
//
// Opcodes:
//
//   - 1 (add):      mem[c] = mem[a] + mem[b], then advance 4.
//   - 2 (multiply): mem[c] = mem[a] * mem[b], then advance 4.
//   - 99 (halt):    stop.
//
// There are no addressing modes, no I/O and no jumps.
//
// Errors:
//
//   - ErrUnknownOpcode: an opcode other than 1, 2 or 99.
//   - ErrOutOfBounds: an instruction or operand address outside memory.
//   - ErrNoSolution: Search found no noun/verb pair for the target.
//   - ErrBadProgram: program text is not comma-separated integers.
package intcode
