// SPDX-License-Identifier: MIT

package intcode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for program loading and execution.
var (
	ErrUnknownOpcode = errors.New("intcode: unknown opcode")
	ErrOutOfBounds   = errors.New("intcode: address out of bounds")
	ErrNoSolution    = errors.New("intcode: no noun/verb produces the target")
	ErrBadProgram    = errors.New("intcode: malformed program")
)

// Opcodes understood by Run.
const (
	OpAdd  = 1
	OpMul  = 2
	OpHalt = 99
)

// Parse reads a comma-separated program. Whitespace around values is ignored.
func Parse(r io.Reader) ([]int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("intcode: read program: %w", err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadProgram)
	}

	fields := strings.Split(text, ",")
	mem := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %q", ErrBadProgram, i, f)
		}
		mem[i] = v
	}

	return mem, nil
}

// Run executes mem in place until it halts.
// Complexity: O(len(mem)) since there are no jumps.
func Run(mem []int) error {
	for ip := 0; ; ip += 4 {
		if ip < 0 || ip >= len(mem) {
			return fmt.Errorf("%w: instruction pointer %d", ErrOutOfBounds, ip)
		}
		op := mem[ip]
		if op == OpHalt {
			return nil
		}
		if op != OpAdd && op != OpMul {
			return fmt.Errorf("%w: %d at address %d", ErrUnknownOpcode, op, ip)
		}
		if ip+3 >= len(mem) {
			return fmt.Errorf("%w: truncated instruction at %d", ErrOutOfBounds, ip)
		}
		a, b, dst := mem[ip+1], mem[ip+2], mem[ip+3]
		for _, addr := range [...]int{a, b, dst} {
			if addr < 0 || addr >= len(mem) {
				return fmt.Errorf("%w: operand %d at address %d", ErrOutOfBounds, addr, ip)
			}
		}
		if op == OpAdd {
			mem[dst] = mem[a] + mem[b]
		} else {
			mem[dst] = mem[a] * mem[b]
		}
	}
}

// Execute copies program, stores noun and verb at addresses 1 and 2, runs it
// and returns the value left at address 0. The program is not modified.
func Execute(program []int, noun, verb int) (int, error) {
	if len(program) < 3 {
		return 0, fmt.Errorf("%w: program too short to restore", ErrOutOfBounds)
	}
	mem := make([]int, len(program))
	copy(mem, program)
	mem[1], mem[2] = noun, verb
	if err := Run(mem); err != nil {
		return 0, err
	}
	return mem[0], nil
}

// Search tries every noun and verb in 0..99 (noun outer) and returns the
// first pair for which Execute yields target. Pairs that fail to run are
// skipped.
func Search(program []int, target int) (noun, verb int, err error) {
	for noun = 0; noun <= 99; noun++ {
		for verb = 0; verb <= 99; verb++ {
			out, runErr := Execute(program, noun, verb)
			if runErr == nil && out == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, ErrNoSolution
}
