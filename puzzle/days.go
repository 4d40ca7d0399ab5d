// SPDX-License-Identifier: MIT

package puzzle

import (
	"io"

	"github.com/katalvlaran/advent/fuel"
	"github.com/katalvlaran/advent/intcode"
	"github.com/katalvlaran/advent/wires"
)

var day1 = Puzzle{
	Day:   1,
	Title: "The Tyranny of the Rocket Equation",
	Part1: func(r io.Reader) (int, error) {
		return fuel.Sum(r, fuel.Required)
	},
	Part2: func(r io.Reader) (int, error) {
		return fuel.Sum(r, fuel.Total)
	},
}

// Day 2 restores the "1202 program alarm" state before running.
const (
	alarmNoun   = 12
	alarmVerb   = 2
	gravityGoal = 19690720
)

var day2 = Puzzle{
	Day:   2,
	Title: "1202 Program Alarm",
	Part1: func(r io.Reader) (int, error) {
		program, err := intcode.Parse(r)
		if err != nil {
			return 0, err
		}
		return intcode.Execute(program, alarmNoun, alarmVerb)
	},
	Part2: func(r io.Reader) (int, error) {
		program, err := intcode.Parse(r)
		if err != nil {
			return 0, err
		}
		noun, verb, err := intcode.Search(program, gravityGoal)
		if err != nil {
			return 0, err
		}
		return 100*noun + verb, nil
	},
}

var day3 = Puzzle{
	Day:   3,
	Title: "Crossed Wires",
	Part1: func(r io.Reader) (int, error) {
		a, b, err := wires.ReadPair(r)
		if err != nil {
			return 0, err
		}
		c, err := wires.Closest(a, b, wires.WithIndex())
		if err != nil {
			return 0, err
		}
		return c.Distance(), nil
	},
	Part2: func(r io.Reader) (int, error) {
		a, b, err := wires.ReadPair(r)
		if err != nil {
			return 0, err
		}
		c, err := wires.Fewest(a, b, wires.WithIndex())
		if err != nil {
			return 0, err
		}
		return c.Steps(), nil
	},
}
