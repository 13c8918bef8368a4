package core

import (
	"image/color"
	"math/rand/v2"
)

// Rule bundles the behavior that defines one automaton variant over cell
// state type S. All three operations are pure.
type Rule[S any] interface {
	// Update computes the next state of the cell at (x, y) by reading the
	// previous generation. It must not mutate prev. Off-grid reads are
	// legal; the grid wraps them.
	Update(x, y int, prev *Grid[S]) S
	// Toggle returns the state a manual cell edit writes. For two-state
	// automata applying it twice restores the original state.
	Toggle(curr S) S
	// Style maps a state to its fill color. Total and deterministic.
	Style(curr S) color.Color
}

// Seeder is implemented by rules that can produce a random initial state
// for a cell. Rules without it randomize to a cleared board.
type Seeder[S any] interface {
	Seed(rng *rand.Rand) S
}
