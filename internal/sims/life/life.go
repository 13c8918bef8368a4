package life

import (
	"image/color"
	"math/rand/v2"

	"pan-ca/internal/core"
)

// State is the two-valued cell state for Conway's Life. Dead is the zero
// value, so a fresh grid starts empty.
type State uint8

const (
	Dead State = iota
	Alive
)

var (
	colorDead  = color.RGBA{R: 0x1d, G: 0x20, B: 0x21, A: 0xff}
	colorAlive = color.RGBA{R: 0xeb, G: 0xdb, B: 0xb2, A: 0xff}
)

// Rule implements Conway's Game of Life on a toroidal grid.
type Rule struct{}

// Update counts live cells among the eight radius-1 Moore neighbors and
// applies the standard birth/survival table: live on 2-3 neighbors if
// already alive, on exactly 3 if dead.
func (Rule) Update(x, y int, prev *core.Grid[State]) State {
	neighbors := 0
	it := core.NewMooreNeighbors(1)
	for {
		dx, dy, ok := it.Next()
		if !ok {
			break
		}
		if dx == 0 && dy == 0 {
			continue
		}
		if prev.Get(x+dx, y+dy) == Alive {
			neighbors++
		}
	}
	alive := prev.Get(x, y) == Alive
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return Alive
	}
	return Dead
}

// Toggle flips a cell between dead and alive.
func (Rule) Toggle(curr State) State {
	if curr == Dead {
		return Alive
	}
	return Dead
}

// Style maps dead cells to a dark fill and live cells to a light one.
func (Rule) Style(curr State) color.Color {
	if curr == Alive {
		return colorAlive
	}
	return colorDead
}

// Seed returns a fair coin flip so Randomize produces a half-full board.
func (Rule) Seed(rng *rand.Rand) State {
	return State(rng.IntN(2))
}

func init() {
	core.Register("life", func(cfg map[string]string, set core.Settings) (core.Machine, error) {
		c := FromMap(cfg)
		return core.NewSupervisor[State]("life", Rule{}, c.Width, c.Height, set)
	})
}
