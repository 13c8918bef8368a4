package briansbrain

import (
	"image/color"
	"math/rand/v2"

	"pan-ca/internal/core"
)

// State is the three-valued cell state for Brian's Brain. Dead is the zero
// value.
type State uint8

const (
	Dead State = iota
	Firing
	Dying
)

var (
	colorDead   = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorFiring = color.RGBA{R: 0xdf, G: 0xf2, B: 0xff, A: 0xff}
	colorDying  = color.RGBA{R: 0x3a, G: 0x6e, B: 0xa5, A: 0xff}
)

// Rule implements Brian's Brain: firing cells start dying, dying cells die,
// and a dead cell fires when exactly two of its Moore neighbors are firing.
type Rule struct{}

// Update applies the three-phase transition using the previous generation.
func (Rule) Update(x, y int, prev *core.Grid[State]) State {
	switch prev.Get(x, y) {
	case Firing:
		return Dying
	case Dying:
		return Dead
	}
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
		if prev.Get(x+dx, y+dy) == Firing {
			neighbors++
		}
	}
	if neighbors == 2 {
		return Firing
	}
	return Dead
}

// Toggle cycles a cell through dead, firing and dying. With three states
// the manual edit is a cycle rather than an involution.
func (Rule) Toggle(curr State) State {
	switch curr {
	case Dead:
		return Firing
	case Firing:
		return Dying
	default:
		return Dead
	}
}

// Style maps each state to a fixed fill color.
func (Rule) Style(curr State) color.Color {
	switch curr {
	case Firing:
		return colorFiring
	case Dying:
		return colorDying
	default:
		return colorDead
	}
}

// Seed fires roughly one cell in eight so patterns have room to travel.
func (Rule) Seed(rng *rand.Rand) State {
	if rng.IntN(8) == 0 {
		return Firing
	}
	return Dead
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string, set core.Settings) (core.Machine, error) {
		return core.NewSupervisor[State]("briansbrain", Rule{}, 64, 64, set)
	})
}
