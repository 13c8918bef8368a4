//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the machine snapshot the overlay prints.
type Status struct {
	Name       string
	Generation int
	Scale      float64
	ScaleMode  string
	AutoRun    bool
}

// Overlay draws a one-line status readout in the top-left corner.
type Overlay struct {
	hidden bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles visibility with the Tab key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status line unless the overlay is hidden.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	if o.hidden {
		return
	}
	run := "paused"
	if st.AutoRun {
		run = "running"
	}
	line := fmt.Sprintf("%s  gen %d  scale %.3f (%s)  %s", st.Name, st.Generation, st.Scale, st.ScaleMode, run)
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, color.White)
}
