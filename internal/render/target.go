//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Target adapts an ebiten image to the fill-rectangle capability the core
// draws through.
type Target struct {
	dst  *ebiten.Image
	fill color.Color
}

// NewTarget wraps the destination image. The zero fill color is opaque
// black until SetFill is called.
func NewTarget(dst *ebiten.Image) *Target {
	return &Target{dst: dst, fill: color.Black}
}

// SetFill selects the color used by subsequent FillRect calls.
func (t *Target) SetFill(c color.Color) { t.fill = c }

// FillRect paints an axis-aligned rectangle at screen coordinates.
func (t *Target) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(t.dst, float32(x), float32(y), float32(w), float32(h), t.fill, false)
}
