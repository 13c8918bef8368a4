package core

import "image/color"

// Canvas is the rendering capability the supervisor draws through. It is
// the only boundary between the core and a presentation layer, and it is
// injected so tests can substitute a recording or no-op implementation.
type Canvas interface {
	// SetFill selects the color used by subsequent FillRect calls.
	SetFill(c color.Color)
	// FillRect paints an axis-aligned rectangle in screen coordinates.
	FillRect(x, y, w, h float64)
}
