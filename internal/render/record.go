package render

import "image/color"

// Rect is one recorded fill-rectangle call, tagged with the fill color in
// effect when it was issued.
type Rect struct {
	X, Y, W, H float64
	Fill       color.Color
}

// Recorder captures draw calls instead of painting them. It stands in for
// the real render target in tests and headless runs.
type Recorder struct {
	fill  color.Color
	Rects []Rect
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// SetFill selects the color attached to subsequent rects.
func (r *Recorder) SetFill(c color.Color) { r.fill = c }

// FillRect records a rectangle with the current fill color.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Fill: r.fill})
}

// Reset discards recorded rectangles so the recorder can be reused.
func (r *Recorder) Reset() {
	r.Rects = r.Rects[:0]
}
