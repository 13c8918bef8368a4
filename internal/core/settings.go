package core

// Settings carries the fixed presentation constants consumed by the core.
// It is constructed once at startup and injected; nothing mutates it
// afterwards.
type Settings struct {
	// CellSize is the world-space edge length of one cell, in pixels at
	// scale 1.0.
	CellSize float64
	// CellInset is the gap left around each cell fill so grid lines stay
	// visible between cells.
	CellInset float64
	// TPS is the auto-run rate in generations per second.
	TPS int
	// MinDragX and MinDragY bound the pointer movement below which a
	// press/release pair counts as a click rather than a pan gesture.
	MinDragX int
	MinDragY int
	// ZoomStep is the scale change applied per wheel-delta unit.
	ZoomStep float64
}

// DefaultSettings returns the stock presentation constants.
func DefaultSettings() Settings {
	return Settings{
		CellSize:  50,
		CellInset: 1,
		TPS:       10,
		MinDragX:  5,
		MinDragY:  5,
		ZoomStep:  0.001,
	}
}
