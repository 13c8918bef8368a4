package core

// MooreNeighbors enumerates the relative offsets of a square stencil of the
// given radius, centered on the origin. Offsets are produced in row-major
// scan order from (-R,-R) to (R,R) inclusive, (0,0) among them; callers that
// want "neighbors excluding self" skip it themselves. The enumerator knows
// nothing about wrapping — callers add offsets to a center coordinate and
// let the Grid resolve the sum.
type MooreNeighbors struct {
	radius int
	dx, dy int
	done   bool
}

// NewMooreNeighbors constructs an enumerator for the given stencil radius.
// Negative radii are treated as 0, which yields the single offset (0,0).
func NewMooreNeighbors(radius int) *MooreNeighbors {
	if radius < 0 {
		radius = 0
	}
	return &MooreNeighbors{radius: radius, dx: -radius, dy: -radius}
}

// Next returns the next offset pair. ok is false once all (2R+1)² offsets
// have been produced.
func (m *MooreNeighbors) Next() (dx, dy int, ok bool) {
	if m.done {
		return 0, 0, false
	}
	dx, dy = m.dx, m.dy
	switch {
	case m.dx == m.radius && m.dy == m.radius:
		m.done = true
	case m.dx == m.radius:
		m.dx = -m.radius
		m.dy++
	default:
		m.dx++
	}
	return dx, dy, true
}

// Reset rewinds the enumerator to the first offset.
func (m *MooreNeighbors) Reset() {
	m.dx, m.dy = -m.radius, -m.radius
	m.done = false
}
