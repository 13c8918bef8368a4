package core

import "fmt"

// Grid stores a fixed-size 2D board of cell states in row-major order.
// Indexing wraps toroidally on both axes, so every integer coordinate,
// including negative ones, resolves to exactly one cell.
type Grid[S any] struct {
	w, h  int
	cells []S
}

// NewGrid allocates a w×h grid with every cell set to the zero value of S.
// The dimensions are fixed for the lifetime of the grid.
func NewGrid[S any](w, h int) (*Grid[S], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Grid[S]{w: w, h: h, cells: make([]S, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid[S]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[S]) Height() int { return g.h }

// wrap maps any integer coordinate onto [0, dim). A negative coordinate
// that is an exact multiple of the dimension wraps to 0, not to dim.
func wrap(c, dim int) int {
	return (c%dim + dim) % dim
}

func (g *Grid[S]) index(x, y int) int {
	return wrap(x, g.w) + wrap(y, g.h)*g.w
}

// Get returns the state at (x, y) after toroidal wrapping.
func (g *Grid[S]) Get(x, y int) S { return g.cells[g.index(x, y)] }

// Set stores v at (x, y) after toroidal wrapping.
func (g *Grid[S]) Set(x, y int, v S) { g.cells[g.index(x, y)] = v }

// Clear resets every cell to the zero value of S.
func (g *Grid[S]) Clear() {
	var zero S
	for i := range g.cells {
		g.cells[i] = zero
	}
}
