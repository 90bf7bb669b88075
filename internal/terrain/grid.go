// Package terrain paints Wang tiles onto a grid of cells.
package terrain

import (
	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wang-tool/internal/tileset"
	"github.com/woozymasta/wang-tool/internal/wang"
)

// MaxSide is the largest accepted grid width or height.
const MaxSide = 4096

// Grid is a rectangular layer of cells, row-major, origin at the top left.
type Grid struct {
	cells  []tileset.Cell
	width  int
	height int
}

// neighbours holds the grid offsets of the eight surrounding cells in wang.Index order.
var neighbours = [wang.NumIndexes]struct{ dx, dy int }{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return nil, errors.Newf("grid size %dx%d out of range [1,%d]", width, height, MaxSide)
	}

	return &Grid{width: width, height: height, cells: make([]tileset.Cell, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Cell returns the cell at (x, y). Outside the grid the cell is empty.
func (g *Grid) Cell(x, y int) tileset.Cell {
	if !g.Contains(x, y) {
		return tileset.Cell{}
	}

	return g.cells[y*g.width+x]
}

// SetCell places c at (x, y) and reports whether the position was inside the grid.
func (g *Grid) SetCell(x, y int, c tileset.Cell) bool {
	if !g.Contains(x, y) {
		return false
	}

	g.cells[y*g.width+x] = c
	return true
}

// Surrounding returns the eight cells around (x, y) in wang.Index order.
func (g *Grid) Surrounding(x, y int) [wang.NumIndexes]tileset.Cell {
	var out [wang.NumIndexes]tileset.Cell
	for i, n := range neighbours {
		out[i] = g.Cell(x+n.dx, y+n.dy)
	}

	return out
}

// EmptyCount returns the number of cells without a tile.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEmpty() {
			n++
		}
	}

	return n
}
