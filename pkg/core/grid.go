package core

import (
	"fmt"
	"slices"
)

// Grid stores one generation of cells in row-major order. W is the number of
// columns and H the number of rows.
type Grid struct {
	W, H  int
	cells []CellState
}

// NewGrid allocates an all-dead grid with the given dimensions. It panics
// unless both are positive.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid{W: w, H: h, cells: make([]CellState, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies on the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the state at (x, y). It panics when the coordinates are outside
// the grid.
func (g *Grid) At(x, y int) CellState {
	g.mustContain(x, y)
	return g.cells[g.Index(x, y)]
}

// Set writes the state at (x, y). Only the owner of a grid that has not been
// published yet may call it.
func (g *Grid) Set(x, y int, s CellState) {
	g.mustContain(x, y)
	g.cells[g.Index(x, y)] = s
}

func (g *Grid) mustContain(x, y int) {
	if !g.In(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}

// Equal reports whether both grids have the same shape and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	return slices.Equal(g.cells, o.cells)
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, cells: slices.Clone(g.cells)}
}

// AllDead reports whether no cell is alive.
func (g *Grid) AllDead() bool {
	return !slices.Contains(g.cells, Alive)
}

// CountAlive returns the number of alive cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// View returns a read-only view of the grid.
func (g *Grid) View() View { return View{g: g} }

// View is a read-only window onto a Grid. It never exposes the backing slice.
type View struct {
	g *Grid
}

// Columns returns the grid width.
func (v View) Columns() int { return v.g.W }

// Rows returns the grid height.
func (v View) Rows() int { return v.g.H }

// At returns the state at (x, y).
func (v View) At(x, y int) CellState { return v.g.At(x, y) }

// CountAlive returns the number of alive cells.
func (v View) CountAlive() int { return v.g.CountAlive() }

// Equal compares the viewed grid with another grid.
func (v View) Equal(o *Grid) bool { return v.g.Equal(o) }

// Clone copies the viewed grid into a new, independently owned grid.
func (v View) Clone() *Grid { return v.g.Clone() }

// AppendCells appends the cells in row-major order to dst.
func (v View) AppendCells(dst []CellState) []CellState {
	return append(dst, v.g.cells...)
}
