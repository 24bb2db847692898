package core

// NextState applies Conway's B3/S23 rule to the cell at (x, y). Neighbors
// outside the grid do not exist, so edge and corner cells simply have fewer of
// them.
func NextState(g *Grid, x, y int) CellState {
	n := aliveNeighbors(g, x, y)
	if g.At(x, y) == Alive {
		if n == 2 || n == 3 {
			return Alive
		}
		return Dead
	}
	if n == 3 {
		return Alive
	}
	return Dead
}

func aliveNeighbors(g *Grid, x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= g.W {
				continue
			}
			if g.cells[ny*g.W+nx] == Alive {
				neighbors++
			}
		}
	}
	return neighbors
}

// Step computes the next generation of g into a fresh grid. Every cell is read
// from g, never from the grid being built. When visit is non-nil it is called
// once per cell in row-major order with the cell's new state.
func Step(g *Grid, visit func(s CellState, x, y int)) *Grid {
	next := NewGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			s := NextState(g, x, y)
			next.cells[y*g.W+x] = s
			if visit != nil {
				visit(s, x, y)
			}
		}
	}
	return next
}
