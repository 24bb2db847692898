package core

import "testing"

func TestToggle(t *testing.T) {
	if Alive.Toggle() != Dead {
		t.Fatal("toggle(alive) must be dead")
	}
	if Dead.Toggle() != Alive {
		t.Fatal("toggle(dead) must be alive")
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g := NewGrid(4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", g.W, g.H)
	}
	if !g.AllDead() {
		t.Fatal("new grid must be all dead")
	}
	if got := g.CountAlive(); got != 0 {
		t.Fatalf("expected 0 alive cells, got %d", got)
	}
}

func TestGridEqualIsStructural(t *testing.T) {
	a := NewGrid(3, 3)
	b := NewGrid(3, 3)
	a.Set(1, 2, Alive)
	if a.Equal(b) {
		t.Fatal("grids with different cells must not be equal")
	}
	b.Set(1, 2, Alive)
	if !a.Equal(b) {
		t.Fatal("grids with matching cells must be equal")
	}
	if a.Equal(NewGrid(9, 1)) {
		t.Fatal("grids with different shapes must not be equal")
	}
}

func TestNewGridRejectsEmptySize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %dx%d grid", size[0], size[1])
				}
			}()
			NewGrid(size[0], size[1])
		}()
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Alive)
	c := g.Clone()
	c.Set(1, 1, Alive)
	if g.At(1, 1) != Dead {
		t.Fatal("writing to a clone must not affect the original")
	}
	if c.CountAlive() != 2 {
		t.Fatalf("expected clone to have 2 alive cells, got %d", c.CountAlive())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range coordinates")
		}
	}()
	g := NewGrid(3, 3)
	// (-1, 1) maps to a valid slice index, so only an explicit check catches it.
	g.At(-1, 1)
}

func TestViewAppendCellsCopies(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(1, 0, Alive)
	cells := g.View().AppendCells(nil)
	cells[1] = Dead
	if g.At(1, 0) != Alive {
		t.Fatal("cells appended from a view must not alias the grid")
	}
}

func TestRNGFillDeterministic(t *testing.T) {
	a := NewGrid(16, 16)
	b := NewGrid(16, 16)
	NewRNG(7).Fill(a, 0.4)
	NewRNG(7).Fill(b, 0.4)
	if !a.Equal(b) {
		t.Fatal("fill with equal seeds must be deterministic")
	}

	NewRNG(7).Fill(a, 0)
	if !a.AllDead() {
		t.Fatal("density 0 must leave every cell dead")
	}
	NewRNG(7).Fill(a, 1)
	if a.CountAlive() != 16*16 {
		t.Fatal("density 1 must make every cell alive")
	}
}
