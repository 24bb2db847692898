package core

import "testing"

func gridWith(w, h int, alive ...[2]int) *Grid {
	g := NewGrid(w, h)
	for _, c := range alive {
		g.Set(c[0], c[1], Alive)
	}
	return g
}

func TestIsolatedCellDies(t *testing.T) {
	g := gridWith(3, 3, [2]int{1, 1})
	if NextState(g, 1, 1) != Dead {
		t.Fatal("isolated cell must die")
	}
	if !Step(g, nil).AllDead() {
		t.Fatal("board with one isolated cell must be empty after a step")
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	g := gridWith(4, 4, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	if next := Step(g, nil); !next.Equal(g) {
		t.Fatal("2x2 block must be unchanged by a step")
	}
}

func TestBirthAndSurvival(t *testing.T) {
	// Row of three: the center survives with 2, the cells above and below are born with 3.
	g := gridWith(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	if NextState(g, 2, 2) != Alive {
		t.Fatal("alive cell with 2 neighbors must survive")
	}
	if NextState(g, 2, 1) != Alive || NextState(g, 2, 3) != Alive {
		t.Fatal("dead cell with 3 neighbors must be born")
	}
	if NextState(g, 1, 2) != Dead {
		t.Fatal("alive cell with 1 neighbor must die")
	}
}

func TestOvercrowdingKills(t *testing.T) {
	g := gridWith(3, 3, [2]int{1, 1}, [2]int{0, 0}, [2]int{2, 0}, [2]int{0, 2}, [2]int{2, 2})
	if NextState(g, 1, 1) != Dead {
		t.Fatal("alive cell with 4 neighbors must die")
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	// With wrapping, (0,0) would see the three cells on the far column as neighbors.
	g := gridWith(4, 4, [2]int{3, 0}, [2]int{3, 1}, [2]int{3, 3})
	if NextState(g, 0, 0) != Dead {
		t.Fatal("cells on the opposite edge must not count as neighbors")
	}

	corner := gridWith(3, 3, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	if NextState(corner, 0, 0) != Alive {
		t.Fatal("corner cell with its 3 in-bounds neighbors alive must be born")
	}
}

func TestStepVisitsRowMajor(t *testing.T) {
	g := gridWith(3, 2, [2]int{1, 0})
	var order [][2]int
	Step(g, func(_ CellState, x, y int) {
		order = append(order, [2]int{x, y})
	})
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(order) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visit %d: got %v, expected %v", i, order[i], want[i])
		}
	}
}
