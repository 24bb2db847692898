package life

import (
	"fmt"
	"sort"

	"lifewatch/pkg/core"
)

// Pattern is a named set of alive cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []Point
}

// Bounds returns the width and height of the smallest box holding every cell.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name. Unnamed or empty patterns and
// patterns with negative cell offsets are ignored.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	if hasNegative(p.Cells) {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the cells of p alive with its top-left corner at (x, y). Other
// cells are left as they are. Stamping is a manual edit: it starts a new
// detection epoch and reports each stamped cell.
func (e *Engine) Stamp(p Pattern, x, y int) error {
	w, h := p.Bounds()
	if x < 0 || y < 0 || x+w > e.cur.W || y+h > e.cur.H || hasNegative(p.Cells) {
		return fmt.Errorf("%w: %q (%dx%d) at (%d,%d) on %dx%d board",
			ErrPatternBounds, p.Name, w, h, x, y, e.cur.W, e.cur.H)
	}
	e.edit(func(g *core.Grid) {
		for _, c := range p.Cells {
			g.Set(x+c.X, y+c.Y, core.Alive)
		}
	})
	for _, c := range p.Cells {
		e.notify(core.Alive, x+c.X, y+c.Y)
	}
	return nil
}

func hasNegative(cells []Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 {
			return true
		}
	}
	return false
}

// StampCentered stamps p in the middle of the board.
func (e *Engine) StampCentered(p Pattern) error {
	w, h := p.Bounds()
	return e.Stamp(p, (e.cur.W-w)/2, (e.cur.H-h)/2)
}

func init() {
	Register(Pattern{Name: "blinker", Cells: []Point{{0, 0}, {1, 0}, {2, 0}}})
	Register(Pattern{Name: "block", Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}})
	Register(Pattern{Name: "glider", Cells: []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}})
	Register(Pattern{Name: "toad", Cells: []Point{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}})
	Register(Pattern{Name: "beacon", Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}})
	Register(Pattern{Name: "r-pentomino", Cells: []Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}})
	Register(Pattern{Name: "diehard", Cells: []Point{{6, 0}, {0, 1}, {1, 1}, {1, 2}, {5, 2}, {6, 2}, {7, 2}}})
}
