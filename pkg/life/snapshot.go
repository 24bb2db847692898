package life

import (
	"fmt"

	"lifewatch/pkg/core"
)

// Point is a cell coordinate; X is the column and Y the row.
type Point struct {
	X, Y int
}

// Snapshot is the collaborator-facing description of a board: its dimensions
// plus the alive cells. Duplicate points are allowed.
type Snapshot struct {
	Columns int
	Rows    int
	Alive   []Point
}

// Validate checks the dimensions and that every point lies on the board.
func (s Snapshot) Validate() error {
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%w: %w: %d columns, %d rows", ErrMalformedSnapshot, ErrInvalidSize, s.Columns, s.Rows)
	}
	for i, p := range s.Alive {
		if p.X < 0 || p.Y < 0 || p.X >= s.Columns || p.Y >= s.Rows {
			return fmt.Errorf("%w: point %d (%d,%d) outside %dx%d board",
				ErrMalformedSnapshot, i, p.X, p.Y, s.Columns, s.Rows)
		}
	}
	return nil
}

// Export describes the current generation of e, listing alive cells in
// row-major order.
func Export(e *Engine) Snapshot {
	s := Snapshot{Columns: e.cur.W, Rows: e.cur.H}
	for y := 0; y < e.cur.H; y++ {
		for x := 0; x < e.cur.W; x++ {
			if e.cur.At(x, y) == core.Alive {
				s.Alive = append(s.Alive, Point{X: x, Y: y})
			}
		}
	}
	return s
}

// Import builds a fresh engine from s. Nothing is constructed when s is
// malformed. The new engine starts a fresh epoch and emits no notifications.
func Import(s Snapshot, opts ...Option) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	e, err := New(s.Rows, s.Columns, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range s.Alive {
		e.cur.Set(p.X, p.Y, core.Alive)
	}
	return e, nil
}
