package life

import (
	"fmt"

	"lifewatch/pkg/core"
)

// DefaultKeepTrack is the default number of generations retained for cycle
// detection.
const DefaultKeepTrack = 100

// Notifier receives one call per cell write. x is the column, y the row.
type Notifier interface {
	CellChanged(state core.CellState, x, y int)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(state core.CellState, x, y int)

// CellChanged calls f.
func (f NotifierFunc) CellChanged(state core.CellState, x, y int) { f(state, x, y) }

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithKeepTrack sets the history capacity. Non-positive values keep the default.
func WithKeepTrack(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.keepTrack = n
		}
	}
}

// WithNotifier installs the cell change sink.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// Stats summarizes the engine state after the most recent change.
type Stats struct {
	Rows        int
	Columns     int
	Generations int64
	Alive       int
	AllDead     bool
	Static      bool
	Period      int
}

// Engine runs Conway's Game of Life on a board with hard edges and tracks
// whether the board has become static or started repeating.
//
// An Engine is not safe for concurrent use. While a runner drives it, only the
// runner's goroutine may touch it.
type Engine struct {
	cur         *core.Grid
	generations int64
	static      bool
	period      int
	keepTrack   int
	history     *History
	notifier    Notifier
}

// New creates an all-dead engine with the given dimensions.
func New(rows, columns int, opts ...Option) (*Engine, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %d rows, %d columns", ErrInvalidSize, rows, columns)
	}
	e := &Engine{cur: core.NewGrid(columns, rows), keepTrack: DefaultKeepTrack}
	for _, opt := range opts {
		opt(e)
	}
	e.history = NewHistory(e.keepTrack)
	return e, nil
}

// SetNotifier replaces the cell change sink. A nil notifier disables
// notifications.
func (e *Engine) SetNotifier(n Notifier) { e.notifier = n }

// Rows returns the board height.
func (e *Engine) Rows() int { return e.cur.H }

// Columns returns the board width.
func (e *Engine) Columns() int { return e.cur.W }

// Cell returns the state at column x, row y.
func (e *Engine) Cell(x, y int) core.CellState { return e.cur.At(x, y) }

// SetCell writes a single cell, starts a new detection epoch and emits one
// notification for the cell.
func (e *Engine) SetCell(state core.CellState, x, y int) {
	if !e.cur.In(x, y) {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d board", x, y, e.cur.W, e.cur.H))
	}
	e.edit(func(g *core.Grid) { g.Set(x, y, state) })
	e.notify(state, x, y)
}

// Toggle flips a single cell. It is a manual edit like SetCell.
func (e *Engine) Toggle(x, y int) {
	e.SetCell(e.cur.At(x, y).Toggle(), x, y)
}

// Clear kills every cell and reports each one.
func (e *Engine) Clear() {
	e.edit((*core.Grid).Clear)
	e.notifyAll()
}

// Randomize fills the board from a seeded RNG and reports each cell.
func (e *Engine) Randomize(seed int64, density float64) {
	rng := core.NewRNG(seed)
	e.edit(func(g *core.Grid) { rng.Fill(g, density) })
	e.notifyAll()
}

// Resize replaces the board with an all-dead one of the new size. Invalid
// sizes leave the engine untouched.
func (e *Engine) Resize(rows, columns int) error {
	if rows <= 0 || columns <= 0 {
		return fmt.Errorf("%w: %d rows, %d columns", ErrInvalidSize, rows, columns)
	}
	e.cur = core.NewGrid(columns, rows)
	e.resetAnalysis()
	return nil
}

// edit applies fn to a private copy of the current grid, so no retained
// generation is ever written, and begins a new detection epoch.
func (e *Engine) edit(fn func(g *core.Grid)) {
	next := e.cur.Clone()
	fn(next)
	e.cur = next
	e.resetAnalysis()
}

func (e *Engine) resetAnalysis() {
	e.generations = 0
	e.static = false
	e.period = 0
	e.history.Clear()
}

// Advance computes the next generation. It is a no-op once the board is
// static. Every cell of the new generation is reported, changed or not.
func (e *Engine) Advance() {
	if e.static {
		return
	}
	if e.history.Len() == 0 {
		// The epoch's starting grid counts as generation 0 so cycles that
		// return to a hand-edited board are found.
		e.history.Push(Generation{Number: e.generations, Grid: e.cur})
	}
	next := core.Step(e.cur, e.notify)
	e.generations++
	switch {
	case next.Equal(e.cur) || next.AllDead():
		e.static = true
	case e.period == 0:
		e.period = e.history.Distance(next)
	}
	e.history.Push(Generation{Number: e.generations, Grid: next})
	e.cur = next
}

// AllDead reports whether no cell is alive.
func (e *Engine) AllDead() bool { return e.cur.AllDead() }

// CountAlive returns the number of alive cells.
func (e *Engine) CountAlive() int { return e.cur.CountAlive() }

// Field returns a read-only view of the current generation.
func (e *Engine) Field() core.View { return e.cur.View() }

// Generations returns the number of advances since the last edit or resize.
func (e *Engine) Generations() int64 { return e.generations }

// Static reports whether a generation matched its predecessor or the board died out.
func (e *Engine) Static() bool { return e.static }

// CyclicPeriod returns the detected period, if any.
func (e *Engine) CyclicPeriod() (int, bool) { return e.period, e.period > 0 }

// Cyclic reports whether a repeating configuration was found in this epoch.
func (e *Engine) Cyclic() bool { return e.period > 0 }

// History exposes the retained generations for inspection. Callers must not
// modify the returned grids.
func (e *Engine) History() *History { return e.history }

// KeepTrack returns the history capacity.
func (e *Engine) KeepTrack() int { return e.keepTrack }

// SetKeepTrack changes the history capacity, evicting the oldest entries when
// shrinking.
func (e *Engine) SetKeepTrack(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKeepTrack, n)
	}
	e.keepTrack = n
	e.history.Resize(n)
	return nil
}

// Stats returns a summary of the current state.
func (e *Engine) Stats() Stats {
	alive := e.cur.CountAlive()
	return Stats{
		Rows:        e.cur.H,
		Columns:     e.cur.W,
		Generations: e.generations,
		Alive:       alive,
		AllDead:     alive == 0,
		Static:      e.static,
		Period:      e.period,
	}
}

// Clone returns an independent deep copy of the grid, counters, flags and
// history. The clone has no notifier.
func (e *Engine) Clone() *Engine {
	return &Engine{
		cur:         e.cur.Clone(),
		generations: e.generations,
		static:      e.static,
		period:      e.period,
		keepTrack:   e.keepTrack,
		history:     e.history.Clone(),
	}
}

// Restore replaces the state of e with a deep copy of from and reports every
// cell so observers can redraw. The notifier of e is kept.
func (e *Engine) Restore(from *Engine) {
	c := from.Clone()
	e.cur = c.cur
	e.generations = c.generations
	e.static = c.static
	e.period = c.period
	e.keepTrack = c.keepTrack
	e.history = c.history
	e.notifyAll()
}

func (e *Engine) notify(s core.CellState, x, y int) {
	if e.notifier != nil {
		e.notifier.CellChanged(s, x, y)
	}
}

func (e *Engine) notifyAll() {
	if e.notifier == nil {
		return
	}
	for y := 0; y < e.cur.H; y++ {
		for x := 0; x < e.cur.W; x++ {
			e.notifier.CellChanged(e.cur.At(x, y), x, y)
		}
	}
}
