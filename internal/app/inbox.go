package app

import (
	"sync"

	"lifewatch/pkg/core"
	"lifewatch/pkg/life"
	"lifewatch/pkg/runner"
)

type cellUpdate struct {
	state core.CellState
	x, y  int
}

// Inbox buffers cell notifications, tick summaries and run reports produced on
// the run goroutine until the UI goroutine drains them.
type Inbox struct {
	mu       sync.Mutex
	cells    []cellUpdate
	stats    life.Stats
	hasStats bool
	pattern  string
	status   string
	changed  bool
}

// Batch is what a Drain call hands to the UI.
type Batch struct {
	Stats    life.Stats
	HasStats bool
	// Pattern is the latest terminal or cyclic report, Status the latest stop
	// report. Both are only meaningful when Messages is set.
	Pattern  string
	Status   string
	Messages bool
}

// NewInbox returns an empty inbox.
func NewInbox() *Inbox { return &Inbox{} }

// CellChanged implements life.Notifier.
func (b *Inbox) CellChanged(state core.CellState, x, y int) {
	b.mu.Lock()
	b.cells = append(b.cells, cellUpdate{state: state, x: x, y: y})
	b.mu.Unlock()
}

// Tick implements runner.TickFunc.
func (b *Inbox) Tick(st life.Stats, _ core.View) {
	b.mu.Lock()
	b.stats = st
	b.hasStats = true
	b.mu.Unlock()
}

// Report implements runner.Reporter.
func (b *Inbox) Report(r runner.Report) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r.Kind == runner.Stopped {
		b.status = r.String()
	} else {
		b.pattern = r.String()
	}
	b.changed = true
}

// ClearMessages forgets any undrained report messages.
func (b *Inbox) ClearMessages() {
	b.mu.Lock()
	b.pattern, b.status, b.changed = "", "", false
	b.mu.Unlock()
}

func (b *Inbox) dropCells() {
	b.mu.Lock()
	b.cells = nil
	b.mu.Unlock()
}

// Drain applies buffered cell updates to cells, a row-major buffer of the given
// width, and returns the newest summary and messages. Updates outside the
// buffer are dropped.
func (b *Inbox) Drain(cells []core.CellState, columns int) Batch {
	b.mu.Lock()
	pending := b.cells
	b.cells = nil
	batch := Batch{
		Stats:    b.stats,
		HasStats: b.hasStats,
		Pattern:  b.pattern,
		Status:   b.status,
		Messages: b.changed,
	}
	b.hasStats = false
	b.changed = false
	b.mu.Unlock()

	for _, u := range pending {
		if u.x < 0 || u.x >= columns {
			continue
		}
		idx := u.y*columns + u.x
		if idx < 0 || idx >= len(cells) {
			continue
		}
		cells[idx] = u.state
	}
	return batch
}
