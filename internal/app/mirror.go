package app

import "lifewatch/pkg/core"

// Mirror is the UI-side copy of the board. It is fed from an Inbox while a run
// owns the engine and resynchronized from the engine whenever the UI does.
type Mirror struct {
	Cells   []core.CellState
	Columns int
	Rows    int
}

// Sync drops pending cell notifications and copies the whole board from v. It
// reports whether the dimensions changed.
func (m *Mirror) Sync(inbox *Inbox, v core.View) bool {
	inbox.dropCells()
	resized := v.Columns() != m.Columns || v.Rows() != m.Rows
	m.Columns, m.Rows = v.Columns(), v.Rows()
	m.Cells = v.AppendCells(m.Cells[:0])
	return resized
}

// Apply folds pending notifications into the mirror.
func (m *Mirror) Apply(inbox *Inbox) Batch {
	return inbox.Drain(m.Cells, m.Columns)
}
