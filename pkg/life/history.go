package life

import "lifewatch/pkg/core"

// Generation is a retained grid tagged with the generation that produced it.
type Generation struct {
	Number int64
	Grid   *core.Grid
}

// History is a bounded FIFO of past generations, oldest first. Pushing onto a
// full buffer evicts the single oldest entry.
type History struct {
	buf   []Generation
	start int
	n     int
}

// NewHistory allocates a history holding at most capacity entries.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultKeepTrack
	}
	return &History{buf: make([]Generation, capacity)}
}

// Len returns the number of retained generations.
func (h *History) Len() int { return h.n }

// Cap returns the capacity.
func (h *History) Cap() int { return len(h.buf) }

// Push appends g, evicting the oldest entry first when full.
func (h *History) Push(g Generation) {
	if h.n == len(h.buf) {
		h.buf[h.start] = Generation{}
		h.start = (h.start + 1) % len(h.buf)
		h.n--
	}
	h.buf[(h.start+h.n)%len(h.buf)] = g
	h.n++
}

// At returns the i-th retained generation, 0 being the oldest.
func (h *History) At(i int) Generation {
	if i < 0 || i >= h.n {
		panic("life: history index out of range")
	}
	return h.buf[(h.start+i)%len(h.buf)]
}

// Oldest returns the oldest retained generation.
func (h *History) Oldest() (Generation, bool) {
	if h.n == 0 {
		return Generation{}, false
	}
	return h.At(0), true
}

// Newest returns the most recently pushed generation.
func (h *History) Newest() (Generation, bool) {
	if h.n == 0 {
		return Generation{}, false
	}
	return h.At(h.n - 1), true
}

// Distance scans from the newest entry to the oldest and returns the 1-based
// distance from the newest entry to the first grid equal to g, or 0 when no
// retained grid matches.
func (h *History) Distance(g *core.Grid) int {
	for d := 1; d <= h.n; d++ {
		if h.At(h.n - d).Grid.Equal(g) {
			return d
		}
	}
	return 0
}

// Clear drops every retained generation.
func (h *History) Clear() {
	clear(h.buf)
	h.start = 0
	h.n = 0
}

// Resize changes the capacity, keeping the newest entries that still fit.
func (h *History) Resize(capacity int) {
	if capacity <= 0 || capacity == len(h.buf) {
		return
	}
	keep := min(h.n, capacity)
	buf := make([]Generation, capacity)
	for i := 0; i < keep; i++ {
		buf[i] = h.At(h.n - keep + i)
	}
	h.buf = buf
	h.start = 0
	h.n = keep
}

// Clone returns a deep copy; retained grids are copied too.
func (h *History) Clone() *History {
	c := &History{buf: make([]Generation, len(h.buf)), n: h.n}
	for i := 0; i < h.n; i++ {
		g := h.At(i)
		c.buf[i] = Generation{Number: g.Number, Grid: g.Grid.Clone()}
	}
	return c
}
