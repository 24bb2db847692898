package core

// CellState is the value held by a single grid position.
type CellState uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead CellState = iota
	// Alive marks a populated cell.
	Alive
)

// Toggle returns the opposite state.
func (s CellState) Toggle() CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}
