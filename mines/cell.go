package mines

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
	Questioned
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	default:
		return "unknown"
	}
}

// next returns the state that follows s on the flag ring
// hidden -> flagged -> questioned -> hidden. Revealed is a fixed point.
func (s CellState) next() CellState {
	switch s {
	case Hidden:
		return Flagged
	case Flagged:
		return Questioned
	case Questioned:
		return Hidden
	default:
		return s
	}
}

type Cell struct {
	X, Y          int
	Mine          bool
	State         CellState
	NeighborMines int
}

func (c Cell) covered() bool {
	return c.State != Revealed
}
