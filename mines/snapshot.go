package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellView is what a player may know about a cell. Mine and
// NeighborMines are only filled in for revealed cells.
type CellView struct {
	X, Y          int
	State         CellState
	Mine          bool
	NeighborMines int
}

func (v CellView) String() string {
	switch v.State {
	case Hidden:
		return "#"
	case Flagged:
		return "F"
	case Questioned:
		return "?"
	}
	switch {
	case v.Mine:
		return "*"
	case v.NeighborMines == 0:
		return "."
	default:
		return strconv.Itoa(v.NeighborMines)
	}
}

type Snapshot struct {
	Width, Height int
	State         GameState
	Cells         [][]CellView // indexed [y][x]
}

func (s Snapshot) At(x, y int) CellView {
	return s.Cells[y][x]
}

func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "   ")
	for x := range s.Width {
		fmt.Fprintf(&b, "%2d", x%100)
	}
	fmt.Fprint(&b, "\n")
	for y, row := range s.Cells {
		fmt.Fprintf(&b, "%2d ", y)
		for _, v := range row {
			fmt.Fprint(&b, " "+v.String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// Snapshot returns a copy of the board; changing it has no effect on
// the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:  g.board.width,
		Height: g.board.height,
		State:  g.state,
		Cells:  make([][]CellView, g.board.height),
	}
	for y := range g.board.height {
		row := make([]CellView, g.board.width)
		for x := range g.board.width {
			c := g.board.at(x, y)
			v := CellView{X: x, Y: y, State: c.State}
			if c.State == Revealed {
				v.Mine = c.Mine
				if !c.Mine {
					v.NeighborMines = c.NeighborMines
				}
			}
			row[x] = v
		}
		s.Cells[y] = row
	}
	return s
}
