package mines

// board is a row-major grid of cells: cell (x, y) lives at y*width+x.
type board struct {
	width, height int
	cells         []Cell
}

func newBoard(width, height int) board {
	b := board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := range height {
		for x := range width {
			b.cells[y*width+x] = Cell{X: x, Y: y, State: Hidden}
		}
	}
	return b
}

func (b *board) inBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *board) at(x, y int) *Cell {
	return &b.cells[y*b.width+x]
}

// neighbors returns the in-bounds cells at Chebyshev distance 1
// from (x, y).
func (b *board) neighbors(x, y int) []*Cell {
	ns := make([]*Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && b.inBounds(x+dx, y+dy) {
				ns = append(ns, b.at(x+dx, y+dy))
			}
		}
	}
	return ns
}

func (b *board) count(pred func(Cell) bool) (n int) {
	for _, c := range b.cells {
		if pred(c) {
			n++
		}
	}
	return
}

func (b *board) countNeighbors() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.Mine {
			continue
		}
		c.NeighborMines = 0
		for _, n := range b.neighbors(c.X, c.Y) {
			if n.Mine {
				c.NeighborMines++
			}
		}
	}
}
