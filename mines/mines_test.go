package mines

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// gameFromLayout builds a game whose mines are already placed. Rows are
// strings where '*' marks a mine and any other rune a safe cell.
func gameFromLayout(t *testing.T, clock *fakeClock, layout ...string) *Game {
	t.Helper()
	var (
		height = len(layout)
		width  = len(layout[0])
		mines  = strings.Count(strings.Join(layout, ""), "*")
	)
	g, err := New(
		Settings{Width: width, Height: height, Mines: max(mines, 1)},
		WithClock(clock.Now),
	)
	require.NoError(t, err)
	for y, row := range layout {
		for x, ch := range row {
			if ch == '*' {
				g.board.at(x, y).Mine = true
			}
		}
	}
	g.board.countNeighbors()
	g.placed = true
	g.mines = mines
	g.start = clock.Now()
	return g
}

func newSeededGame(t *testing.T, s Settings, seed uint64) *Game {
	t.Helper()
	g, err := New(s, WithRand(rand.New(rand.NewPCG(seed, 2))))
	require.NoError(t, err)
	return g
}

func states(g *Game) []CellState {
	res := make([]CellState, len(g.board.cells))
	for i, c := range g.board.cells {
		res[i] = c.State
	}
	return res
}

func countState(g *Game, s CellState) int {
	return g.board.count(func(c Cell) bool { return c.State == s })
}

func countMines(g *Game) int {
	return g.board.count(func(c Cell) bool { return c.Mine })
}
