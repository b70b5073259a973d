package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GameState int8

const (
	Playing GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type Option func(*Game)

// WithRand sets the source used for mine placement. Pass a seeded
// generator to make layouts reproducible.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rnd = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) {
		g.log = l
	}
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Game owns one board. It is not safe for concurrent use; every command
// runs to completion before returning.
type Game struct {
	id       string
	settings Settings
	board    board
	state    GameState
	placed   bool
	mines    int
	start    time.Time
	end      time.Time

	rnd *rand.Rand
	now func() time.Time
	log logrus.FieldLogger
}

func New(settings Settings, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		id:       uuid.NewString(),
		settings: settings,
		now:      time.Now,
		log:      Log,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = NewRand()
	}
	g.log = g.log.WithField("game", g.id)
	g.reset()
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Settings() Settings {
	return g.settings
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) checkBounds(op string, x, y int) error {
	if !g.board.inBounds(x, y) {
		return fmt.Errorf(
			"%w: %s %d:%d on %dx%d board",
			ErrOutOfBounds, op, x, y, g.board.width, g.board.height,
		)
	}
	return nil
}

// Open is the primary action. The first accepted Open of a game lays
// out the mines around (x, y) and starts the clock.
func (g *Game) Open(x, y int) error {
	if err := g.checkBounds("open", x, y); err != nil {
		return err
	}
	if g.state != Playing {
		return nil
	}
	c := g.board.at(x, y)
	if c.State == Flagged || c.State == Questioned {
		return nil
	}
	if !g.placed {
		g.mines = g.board.placeMines(g.settings, x, y, g.rnd)
		g.placed = true
		g.start = g.now()
		g.log.WithFields(logrus.Fields{
			"x": x, "y": y, "mines": g.mines,
		}).Debug("mines placed")
	}
	g.reveal(x, y)
	return nil
}

// Flag is the secondary action: it moves a covered cell along the ring
// hidden -> flagged -> questioned -> hidden.
func (g *Game) Flag(x, y int) error {
	if err := g.checkBounds("flag", x, y); err != nil {
		return err
	}
	if g.state != Playing {
		return nil
	}
	c := g.board.at(x, y)
	c.State = c.State.next()
	return nil
}

// Chord opens every hidden neighbour of a revealed numbered cell once
// exactly that many neighbours are flagged. Questioned neighbours are
// left alone.
func (g *Game) Chord(x, y int) error {
	if err := g.checkBounds("chord", x, y); err != nil {
		return err
	}
	if g.state != Playing {
		return nil
	}
	c := g.board.at(x, y)
	if c.State != Revealed || c.NeighborMines == 0 {
		return nil
	}

	var (
		flagged int
		hidden  = make([]*Cell, 0, 8)
	)
	for _, n := range g.board.neighbors(x, y) {
		switch n.State {
		case Flagged:
			flagged++
		case Hidden:
			hidden = append(hidden, n)
		}
	}
	if flagged != c.NeighborMines {
		return nil
	}
	for _, n := range hidden {
		g.reveal(n.X, n.Y)
		if g.state != Playing {
			return nil
		}
	}
	return nil
}

func (g *Game) Reset() {
	g.reset()
	g.log.Debug("game reset")
}

// ResetWith starts over on a board described by settings.
func (g *Game) ResetWith(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	g.settings = settings
	g.Reset()
	return nil
}

func (g *Game) reset() {
	g.state = Playing
	g.placed = false
	g.mines = 0
	g.start, g.end = time.Time{}, time.Time{}
	g.board = newBoard(g.settings.Width, g.settings.Height)
}

// reveal opens (x, y) and, when it has no mined neighbours, the whole
// connected zero region around it together with its numbered border.
func (g *Game) reveal(x, y int) {
	c := g.board.at(x, y)
	if c.State != Hidden {
		return
	}
	c.State = Revealed

	if c.Mine {
		g.lose(x, y)
		return
	}

	stack := []*Cell{c}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.NeighborMines != 0 {
			continue
		}
		for _, n := range g.board.neighbors(c.X, c.Y) {
			if n.State == Hidden {
				n.State = Revealed
				stack = append(stack, n)
			}
		}
	}

	g.checkWin()
}

func (g *Game) lose(x, y int) {
	g.state = Lost
	g.end = g.now()
	for i := range g.board.cells {
		if g.board.cells[i].Mine {
			g.board.cells[i].State = Revealed
		}
	}
	g.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("game lost")
}

/*
The game is won once exactly as many cells are still covered as there
are mines on the board. Covered mines are then flagged for display.
*/
func (g *Game) checkWin() {
	covered := g.board.count(Cell.covered)
	if covered != g.mines {
		return
	}
	g.state = Won
	g.end = g.now()
	for i := range g.board.cells {
		c := &g.board.cells[i]
		if c.Mine && c.covered() {
			c.State = Flagged
		}
	}
	g.log.WithField("elapsed", g.end.Sub(g.start).String()).Debug("game won")
}

type Stats struct {
	Elapsed        time.Duration
	ElapsedSeconds int
	FlagsPlaced    int
	MinesTotal     int
	State          GameState
}

// Stats reports the clock and counters. Elapsed is zero until the first
// Open and stops when the game ends.
func (g *Game) Stats() Stats {
	var elapsed time.Duration
	if !g.start.IsZero() {
		end := g.end
		if end.IsZero() {
			end = g.now()
		}
		elapsed = end.Sub(g.start)
	}
	return Stats{
		Elapsed:        elapsed,
		ElapsedSeconds: int(elapsed / time.Second),
		FlagsPlaced: g.board.count(func(c Cell) bool {
			return c.State == Flagged
		}),
		MinesTotal: g.minesTotal(),
		State:      g.state,
	}
}

// minesTotal is the configured count until the layout exists and the
// number actually placed afterwards.
func (g *Game) minesTotal() int {
	if g.placed {
		return g.mines
	}
	return g.settings.Mines
}
