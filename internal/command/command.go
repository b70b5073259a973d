package command

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-engine/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("bad usage")
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type Kind int

const (
	Open Kind = iota
	Flag
	Chord
	Reset
	New
	Show
	Stats
	Help
	Quit
)

var kinds = map[string]Kind{
	"open": Open, "o": Open,
	"flag": Flag, "f": Flag,
	"chord": Chord, "c": Chord,
	"reset": Reset, "r": Reset,
	"new": New, "n": New,
	"show": Show, "s": Show,
	"stats": Stats,
	"help": Help, "h": Help, "?": Help,
	"quit": Quit, "q": Quit, "exit": Quit,
}

const Usage = `commands:
  open  x y    (o)  reveal a cell
  flag  x y    (f)  cycle hidden -> flagged -> questioned
  chord x y    (c)  reveal around a satisfied number
  reset        (r)  start over on the same board
  new   board  (n)  beginner | intermediate | expert | 16x16:40 |
                    width=16&height=16&mines=40
  show         (s)  print the board
  stats             print time, flags and mines
  quit         (q)
`

type Command struct {
	Kind     Kind
	X, Y     int
	Settings mines.Settings
}

// Mutates reports whether c changes the game.
func (c Command) Mutates() bool {
	switch c.Kind {
	case Open, Flag, Chord, Reset, New:
		return true
	}
	return false
}

func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUsage)
	}
	kind, ok := kinds[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	cmd := Command{Kind: kind}

	switch kind {
	case Open, Flag, Chord:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: %s takes x and y", ErrUsage, fields[0])
		}
		var err error
		if cmd.X, err = strconv.Atoi(args[0]); err != nil {
			return Command{}, fmt.Errorf("%w: bad x: %w", ErrUsage, err)
		}
		if cmd.Y, err = strconv.Atoi(args[1]); err != nil {
			return Command{}, fmt.Errorf("%w: bad y: %w", ErrUsage, err)
		}
	case New:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: new takes one board argument", ErrUsage)
		}
		s, err := parseBoard(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cmd.Settings = s
	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrUsage, fields[0])
		}
	}

	return cmd, nil
}

// parseBoard accepts a difficulty name, the compact WxH:M form or a
// width=..&height=..&mines=.. query. Custom boards are clamped.
func parseBoard(arg string) (mines.Settings, error) {
	if d, err := mines.ParseDifficulty(arg); err == nil {
		return d.Settings(), nil
	}
	if !strings.Contains(arg, "=") {
		s, err := mines.ParseSettings(arg)
		if err != nil {
			return mines.Settings{}, err
		}
		return s.Clamp(), nil
	}
	query, err := url.ParseQuery(arg)
	if err != nil {
		return mines.Settings{}, err
	}
	var s mines.Settings
	if err := decoder.Decode(&s, query); err != nil {
		return mines.Settings{}, err
	}
	return s.Clamp(), nil
}

// Apply runs a game command against g. Commands that only read the game
// are ignored.
func (c Command) Apply(g *mines.Game) error {
	switch c.Kind {
	case Open:
		return g.Open(c.X, c.Y)
	case Flag:
		return g.Flag(c.X, c.Y)
	case Chord:
		return g.Chord(c.X, c.Y)
	case Reset:
		g.Reset()
	case New:
		return g.ResetWith(c.Settings)
	}
	return nil
}
