package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/command"
	"github.com/vancomm/minesweeper-engine/mines"
)

var errQuit = errors.New("quit")

type client struct {
	game *mines.Game
	out  io.Writer
	log  logrus.FieldLogger
}

// readLines feeds lines from r into the returned channel until EOF.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(r)
		for s.Scan() {
			lines <- s.Text()
		}
	}()
	return lines
}

// loop executes commands until quit, end of input or ctx is done. It
// always returns a non-nil error; errQuit marks a regular exit.
func (c *client) loop(ctx context.Context, lines <-chan string) error {
	c.show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := c.handle(line); err != nil {
				return err
			}
		}
	}
}

func (c *client) handle(line string) error {
	cmd, err := command.Parse(line)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return nil
	}
	c.log.WithField("line", line).Debug("command")

	switch cmd.Kind {
	case command.Quit:
		return errQuit
	case command.Help:
		fmt.Fprint(c.out, command.Usage)
	case command.Show:
		c.show()
	case command.Stats:
		c.stats()
	default:
		before := c.game.State()
		if err := cmd.Apply(c.game); err != nil {
			fmt.Fprintln(c.out, err)
			return nil
		}
		c.show()
		if after := c.game.State(); after != before && after != mines.Playing {
			c.log.WithFields(statsFields(c.game.Stats())).Info("game over")
		}
	}
	return nil
}

func (c *client) show() {
	fmt.Fprint(c.out, c.game.Snapshot().String())
	c.stats()
}

func (c *client) stats() {
	s := c.game.Stats()
	fmt.Fprintf(c.out, "%s | mines %d | flags %d | time %ds\n",
		s.State, s.MinesTotal, s.FlagsPlaced, s.ElapsedSeconds,
	)
}

func statsFields(s mines.Stats) logrus.Fields {
	return logrus.Fields{
		"state":   s.State.String(),
		"mines":   s.MinesTotal,
		"flags":   s.FlagsPlaced,
		"elapsed": s.Elapsed.String(),
	}
}
