package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/logging"
	"github.com/vancomm/minesweeper-engine/mines"
	"golang.org/x/sync/errgroup"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	game, err := mines.New(cfg.Settings(),
		mines.WithRand(cfg.Rand()),
		mines.WithLogger(log),
	)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	c := &client{
		game: game,
		out:  os.Stdout,
		log:  log.WithField("game", game.ID()),
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return c.loop(gCtx, readLines(os.Stdin))
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Error("exit reason: ", err)
	}
	log.WithFields(statsFields(game.Stats())).Info("bye")
}
