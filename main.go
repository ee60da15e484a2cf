package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"snake-game/audio"
	"snake-game/config"
	"snake-game/game"
	"snake-game/game/rng"
	"snake-game/logging"
	"snake-game/session"
	"snake-game/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(fs, ".")
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logging.New(logFile, cfg.Log.Level)

	g := game.NewGame(cfg.Board.Height, cfg.Board.Width, newSource(cfg.RNG, log), game.WithLogger(log))

	fe, err := ui.New(cfg.Frontend, g.Grid)
	if err != nil {
		return err
	}

	opts := session.Options{
		Interval: cfg.Tick.Interval,
		Logger:   log,
	}
	if cfg.Audio.Enabled {
		cues, err := audio.New(log)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Warn().Err(err).Msg("audio initialization failed")
		} else {
			defer cues.Close()
			opts.Notifier = cues
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := session.Run(ctx, g, fe, opts)
	if err != nil {
		log.Error().Err(err).Msg("session failed")
		return err
	}

	fmt.Printf("Game over (%s) after %d ticks, ate %d\n", res.Reason, res.Tick, g.FoodEaten())
	return nil
}

func newSource(cfg config.RNGConfig, log zerolog.Logger) rng.Source {
	if cfg.Source == "seeded" {
		log.Info().Uint64("seed", cfg.Seed).Msg("using seeded rng")
		return rng.NewSeeded(cfg.Seed)
	}
	hw := rng.NewHardware()
	log.Info().Bool("rdrand", hw.UsesRDRAND()).Msg("using hardware rng")
	return hw
}
