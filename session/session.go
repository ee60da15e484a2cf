// Package session drives a game at a fixed tick rate against a frontend.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"
)

// ErrInvalidInterval is returned by Run when the tick interval is not positive.
var ErrInvalidInterval = errors.New("tick interval must be positive")

// Frontend renders the board and captures key symbols.
type Frontend interface {
	// Start takes over the display. quit may be called from any goroutine
	// when the player asks to leave.
	Start(quit func()) error
	Pending() (rune, bool)
	Draw(rows [][]types.Cell) error
	Close() error
}

// Notifier receives gameplay cues, e.g. for sound.
type Notifier interface {
	FoodEaten()
	GameOver(reason manager.TerminationReason)
}

type Options struct {
	Interval time.Duration
	Notifier Notifier
	Logger   zerolog.Logger
}

// Run seeds the initial food batch and ticks until the game ends, the
// player quits or ctx is cancelled. The returned result is the last tick.
func Run(ctx context.Context, g *game.Game, fe Frontend, opts Options) (game.TickResult, error) {
	if opts.Interval <= 0 {
		return game.TickResult{}, fmt.Errorf("%w: %s", ErrInvalidInterval, opts.Interval)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := opts.Logger
	if err := fe.Start(cancel); err != nil {
		return game.TickResult{}, fmt.Errorf("failed to start frontend: %w", err)
	}
	// Close restores the display. Frontends reading a blocking device may
	// leave their reader parked until the next key or process exit.
	defer func() {
		if err := fe.Close(); err != nil {
			log.Warn().Err(err).Msg("frontend close")
		}
	}()

	for i := 0; i < types.FoodBatchSize; i++ {
		g.GenerateFood()
	}
	if err := g.UpdateMatrix(); err != nil {
		return game.TickResult{}, err
	}
	if err := fe.Draw(g.Board().Rows()); err != nil {
		return game.TickResult{}, fmt.Errorf("draw: %w", err)
	}

	log.Info().
		Int("width", g.Grid.Width).
		Int("height", g.Grid.Height).
		Dur("interval", opts.Interval).
		Msg("session started")

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	var last game.TickResult
	for {
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			g.Quit()
			last.Over = true
			last.Reason = g.Reason()
			log.Info().Str("reason", last.Reason.String()).Msg("session stopped")
			return last, nil
		}

		res, err := g.Tick(fe)
		if err != nil {
			if errors.Is(err, game.ErrTerminated) {
				return res, nil
			}
			return res, err
		}
		last = res

		if res.Ate && opts.Notifier != nil {
			opts.Notifier.FoodEaten()
		}
		if res.Over {
			if opts.Notifier != nil {
				opts.Notifier.GameOver(res.Reason)
			}
			return res, nil
		}

		if err := fe.Draw(g.Board().Rows()); err != nil {
			return res, fmt.Errorf("draw: %w", err)
		}
	}
}
