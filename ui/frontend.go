// Package ui selects the frontend a session draws to.
package ui

import (
	"errors"
	"fmt"
	"os"

	"snake-game/game/types"
	"snake-game/session"
	"snake-game/ui/console"
	"snake-game/ui/terminal"
	"snake-game/ui/window"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

const (
	Console  = "console"
	Terminal = "terminal"
	Window   = "window"
)

// New returns the named frontend for a board of the given size.
func New(name string, grid types.Grid) (session.Frontend, error) {
	switch name {
	case Console, "":
		return console.New(os.Stdin, os.Stdout), nil
	case Terminal:
		return terminal.New(nil), nil
	case Window:
		return window.NewRenderer(grid), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrontend, name)
	}
}
