// Package terminal is a full-screen tcell frontend.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-game/game/types"
)

const inputBuffer = 16

var styles = map[types.Cell]tcell.Style{
	types.CellEmpty: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	types.CellFood:  tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	types.CellSnake: tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

type Frontend struct {
	screen tcell.Screen
	keys   chan rune
	quit   func()
	done   chan struct{}
}

// New wraps an existing screen, letting tests pass a simulation screen.
// A nil screen opens the real terminal on Start.
func New(screen tcell.Screen) *Frontend {
	return &Frontend{
		screen: screen,
		keys:   make(chan rune, inputBuffer),
		done:   make(chan struct{}),
	}
}

func (f *Frontend) Start(quit func()) error {
	if f.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		f.screen = screen
	}
	if err := f.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	f.screen.HideCursor()
	f.screen.Clear()
	f.quit = quit

	go f.poll()
	return nil
}

func (f *Frontend) poll() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-f.done:
			return
		default:
		}
		if !f.handleEvent(ev) {
			return
		}
	}
}

// handleEvent returns false once the player has asked to quit.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	var symbol rune
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.quit()
		return false
	case tcell.KeyUp:
		symbol = 'w'
	case tcell.KeyDown:
		symbol = 's'
	case tcell.KeyLeft:
		symbol = 'a'
	case tcell.KeyRight:
		symbol = 'd'
	case tcell.KeyRune:
		symbol = key.Rune()
		if symbol == 'q' {
			f.quit()
			return false
		}
	default:
		return true
	}

	// Drop keys the game loop has not caught up with.
	select {
	case f.keys <- symbol:
	default:
	}
	return true
}

func (f *Frontend) Pending() (rune, bool) {
	select {
	case r := <-f.keys:
		return r, true
	default:
		return 0, false
	}
}

// Draw writes one row per X. Each glyph takes two columns.
func (f *Frontend) Draw(rows [][]types.Cell) error {
	f.screen.Clear()
	for x, row := range rows {
		for y, c := range row {
			f.screen.SetContent(y*2, x, c.Rune(), nil, styles[c])
		}
	}
	f.screen.Show()
	return nil
}

func (f *Frontend) Close() error {
	if f.screen == nil {
		return nil
	}
	close(f.done)
	f.screen.Fini()
	return nil
}
