// Package console prints the board as glyph rows on a raw-mode terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"snake-game/game/types"
)

const (
	clearScreen = "\x1b[2J\x1b[1;1H"
	inputBuffer = 16
	ctrlC       = 0x03
	escape      = 0x1b
)

type Frontend struct {
	in    io.Reader
	out   io.Writer
	fd    int
	raw   bool
	state *term.State
	keys  chan rune
	quit  func()
	done  chan struct{}
}

// New reads keys from in and draws to out. When in is a terminal it is
// switched to raw mode on Start and restored on Close.
func New(in io.Reader, out io.Writer) *Frontend {
	f := &Frontend{
		in:   in,
		out:  out,
		fd:   -1,
		keys: make(chan rune, inputBuffer),
		done: make(chan struct{}),
	}
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		f.fd = int(file.Fd())
	}
	return f
}

func (f *Frontend) Start(quit func()) error {
	f.quit = quit
	if f.fd >= 0 {
		state, err := term.MakeRaw(f.fd)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		f.state = state
		f.raw = true
	}
	go f.capture()
	return nil
}

// arrowSymbols maps the final byte of a cursor key sequence to a symbol.
var arrowSymbols = map[byte]rune{
	'A': 'w',
	'B': 's',
	'C': 'd',
	'D': 'a',
}

// capture reads one byte at a time and forwards it as a symbol. A blocked
// read cannot be interrupted, so after Close the goroutine exits on the
// next byte or with the process.
func (f *Frontend) capture() {
	r := bufio.NewReader(f.in)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		select {
		case <-f.done:
			return
		default:
		}

		sym := rune(b)
		switch b {
		case ctrlC, 'q':
			f.quit()
			return
		case escape:
			var ok bool
			if sym, ok = readEscape(r); !ok {
				f.quit()
				return
			}
			if sym == 0 {
				continue
			}
		}
		select {
		case f.keys <- sym:
		default:
		}
	}
}

// readEscape decodes the rest of an escape sequence already in the buffer.
// A bare ESC reports false. Sequences other than cursor keys yield 0.
func readEscape(r *bufio.Reader) (rune, bool) {
	if r.Buffered() == 0 {
		return 0, false
	}
	next, err := r.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return 0, false
	}
	_, _ = r.ReadByte()
	if r.Buffered() == 0 {
		return 0, true
	}
	final, err := r.ReadByte()
	if err != nil {
		return 0, true
	}
	return arrowSymbols[final], true
}

func (f *Frontend) Pending() (rune, bool) {
	select {
	case r := <-f.keys:
		return r, true
	default:
		return 0, false
	}
}

func (f *Frontend) Draw(rows [][]types.Cell) error {
	eol := "\n"
	if f.raw {
		eol = "\r\n"
	}

	var sb strings.Builder
	sb.WriteString(clearScreen)
	for _, row := range rows {
		for _, c := range row {
			sb.WriteString(c.String())
		}
		sb.WriteString(eol)
	}
	sb.WriteString(eol)

	_, err := io.WriteString(f.out, sb.String())
	return err
}

func (f *Frontend) Close() error {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
	if f.state == nil {
		return nil
	}
	err := term.Restore(f.fd, f.state)
	f.state = nil
	return err
}
