package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-game/game/types"
)

func TestDrawPrintsRowsAfterClear(t *testing.T) {
	var out bytes.Buffer
	f := New(strings.NewReader(""), &out)

	require.NoError(t, f.Draw([][]types.Cell{
		{types.CellSnake, types.CellEmpty},
		{types.CellFood, types.CellEmpty},
	}))

	want := clearScreen + "🟩🟦\n" + "🟤🟦\n" + "\n"
	assert.Equal(t, want, out.String())
}

func TestCaptureForwardsBytes(t *testing.T) {
	f := New(strings.NewReader("wd"), io.Discard)
	require.NoError(t, f.Start(func() {}))

	var got []rune
	require.Eventually(t, func() bool {
		if r, ok := f.Pending(); ok {
			got = append(got, r)
		}
		return len(got) == 2
	}, time.Second, time.Millisecond)

	assert.Equal(t, []rune{'w', 'd'}, got)
	assert.NoError(t, f.Close())
}

func TestCaptureQuitsOnQ(t *testing.T) {
	quit := make(chan struct{})
	f := New(strings.NewReader("aq"), io.Discard)
	require.NoError(t, f.Start(func() { close(quit) }))

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("quit was not called")
	}

	r, ok := f.Pending()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
}

func TestCaptureDecodesArrowKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"up", "\x1b[A", []rune{'w'}},
		{"down", "\x1b[B", []rune{'s'}},
		{"right", "\x1b[C", []rune{'d'}},
		{"left", "\x1b[D", []rune{'a'}},
		{"application mode", "\x1bOA", []rune{'w'}},
		{"mixed with letters", "a\x1b[Cs", []rune{'a', 'd', 's'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quit := make(chan struct{})
			f := New(strings.NewReader(tt.input), io.Discard)
			require.NoError(t, f.Start(func() { close(quit) }))

			var got []rune
			require.Eventually(t, func() bool {
				if r, ok := f.Pending(); ok {
					got = append(got, r)
				}
				return len(got) == len(tt.want)
			}, time.Second, time.Millisecond)
			assert.Equal(t, tt.want, got)

			select {
			case <-quit:
				t.Fatal("arrow key ended the session")
			case <-time.After(20 * time.Millisecond):
			}
		})
	}
}

func TestCaptureIgnoresOtherEscapeSequences(t *testing.T) {
	quit := make(chan struct{})
	f := New(strings.NewReader("\x1b[Hw"), io.Discard)
	require.NoError(t, f.Start(func() { close(quit) }))

	var r rune
	require.Eventually(t, func() bool {
		var ok bool
		r, ok = f.Pending()
		return ok
	}, time.Second, time.Millisecond)
	assert.Equal(t, 'w', r)

	select {
	case <-quit:
		t.Fatal("unknown sequence ended the session")
	default:
	}
}

func TestCaptureQuitsOnBareEscape(t *testing.T) {
	quit := make(chan struct{})
	f := New(strings.NewReader("\x1b"), io.Discard)
	require.NoError(t, f.Start(func() { close(quit) }))

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("quit was not called")
	}
}

func TestCaptureStopsAfterClose(t *testing.T) {
	pr, pw := io.Pipe()
	quit := make(chan struct{})
	f := New(pr, io.Discard)
	require.NoError(t, f.Start(func() { close(quit) }))
	require.NoError(t, f.Close())

	_, err := pw.Write([]byte("w"))
	require.NoError(t, err)
	_ = pw.Close()

	_, ok := f.Pending()
	assert.False(t, ok)
	select {
	case <-quit:
		t.Fatal("quit called after Close")
	default:
	}
}
