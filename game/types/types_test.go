package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAdd(t *testing.T) {
	assert.Equal(t, Point{X: 3, Y: -1}, Point{X: 1, Y: 1}.Add(Point{X: 2, Y: -2}))
	assert.True(t, Point{X: 1, Y: 0}.Add(Point{X: -1, Y: 0}).IsZero())
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 10, Height: 5}

	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 9, Y: 4}))
	assert.False(t, g.Contains(Point{X: -1, Y: 0}))
	assert.False(t, g.Contains(Point{X: 10, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -1}))
	assert.False(t, g.Contains(Point{X: 0, Y: 5}))
	assert.Equal(t, 50, g.Area())
}

func TestCellGlyphsAreDistinct(t *testing.T) {
	seen := map[string]Cell{}
	for _, c := range []Cell{CellEmpty, CellFood, CellSnake} {
		_, dup := seen[c.String()]
		assert.False(t, dup, "glyph for %d reused", c)
		seen[c.String()] = c
		assert.Equal(t, []rune(c.String())[0], c.Rune())
	}
}

func TestDirectionFromSymbol(t *testing.T) {
	tests := []struct {
		sym  rune
		want Point
		ok   bool
	}{
		{'w', Point{X: -1, Y: 0}, true},
		{'s', Point{X: 1, Y: 0}, true},
		{'a', Point{X: 0, Y: -1}, true},
		{'d', Point{X: 0, Y: 1}, true},
		{'x', Point{}, false},
		{'W', Point{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.sym), func(t *testing.T) {
			d, ok := DirectionFromSymbol(tt.sym)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, d.ToPoint())
		})
	}
}

func TestDirectionOppositeSumsToZero(t *testing.T) {
	for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
		assert.True(t, d.ToPoint().Add(d.Opposite().ToPoint()).IsZero(), d.String())
	}
}
