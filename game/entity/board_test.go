package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-game/game/types"
)

func TestBoardSetThenGet(t *testing.T) {
	for _, size := range []struct{ height, width int }{{10, 10}, {3, 7}, {7, 3}, {1, 1}} {
		b := NewBoard(size.height, size.width)
		for x := 0; x < size.width; x++ {
			for y := 0; y < size.height; y++ {
				for _, c := range []types.Cell{types.CellFood, types.CellSnake, types.CellEmpty} {
					p := types.Point{X: x, Y: y}
					require.NoError(t, b.Set(p, c))
					got, err := b.Get(p)
					require.NoError(t, err)
					require.Equal(t, c, got, "at %v on %dx%d", p, size.width, size.height)
				}
			}
		}
	}
}

func TestBoardCellsAreIndependent(t *testing.T) {
	b := NewBoard(3, 4)
	require.NoError(t, b.Set(types.Point{X: 1, Y: 2}, types.CellFood))

	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			c, err := b.Get(types.Point{X: x, Y: y})
			require.NoError(t, err)
			if x == 1 && y == 2 {
				assert.Equal(t, types.CellFood, c)
			} else {
				assert.Equal(t, types.CellEmpty, c)
			}
		}
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	const height, width = 4, 6
	b := NewBoard(height, width)

	for _, p := range []types.Point{
		{X: -1, Y: 0},
		{X: width, Y: 0},
		{X: 0, Y: -1},
		{X: 0, Y: height},
	} {
		_, err := b.Get(p)
		assert.ErrorIs(t, err, ErrOutOfBounds, "get %v", p)

		err = b.Set(p, types.CellSnake)
		assert.ErrorIs(t, err, ErrOutOfBounds, "set %v", p)

		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, p, oob.Pos)
	}
}

func TestRenderPaintsFoodBodyAndHead(t *testing.T) {
	b := NewBoard(5, 5)
	require.NoError(t, b.Set(types.Point{X: 4, Y: 4}, types.CellFood)) // stale, must be cleared

	s := NewSnake(types.Point{})
	s.GrowAtHead()
	require.True(t, s.Move(types.Point{X: 0, Y: 1}))
	foods := []types.Point{{X: 2, Y: 2}, {X: 3, Y: 1}}

	require.NoError(t, b.Render(s, foods))

	want := [][]types.Cell{
		{types.CellSnake, types.CellSnake, types.CellEmpty, types.CellEmpty, types.CellEmpty},
		{types.CellEmpty, types.CellEmpty, types.CellEmpty, types.CellEmpty, types.CellEmpty},
		{types.CellEmpty, types.CellEmpty, types.CellFood, types.CellEmpty, types.CellEmpty},
		{types.CellEmpty, types.CellFood, types.CellEmpty, types.CellEmpty, types.CellEmpty},
		{types.CellEmpty, types.CellEmpty, types.CellEmpty, types.CellEmpty, types.CellEmpty},
	}
	assert.Equal(t, want, b.Rows())
}

func TestRenderSnakeOverridesFood(t *testing.T) {
	b := NewBoard(3, 3)
	s := NewSnake(types.Point{X: 1, Y: 1})

	require.NoError(t, b.Render(s, []types.Point{{X: 1, Y: 1}}))

	c, err := b.Get(types.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, types.CellSnake, c)
}

func TestRenderRejectsHeadOutsideBoard(t *testing.T) {
	b := NewBoard(3, 3)
	s := NewSnake(types.Point{X: 2, Y: 0})
	s.Move(types.Point{X: 1, Y: 0})

	err := b.Render(s, nil)

	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRowsShape(t *testing.T) {
	b := NewBoard(2, 5)
	rows := b.Rows()

	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Len(t, r, 2)
	}
	assert.Equal(t, types.Grid{Width: 5, Height: 2}, b.Grid())
}

func TestNonSquareBoardCoversEveryCell(t *testing.T) {
	b := NewBoard(3, 4)
	require.Len(t, b.cells, b.Grid().Area())

	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			require.NoError(t, b.Set(types.Point{X: x, Y: y}, types.CellFood))
		}
	}
	for _, c := range b.cells {
		assert.Equal(t, types.CellFood, c)
	}
}
