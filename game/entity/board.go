package entity

import (
	"errors"
	"fmt"

	"snake-game/game/types"
)

var ErrOutOfBounds = errors.New("position out of bounds")

// OutOfBoundsError carries the rejected position. It matches ErrOutOfBounds
// under errors.Is.
type OutOfBoundsError struct {
	Pos  types.Point
	Grid types.Grid
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside %dx%d", ErrOutOfBounds, e.Pos.X, e.Pos.Y, e.Grid.Width, e.Grid.Height)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Board is the fixed-size cell matrix the frontends draw from. Cells are
// stored flat, row-major with X as the row.
type Board struct {
	grid  types.Grid
	cells []types.Cell
}

func NewBoard(height, width int) *Board {
	grid := types.Grid{Width: width, Height: height}
	return &Board{
		grid:  grid,
		cells: make([]types.Cell, grid.Area()),
	}
}

func (b *Board) Grid() types.Grid {
	return b.grid
}

func (b *Board) index(p types.Point) (int, error) {
	if !b.grid.Contains(p) {
		return 0, &OutOfBoundsError{Pos: p, Grid: b.grid}
	}
	return p.X*b.grid.Height + p.Y, nil
}

func (b *Board) Get(p types.Point) (types.Cell, error) {
	i, err := b.index(p)
	if err != nil {
		return types.CellEmpty, err
	}
	return b.cells[i], nil
}

func (b *Board) Set(p types.Point, c types.Cell) error {
	i, err := b.index(p)
	if err != nil {
		return err
	}
	b.cells[i] = c
	return nil
}

// Render repaints every cell from the authoritative state: all empty,
// then food, then body, then the head last so it always shows.
func (b *Board) Render(snake *Snake, foods []types.Point) error {
	for i := range b.cells {
		b.cells[i] = types.CellEmpty
	}

	for _, p := range foods {
		if err := b.Set(p, types.CellFood); err != nil {
			return fmt.Errorf("paint food: %w", err)
		}
	}
	for _, p := range snake.body {
		if err := b.Set(p, types.CellSnake); err != nil {
			return fmt.Errorf("paint body: %w", err)
		}
	}
	if err := b.Set(snake.head, types.CellSnake); err != nil {
		return fmt.Errorf("paint head: %w", err)
	}
	return nil
}

// Rows returns a row-major copy of the cells, one slice per X.
func (b *Board) Rows() [][]types.Cell {
	rows := make([][]types.Cell, b.grid.Width)
	for x := range rows {
		row := make([]types.Cell, b.grid.Height)
		copy(row, b.cells[x*b.grid.Height:(x+1)*b.grid.Height])
		rows[x] = row
	}
	return rows
}
