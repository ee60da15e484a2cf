package window

import "snake-game/game/types"

// layout places the grid centred in the window. Board rows (X) run down
// the screen, columns (Y) across.
type layout struct {
	cellSize   int32
	gridWidth  int32
	gridHeight int32
	offsetX    int32
	offsetY    int32
}

func computeLayout(screenWidth, screenHeight int32, grid types.Grid) layout {
	rows, cols := int32(grid.Width), int32(grid.Height)
	if rows <= 0 || cols <= 0 {
		return layout{}
	}

	availableWidth := screenWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*2

	cellSize := min(availableWidth/cols, availableHeight/rows)
	if cellSize < 1 {
		cellSize = 1
	}

	l := layout{
		cellSize:   cellSize,
		gridWidth:  cellSize * cols,
		gridHeight: cellSize * rows,
	}
	l.offsetX = (screenWidth - l.gridWidth) / 2
	l.offsetY = (screenHeight - l.gridHeight) / 2
	return l
}

// cellOrigin returns the top-left pixel of board cell (x, y).
func (l layout) cellOrigin(x, y int) (int32, int32) {
	return l.offsetX + int32(y)*l.cellSize, l.offsetY + int32(x)*l.cellSize
}
