package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snake-game/game/types"
)

func TestComputeLayoutSquareBoard(t *testing.T) {
	l := computeLayout(340, 340, types.Grid{Width: 10, Height: 10})

	assert.Equal(t, int32(32), l.cellSize)
	assert.Equal(t, int32(320), l.gridWidth)
	assert.Equal(t, int32(320), l.gridHeight)
	assert.Equal(t, int32(10), l.offsetX)
	assert.Equal(t, int32(10), l.offsetY)
}

func TestComputeLayoutUsesSmallerAxis(t *testing.T) {
	// 5 rows, 20 columns in a wide window
	l := computeLayout(820, 300, types.Grid{Width: 5, Height: 20})

	assert.Equal(t, int32(40), l.cellSize)
	assert.Equal(t, int32(800), l.gridWidth)
	assert.Equal(t, int32(200), l.gridHeight)
	assert.Equal(t, int32(50), l.offsetY)
}

func TestCellOriginRowsRunDown(t *testing.T) {
	l := computeLayout(340, 340, types.Grid{Width: 10, Height: 10})

	x, y := l.cellOrigin(2, 3)
	assert.Equal(t, int32(10+3*32), x)
	assert.Equal(t, int32(10+2*32), y)
}

func TestComputeLayoutDegenerate(t *testing.T) {
	assert.Equal(t, layout{}, computeLayout(100, 100, types.Grid{}))

	l := computeLayout(5, 5, types.Grid{Width: 10, Height: 10})
	assert.Equal(t, int32(1), l.cellSize)
}
