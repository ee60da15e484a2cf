// Package window renders the board in a raylib window.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-game/game/types"
)

const (
	defaultCellSize = 32
	borderPadding   = 10 // Padding around game area
	targetFPS       = 60
)

var cellColors = map[types.Cell]rl.Color{
	types.CellEmpty: rl.DarkBlue,
	types.CellFood:  rl.Brown,
	types.CellSnake: rl.Green,
}

// keySymbols maps window keys to game symbols.
var keySymbols = map[int32]rune{
	rl.KeyW:     'w',
	rl.KeyUp:    'w',
	rl.KeyS:     's',
	rl.KeyDown:  's',
	rl.KeyA:     'a',
	rl.KeyLeft:  'a',
	rl.KeyD:     'd',
	rl.KeyRight: 'd',
}

type Renderer struct {
	grid   types.Grid
	layout layout
	quit   func()
	open   bool
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{grid: grid}
}

// Start opens the window. raylib must be driven from the main goroutine.
func (r *Renderer) Start(quit func()) error {
	r.quit = quit
	rows, cols := int32(r.grid.Width), int32(r.grid.Height)
	rl.InitWindow(cols*defaultCellSize+2*borderPadding, rows*defaultCellSize+2*borderPadding, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(rl.KeyEscape)
	r.open = true
	r.UpdateDimensions()
	return nil
}

func (r *Renderer) UpdateDimensions() {
	r.layout = computeLayout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), r.grid)
}

// Pending returns the oldest queued key press that maps to a symbol.
func (r *Renderer) Pending() (rune, bool) {
	if rl.WindowShouldClose() {
		r.quit()
		return 0, false
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyQ {
			r.quit()
			return 0, false
		}
		if s, ok := keySymbols[key]; ok {
			return s, true
		}
	}
	return 0, false
}

func (r *Renderer) Draw(rows [][]types.Cell) error {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	l := r.layout
	// Draw grid background
	rl.DrawRectangle(l.offsetX-1, l.offsetY-1, l.gridWidth+2, l.gridHeight+2, rl.DarkGray)

	for x, row := range rows {
		for y, c := range row {
			px, py := l.cellOrigin(x, y)
			rl.DrawRectangle(px, py, l.cellSize, l.cellSize, cellColors[c])
			rl.DrawRectangleLines(px, py, l.cellSize, l.cellSize, rl.Gray)
		}
	}

	rl.EndDrawing()
	return nil
}

func (r *Renderer) Close() error {
	if r.open {
		rl.CloseWindow()
		r.open = false
	}
	return nil
}
