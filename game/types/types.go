package types

import "unicode/utf8"

// Point is a board coordinate. X is the row index, Y the column index.
// The same type doubles as a movement delta.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies within [0,Width) x [0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Cell is the render tag of one board square. It is recomputed from the
// snake and food state every tick.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFood
	CellSnake
)

// String returns the console glyph for the cell.
func (c Cell) String() string {
	switch c {
	case CellFood:
		return "🟤"
	case CellSnake:
		return "🟩"
	default:
		return "🟦"
	}
}

// Rune returns the glyph as a single rune for cell-addressed screens.
func (c Cell) Rune() rune {
	r, _ := utf8.DecodeRuneInString(c.String())
	return r
}

// Game constants
const (
	FoodBatchSize = 10 // Food items spawned whenever the food set runs dry
)

var (
	StartPosition  = Point{X: 0, Y: 0}
	InitialHeading = Point{X: 1, Y: 0} // Start moving down
)
