package types

// Direction represents a cardinal direction
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a movement vector in (row, column) space.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: -1, Y: 0}
	case RIGHT:
		return Point{X: 0, Y: 1}
	case DOWN:
		return Point{X: 1, Y: 0}
	case LEFT:
		return Point{X: 0, Y: -1}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// DirectionFromSymbol maps a key symbol to a direction. Unknown symbols
// report false.
func DirectionFromSymbol(r rune) (Direction, bool) {
	switch r {
	case 'w':
		return UP, true
	case 'd':
		return RIGHT, true
	case 's':
		return DOWN, true
	case 'a':
		return LEFT, true
	default:
		return NONE, false
	}
}
