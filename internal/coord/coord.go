// Package coord implements the 2D coordinates and cardinal directions
// that position grid cells, droplets, and reservoir cells.
package coord

import "fmt"

// Coord is an ordered (x, y) pair. Grid coordinates are non-negative by
// convention of the loader; reservoir coordinates may be any signed
// integer. The type itself places no restriction on sign, leaving that
// convention to its callers.
type Coord struct {
	X, Y int
}

// New constructs a Coord.
func New(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Manhattan returns the Manhattan distance between two coordinates,
// used by collision and test helpers.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Direction is one of the four cardinal directions a droplet may
// travel. The zero value is Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// callEncoding maps the Call operator's 0-3 encoding (0=Up, 1=Right,
// 2=Down, 3=Left) onto Direction. The two happen to share numbering,
// but the mapping is kept explicit and isolated to the Call boundary —
// future changes to one must not silently change the other.
var callEncoding = [4]Direction{Up, Right, Down, Left}

// DirectionFromCallEncoding normalizes an arbitrary integer modulo 4
// into a Direction, for use at the Call operator's encoding boundary.
func DirectionFromCallEncoding(n int) Direction {
	m := n % 4
	if m < 0 {
		m += 4
	}
	return callEncoding[m]
}

// CallEncoding returns the 0-3 encoding of d for the Call boundary.
func (d Direction) CallEncoding() int {
	switch d {
	case Up:
		return 0
	case Right:
		return 1
	case Down:
		return 2
	case Left:
		return 3
	default:
		return 0
	}
}

// Step returns the unit (dx, dy) step for d: Down=(0,+1), Right=(+1,0),
// Up=(0,-1), Left=(-1,0).
func (d Direction) Step() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// IsVertical reports whether d is Up or Down.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Move returns the coordinate one step from c in direction d.
func (c Coord) Move(d Direction) Coord {
	dx, dy := d.Step()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String renders "(x, y)", used in error and trace output.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// String renders a direction name, used in error/trace output.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
