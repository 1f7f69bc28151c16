package core

// Direction is a unit step on the grid
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions is the fixed expansion and evaluation order: up, down, left, right
var Directions = [4]Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverseOf reports whether d points exactly opposite to other
func (d Direction) IsReverseOf(other Direction) bool {
	return d.X == -other.X && d.Y == -other.Y
}

// IsUnit reports whether d is one of the four cardinal steps
func (d Direction) IsUnit() bool {
	return Abs(d.X)+Abs(d.Y) == 1
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
