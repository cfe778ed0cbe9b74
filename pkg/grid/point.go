// pkg/grid/point.go
package grid

// Point is a cell coordinate (X column, Y row).
type Point struct {
	X, Y int
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	Right Direction = iota
	Left
	Down
	Up
)

// OrthogonalDirections lists the four moves in enumeration order. Greedy
// targeting relies on this order to break distance ties.
var OrthogonalDirections = []Direction{Right, Left, Down, Up}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	case Up:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}

// Step returns the neighbouring point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Manhattan returns |dx|+|dy| between two points.
func (p Point) Manhattan(to Point) int {
	return abs(p.X-to.X) + abs(p.Y-to.Y)
}

// Chebyshev returns max(|dx|,|dy|) between two points.
func (p Point) Chebyshev(to Point) int {
	dx, dy := abs(p.X-to.X), abs(p.Y-to.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Sign returns the per-axis sign of p, i.e. a unit step toward p from the origin.
func (p Point) Sign() Point {
	return Point{X: sign(p.X), Y: sign(p.Y)}
}
