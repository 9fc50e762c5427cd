package geometry

// Point is a single cell position on the map grid.
type Point struct {
	X, Y int
}

// NewPoint creates a point at the given cell coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}
