// Package geometry provides the grid-cell value types the map generator is
// built on: points, axis-aligned lines, and rectangles. All types are plain
// values with structural equality; operations that modify a shape return a
// new value.
package geometry

// Orientation identifies the axis a line runs along.
type Orientation int

const (
	// Horizontal lines vary in x at a fixed y.
	Horizontal Orientation = iota
	// Vertical lines vary in y at a fixed x.
	Vertical
)

// Opposite returns the perpendicular orientation.
func (o Orientation) Opposite() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
