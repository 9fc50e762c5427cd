package geometry

import "math/rand"

// Line is a single-cell-wide axis-aligned segment. A horizontal line covers
// the cells [X, X+Length) on row Y; a vertical line covers [Y, Y+Length) on
// column X. Length may be zero, in which case the line covers no cells.
type Line struct {
	X, Y        int
	Orientation Orientation
	Length      int
}

// PointIntersects reports whether the given point lies on one of the cells
// the line covers.
func (l Line) PointIntersects(point Point) bool {
	if l.Orientation == Horizontal {
		return point.Y == l.Y && point.X >= l.X && point.X < l.X+l.Length
	}
	return point.X == l.X && point.Y >= l.Y && point.Y < l.Y+l.Length
}

// FindPointWithin returns a random point on the line at least margin cells
// from either end. The line must be longer than twice the margin; the caller
// is responsible for checking that.
func (l Line) FindPointWithin(margin int, rng *rand.Rand) Point {
	point := NewPoint(l.X, l.Y)
	distance := margin + rng.Intn(l.Length-margin*2)
	if l.Orientation == Horizontal {
		point.X += distance
	} else {
		point.Y += distance
	}
	return point
}

// Intersects reports whether the two segments cross or touch. Perpendicular
// segments intersect when each one's fixed coordinate falls within the
// other's span; parallel segments intersect when they share the same fixed
// coordinate and their spans overlap.
func (l Line) Intersects(other Line) bool {
	if l.Orientation == other.Orientation {
		if l.Orientation == Horizontal {
			return l.Y == other.Y && l.X < other.X+other.Length && other.X < l.X+l.Length
		}
		return l.X == other.X && l.Y < other.Y+other.Length && other.Y < l.Y+l.Length
	}
	horiz, vert := l, other
	if horiz.Orientation == Vertical {
		horiz, vert = other, l
	}
	return vert.X >= horiz.X && vert.X < horiz.X+horiz.Length &&
		horiz.Y >= vert.Y && horiz.Y < vert.Y+vert.Length
}
