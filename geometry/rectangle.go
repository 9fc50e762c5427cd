package geometry

import "math/rand"

// Rectangle is an axis-aligned cell region with inclusive corners, so a
// rectangle with X1 == X2 and Y1 == Y2 covers a single cell.
type Rectangle struct {
	X1, Y1, X2, Y2 int
}

// Width returns the rectangle's extent in cells along the x axis.
func (r Rectangle) Width() int {
	return r.X2 - r.X1 + 1
}

// Height returns the rectangle's extent in cells along the y axis.
func (r Rectangle) Height() int {
	return r.Y2 - r.Y1 + 1
}

// Area returns the number of cells the rectangle covers.
func (r Rectangle) Area() int {
	return r.Width() * r.Height()
}

// Perimeter returns the number of cells on the rectangle's border.
func (r Rectangle) Perimeter() int {
	return r.Width()*2 + r.Height()*2 - 4
}

// Contains reports whether the point lies inside the rectangle, border
// included.
func (r Rectangle) Contains(point Point) bool {
	return point.X >= r.X1 && point.X <= r.X2 && point.Y >= r.Y1 && point.Y <= r.Y2
}

// Divisible reports whether the rectangle is large enough to split into two
// halves of at least minSize cells along some axis.
func (r Rectangle) Divisible(minSize int) bool {
	return r.Width() >= minSize*2 || r.Height() >= minSize*2
}

// RandomlyDivide splits the rectangle into two adjacent sub-rectangles along
// a randomly chosen axis. When both axes have room for two minSize halves
// the axis is a coin flip; otherwise the axis with room is used. The split
// offset is uniform among positions leaving each half at least minSize wide.
func (r Rectangle) RandomlyDivide(minSize int, rng *rand.Rand) (Rectangle, Rectangle) {
	first := r
	second := r
	division := Horizontal
	xRange := r.X2 - r.X1 - minSize*2
	yRange := r.Y2 - r.Y1 - minSize*2
	if xRange >= 0 && yRange >= 0 {
		if rng.Intn(2) == 0 {
			division = Vertical
		}
	} else if xRange >= 0 {
		division = Vertical
	}
	if division == Horizontal {
		topSize := minSize
		if yRange > 0 {
			topSize = minSize + rng.Intn(yRange)
		}
		first.Y2 = first.Y1 + topSize - 1
		second.Y1 = first.Y1 + topSize
	} else {
		leftSize := minSize
		if xRange > 0 {
			leftSize = minSize + rng.Intn(xRange)
		}
		first.X2 = first.X1 + leftSize - 1
		second.X1 = first.X1 + leftSize
	}
	return first, second
}

// IntersectionWith returns the overlapping region of the two rectangles.
func (r Rectangle) IntersectionWith(other Rectangle) Rectangle {
	intersection := r
	if other.X1 > intersection.X1 {
		intersection.X1 = other.X1
	}
	if other.X2 < intersection.X2 {
		intersection.X2 = other.X2
	}
	if other.Y1 > intersection.Y1 {
		intersection.Y1 = other.Y1
	}
	if other.Y2 < intersection.Y2 {
		intersection.Y2 = other.Y2
	}
	return intersection
}

// ConnectingBorderWith returns the shared boundary segment between this
// rectangle and an axis-aligned neighbor, either touching it or separated
// from it by one cell along a single axis.
func (r Rectangle) ConnectingBorderWith(other Rectangle) Line {
	border := Line{}
	switch {
	case r.Y2 < other.Y1:
		border.X = max(r.X1, other.X1)
		border.Y = r.Y2
		border.Length = min(r.X2, other.X2) - border.X
	case r.Y1 > other.Y2:
		border.X = max(r.X1, other.X1)
		border.Y = r.Y1
		border.Length = min(r.X2, other.X2) - border.X
	case r.X2 < other.X1:
		border.Y = max(r.Y1, other.Y1)
		border.X = r.X2
		border.Length = min(r.Y2, other.Y2) - border.Y
		border.Orientation = Vertical
	default:
		border.Y = max(r.Y1, other.Y1)
		border.X = r.X1
		border.Length = min(r.Y2, other.Y2) - border.Y
		border.Orientation = Vertical
	}
	return border
}

// FindPointWithin returns a random point inside the rectangle at least
// margin cells from every edge. Both dimensions must exceed twice the
// margin; the caller is responsible for checking that.
func (r Rectangle) FindPointWithin(margin int, rng *rand.Rand) Point {
	x := r.X1 + margin + rng.Intn(r.X2-margin+1-(r.X1+margin))
	y := r.Y1 + margin + rng.Intn(r.Y2-margin+1-(r.Y1+margin))
	return NewPoint(x, y)
}

// FindExteriorPoint returns a random point on one of the rectangle's four
// edges, excluding the corners. The edge is chosen by two coin flips: one
// for the axis and one for which of the two edges on that axis.
func (r Rectangle) FindExteriorPoint(rng *rand.Rand) Point {
	point := NewPoint(r.X1, r.Y1)
	horizWall := rng.Intn(2) == 0
	lowest := rng.Intn(2) == 0
	if horizWall {
		point.X = r.X1 + 1 + rng.Intn(r.X2-r.X1-1)
		if !lowest {
			point.Y = r.Y2
		}
	} else {
		point.Y = r.Y1 + 1 + rng.Intn(r.Y2-r.Y1-1)
		if !lowest {
			point.X = r.X2
		}
	}
	return point
}

// Shrink returns the rectangle contracted inward by amount on all four
// edges.
func (r Rectangle) Shrink(amount int) Rectangle {
	return Rectangle{
		X1: r.X1 + amount,
		Y1: r.Y1 + amount,
		X2: r.X2 - amount,
		Y2: r.Y2 - amount,
	}
}
