package generation

import (
	"fmt"
	"math/rand"

	"github.com/dbisdorf/battlemap-gen/geometry"
)

// DivideWithLines generates a randomized network of axis-aligned segments
// inside rect. The first line spans the full rectangle; every later line
// branches perpendicularly off an existing one, stays inside the rectangle,
// and keeps at least lineMargin cells of clearance between its branch point
// and both the origin line's ends and any perpendicular crossing. The same
// routine lays out roads over the whole map and interior walls inside a
// building footprint.
//
// On success the result holds exactly lineCount lines. When no existing line
// can host another branch within the retry budget, the lines placed so far
// are returned along with ErrPlacementFailed.
func DivideWithLines(rect geometry.Rectangle, lineCount, lineMargin int, rng *rand.Rand) ([]geometry.Line, error) {
	lines := make([]geometry.Line, 0, lineCount)
	if lineCount == 0 {
		return lines, nil
	}
	if rect.Width() <= lineMargin*2 && rect.Height() <= lineMargin*2 {
		return nil, fmt.Errorf("%dx%d rectangle cannot host a line with margin %d: %w",
			rect.Width(), rect.Height(), lineMargin, ErrInfeasible)
	}
	for len(lines) < lineCount {
		if len(lines) == 0 {
			lines = append(lines, firstLine(rect, lineMargin, rng))
			continue
		}
		line, err := deriveLine(rect, lines, lineMargin, rng)
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// firstLine places the network's unconstrained first line. It spans the full
// rectangle along its own axis; its perpendicular position is uniform within
// the margin-inset interior, or pinned to the low edge when the rectangle is
// exactly wide enough for the margins alone.
func firstLine(rect geometry.Rectangle, margin int, rng *rand.Rand) geometry.Line {
	vertical := rng.Intn(2) == 0
	if rect.Width() <= margin*2 {
		vertical = false
	}
	if rect.Height() <= margin*2 {
		vertical = true
	}
	if vertical {
		x := rect.X1
		if rect.X1+margin != rect.X2-margin {
			x = rect.X1 + margin + rng.Intn(rect.X2-margin-(rect.X1+margin))
		}
		return geometry.Line{X: x, Y: rect.Y1, Orientation: geometry.Vertical, Length: rect.Height()}
	}
	y := rect.Y1
	if rect.Y1+margin != rect.Y2-margin {
		y = rect.Y1 + margin + rng.Intn(rect.Y2-margin-(rect.Y1+margin))
	}
	return geometry.Line{X: rect.X1, Y: y, Orientation: geometry.Horizontal, Length: rect.Width()}
}

// deriveLine branches a new line off a randomly chosen existing one. An
// attempt is abandoned when the chosen origin is too short to host a branch
// point with the margin, or when another line passes exactly through the
// chosen branch point.
func deriveLine(rect geometry.Rectangle, lines []geometry.Line, margin int, rng *rand.Rand) (geometry.Line, error) {
	for attempt := 0; attempt < deriveAttempts; attempt++ {
		originNum := rng.Intn(len(lines))
		origin := lines[originNum]
		if origin.Length <= margin*2 {
			continue
		}
		orientation := origin.Orientation.Opposite()
		intersection := origin.FindPointWithin(margin, rng)

		// The new line may grow to the rectangle's edges along its axis
		// unless a perpendicular line crossing its row or column stands in
		// the way; the nearest such line on each side tightens the bound.
		lowBound := rect.X1
		highBound := rect.X2
		if orientation == geometry.Vertical {
			lowBound = rect.Y1
			highBound = rect.Y2
		}
		degenerate := false
		for otherNum, other := range lines {
			if otherNum == originNum {
				continue
			}
			if other.PointIntersects(intersection) {
				degenerate = true
				break
			}
			if other.Orientation == orientation {
				continue
			}
			if orientation == geometry.Horizontal {
				if intersection.Y >= other.Y && intersection.Y < other.Y+other.Length {
					if other.X < intersection.X && other.X > lowBound {
						lowBound = other.X
					} else if other.X > intersection.X && other.X < highBound {
						highBound = other.X
					}
				}
			} else {
				if intersection.X >= other.X && intersection.X < other.X+other.Length {
					if other.Y < intersection.Y && other.Y > lowBound {
						lowBound = other.Y
					} else if other.Y > intersection.Y && other.Y < highBound {
						highBound = other.Y
					}
				}
			}
		}
		if degenerate {
			continue
		}

		// Extend toward whichever bound leaves room; when both sides have at
		// least the margin, pick one at random.
		along := intersection.X
		if orientation == geometry.Vertical {
			along = intersection.Y
		}
		var before bool
		switch {
		case along-lowBound < margin:
			before = false
		case highBound-along < margin:
			before = true
		default:
			before = rng.Intn(2) == 0
		}
		if orientation == geometry.Horizontal {
			if before {
				return geometry.Line{X: lowBound, Y: intersection.Y, Orientation: orientation, Length: along - lowBound}, nil
			}
			return geometry.Line{X: intersection.X, Y: intersection.Y, Orientation: orientation, Length: highBound - along + 1}, nil
		}
		if before {
			return geometry.Line{X: intersection.X, Y: lowBound, Orientation: orientation, Length: along - lowBound}, nil
		}
		return geometry.Line{X: intersection.X, Y: intersection.Y, Orientation: orientation, Length: highBound - along + 1}, nil
	}
	return geometry.Line{}, fmt.Errorf("no branch found for line %d in %d attempts: %w",
		len(lines), deriveAttempts, ErrPlacementFailed)
}
