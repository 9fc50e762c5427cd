package generation

import (
	"fmt"
	"math/rand"

	"github.com/dbisdorf/battlemap-gen/geometry"
)

// Obstructions is a per-cell occupancy grid. It keeps a running count of
// unoccupied cells, adjusted on every write, so the composer can size the
// outdoor obstacle pass without rescanning the grid.
type Obstructions struct {
	width, height int
	tiles         []bool
	unobstructed  int
}

// NewObstructions creates a grid of the given dimensions with every cell
// clear.
func NewObstructions(width, height int) *Obstructions {
	return &Obstructions{
		width:        width,
		height:       height,
		tiles:        make([]bool, width*height),
		unobstructed: width * height,
	}
}

// Obstruct sets one cell's occupancy. Writes outside the grid are ignored;
// road margins near the map edge land there. The unobstructed count only
// moves when the cell actually changes state.
func (o *Obstructions) Obstruct(x, y int, obstructed bool) {
	if x < 0 || x >= o.width || y < 0 || y >= o.height {
		return
	}
	t := y*o.width + x
	if obstructed && !o.tiles[t] {
		o.unobstructed--
	} else if !obstructed && o.tiles[t] {
		o.unobstructed++
	}
	o.tiles[t] = obstructed
}

// IsObstructed reports whether a cell is occupied. Cells outside the grid
// count as occupied.
func (o *Obstructions) IsObstructed(x, y int) bool {
	if x < 0 || x >= o.width || y < 0 || y >= o.height {
		return true
	}
	return o.tiles[y*o.width+x]
}

// ObstructedRectangle reports whether any cell within the rectangle is
// occupied.
func (o *Obstructions) ObstructedRectangle(r geometry.Rectangle) bool {
	for x := r.X1; x <= r.X2; x++ {
		for y := r.Y1; y <= r.Y2; y++ {
			if o.IsObstructed(x, y) {
				return true
			}
		}
	}
	return false
}

// UnobstructedCount returns the number of currently clear cells.
func (o *Obstructions) UnobstructedCount() int {
	return o.unobstructed
}

// FindClearTile samples random cells until it finds an unoccupied one.
func (o *Obstructions) FindClearTile(rng *rand.Rand) (geometry.Point, error) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		x := rng.Intn(o.width)
		y := rng.Intn(o.height)
		if !o.IsObstructed(x, y) {
			return geometry.NewPoint(x, y), nil
		}
	}
	return geometry.Point{}, fmt.Errorf("no clear tile found in %d attempts: %w", placementAttempts, ErrPlacementFailed)
}

// FindClearRectangle locates a free rectangle of adaptive size. It samples a
// seed point away from the grid edge, requires a clear minSize neighborhood
// around it, then grows each half-extent independently until it would exceed
// maxSize/2, approach the grid edge, or run into an occupied cell. Growth
// probes are padded by one cell on every side so the returned rectangle
// keeps a clear buffer from anything already placed.
func (o *Obstructions) FindClearRectangle(minSize, maxSize int, rng *rand.Rand) (geometry.Rectangle, error) {
	if o.width <= (minSize+1)*2 || o.height <= (minSize+1)*2 {
		return geometry.Rectangle{}, fmt.Errorf("%dx%d grid cannot seed a rectangle of minimum size %d: %w",
			o.width, o.height, minSize, ErrInfeasible)
	}
	outerBounds := geometry.Rectangle{X1: 0, Y1: 0, X2: o.width - 1, Y2: o.height - 1}
	for attempt := 0; attempt < placementAttempts; attempt++ {
		sizeX := minSize
		sizeY := minSize
		point := outerBounds.FindPointWithin(minSize+1, rng)
		if o.ObstructedRectangle(paddedProbe(point, sizeX, sizeY)) {
			continue
		}
		growingX := true
		growingY := true
		for growingX || growingY {
			if growingX {
				if point.X > sizeX+2 && point.X+sizeX < o.width-3 && sizeX < maxSize/2 {
					sizeX++
					if o.ObstructedRectangle(paddedProbe(point, sizeX, sizeY)) {
						growingX = false
					}
				} else {
					growingX = false
				}
			}
			if growingY {
				if point.Y > sizeY+2 && point.Y+sizeY < o.height-3 && sizeY < maxSize/2 {
					sizeY++
					if o.ObstructedRectangle(paddedProbe(point, sizeX, sizeY)) {
						growingY = false
					}
				} else {
					growingY = false
				}
			}
		}
		return geometry.Rectangle{
			X1: point.X - sizeX,
			Y1: point.Y - sizeY,
			X2: point.X + sizeX,
			Y2: point.Y + sizeY,
		}, nil
	}
	return geometry.Rectangle{}, fmt.Errorf("no clear rectangle found in %d attempts: %w", placementAttempts, ErrPlacementFailed)
}

// paddedProbe is the rectangle of half-extents (sizeX, sizeY) around a point,
// padded by one cell on each side.
func paddedProbe(point geometry.Point, sizeX, sizeY int) geometry.Rectangle {
	return geometry.Rectangle{
		X1: point.X - sizeX - 1,
		Y1: point.Y - sizeY - 1,
		X2: point.X + sizeX + 1,
		Y2: point.Y + sizeY + 1,
	}
}
