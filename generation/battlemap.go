package generation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dbisdorf/battlemap-gen/config"
	"github.com/dbisdorf/battlemap-gen/geometry"
)

// Layout is the generated battle map: everything the renderer needs and
// nothing it doesn't. The obstruction grid that guided placement is internal
// to generation and is discarded with the run.
type Layout struct {
	Width, Height int
	RoadWidth     int
	Roads         []geometry.Line
	Cars          []Car
	Buildings     []Building
	Obstacles     []geometry.Point // outdoor obstacles
}

// Car is a cosmetic vehicle marker on a road. It has no occupancy effect.
type Car struct {
	Position geometry.Point
	Vertical bool
}

// Building is one placed structure: its wall perimeter, the doors on it,
// its interior walls, and the obstacles scattered inside.
type Building struct {
	Footprint geometry.Rectangle
	Doors     []geometry.Point
	Walls     []Wall
	Obstacles []geometry.Point
}

// Wall is an interior wall line with its door position. DrawLength is the
// number of cells actually rendered; a wall whose far end stops inside the
// footprint rather than against the perimeter is drawn one cell short. Door
// indexes a cell within [0, DrawLength).
type Wall struct {
	geometry.Line
	DrawLength int
	Door       int
}

// Generator assembles battle-map layouts. One generator owns one random
// stream, so output is fully determined by the seed and the parameters.
type Generator struct {
	params     config.Params
	rng        *rand.Rand
	logMessage func(string)
}

// NewGenerator creates a generator for the given parameters. The logMessage
// function receives progress warnings (crowded grids, partial placements)
// and may be nil.
func NewGenerator(params config.Params, logMessage func(string)) *Generator {
	return &Generator{
		params:     params,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logMessage: logMessage,
	}
}

// SetSeed allows setting a specific seed for reproducible maps.
func (g *Generator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

func (g *Generator) log(message string) {
	if g.logMessage != nil {
		g.logMessage(message)
	}
}

// Generate runs one full generation pass: the road network over the whole
// map, then each building with its doors, interior walls and obstacles, then
// outdoor obstacles on the remaining free cells. Placement failures on a
// crowded map degrade to a sparser layout; only infeasible configuration is
// a hard error.
func (g *Generator) Generate() (*Layout, error) {
	if err := g.params.Validate(); err != nil {
		return nil, err
	}
	layout := &Layout{
		Width:     g.params.Width,
		Height:    g.params.Height,
		RoadWidth: g.params.RoadWidth,
	}
	obstructions := NewObstructions(g.params.Width, g.params.Height)

	if err := g.generateRoads(layout, obstructions); err != nil {
		return nil, err
	}
	g.generateBuildings(layout, obstructions)
	g.scatterObstacles(layout, obstructions)
	return layout, nil
}

// generateRoads lays the road network over the full map rectangle and marks
// every road cell, plus a margin-wide band on both sides, as occupied.
func (g *Generator) generateRoads(layout *Layout, obstructions *Obstructions) error {
	fullRect := geometry.Rectangle{X1: 0, Y1: 0, X2: g.params.Width - 1, Y2: g.params.Height - 1}
	margin := g.params.RoadMargin()
	roads, err := DivideWithLines(fullRect, g.params.RoadCount, margin, g.rng)
	if err != nil {
		if !errors.Is(err, ErrPlacementFailed) {
			return err
		}
		g.log(fmt.Sprintf("road network incomplete: placed %d of %d roads", len(roads), g.params.RoadCount))
	}
	layout.Roads = roads

	for _, road := range roads {
		x := road.X
		y := road.Y
		for t := 0; t < road.Length; t++ {
			obstructions.Obstruct(x, y, true)
			if road.Orientation == geometry.Horizontal {
				for w := 0; w < margin; w++ {
					obstructions.Obstruct(x, y-w, true)
					obstructions.Obstruct(x, y+w, true)
				}
				x++
			} else {
				for w := 0; w < margin; w++ {
					obstructions.Obstruct(x-w, y, true)
					obstructions.Obstruct(x+w, y, true)
				}
				y++
			}
		}
	}

	// A car on any road long enough to keep it clear of intersections.
	for _, road := range roads {
		if road.Length > 4 {
			layout.Cars = append(layout.Cars, Car{
				Position: road.FindPointWithin(2, g.rng),
				Vertical: g.rng.Intn(2) == 0,
			})
		}
	}
	return nil
}

// generateBuildings places each building on a clear patch of the map. When
// the grid is too crowded to seat another footprint, the remaining buildings
// are dropped rather than retried forever.
func (g *Generator) generateBuildings(layout *Layout, obstructions *Obstructions) {
	for b := 0; b < g.params.BuildingCount; b++ {
		building, err := g.placeBuilding(obstructions)
		if err != nil {
			g.log(fmt.Sprintf("placed %d of %d buildings: %v", b, g.params.BuildingCount, err))
			return
		}
		layout.Buildings = append(layout.Buildings, building)
	}
}

func (g *Generator) placeBuilding(obstructions *Obstructions) (Building, error) {
	footprint, err := obstructions.FindClearRectangle(config.BuildingMinSize, g.params.BuildingSize, g.rng)
	if err != nil {
		return Building{}, err
	}
	// The found rectangle includes the buffer ring; the inset rectangle is
	// the wall perimeter.
	footprint = footprint.Shrink(1)
	building := Building{Footprint: footprint}

	doorCount := footprint.Perimeter()/20 + 1
	for d := 0; d < doorCount; d++ {
		building.Doors = append(building.Doors, footprint.FindExteriorPoint(g.rng))
	}

	for x := footprint.X1; x <= footprint.X2; x++ {
		for y := footprint.Y1; y <= footprint.Y2; y++ {
			obstructions.Obstruct(x, y, true)
		}
	}

	wallCount := footprint.Area() / 30
	walls, err := DivideWithLines(footprint, wallCount, 3, g.rng)
	if err != nil {
		// Keep whatever interior subdivision was achieved.
		g.log(fmt.Sprintf("interior walls incomplete for building at %d,%d: %v", footprint.X1, footprint.Y1, err))
	}
	for _, wall := range walls {
		building.Walls = append(building.Walls, g.tagDoor(footprint, wall))
	}

	obstacleCount := footprint.Area() / 50
	for o := 0; o < obstacleCount; o++ {
		point, ok := g.findFloorPoint(footprint, walls)
		if !ok {
			continue
		}
		building.Obstacles = append(building.Obstacles, point)
	}
	return building, nil
}

// tagDoor derives a wall's rendered length and picks the cell along it that
// carries the door. A wall that starts and ends inside the footprint's
// perimeter is drawn one cell short, so two rooms never share a doubled
// wall cell.
func (g *Generator) tagDoor(footprint geometry.Rectangle, wall geometry.Line) Wall {
	drawLength := wall.Length
	if wall.Orientation == geometry.Horizontal {
		if wall.X > footprint.X1 && wall.X+wall.Length <= footprint.X2 {
			drawLength--
		}
	} else {
		if wall.Y > footprint.Y1 && wall.Y+wall.Length <= footprint.Y2 {
			drawLength--
		}
	}
	door := 1
	if drawLength > 3 {
		door = 1 + g.rng.Intn(drawLength-3)
	}
	return Wall{Line: wall, DrawLength: drawLength, Door: door}
}

// findFloorPoint looks for an interior point that does not land on a wall.
func (g *Generator) findFloorPoint(footprint geometry.Rectangle, walls []geometry.Line) (geometry.Point, bool) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		point := footprint.FindPointWithin(1, g.rng)
		onWall := false
		for _, wall := range walls {
			if wall.PointIntersects(point) {
				onWall = true
				break
			}
		}
		if !onWall {
			return point, true
		}
	}
	return geometry.Point{}, false
}

// scatterObstacles drops obstacles on free cells, one per fifty of them,
// marking each placed obstacle occupied so they never stack.
func (g *Generator) scatterObstacles(layout *Layout, obstructions *Obstructions) {
	count := obstructions.UnobstructedCount() / 50
	for o := 0; o < count; o++ {
		point, err := obstructions.FindClearTile(g.rng)
		if err != nil {
			g.log(fmt.Sprintf("placed %d of %d outdoor obstacles: %v", o, count, err))
			return
		}
		obstructions.Obstruct(point.X, point.Y, true)
		layout.Obstacles = append(layout.Obstacles, point)
	}
}
