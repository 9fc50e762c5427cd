package generation

import (
	"testing"

	"github.com/dbisdorf/battlemap-gen/config"
	"github.com/dbisdorf/battlemap-gen/geometry"
	"github.com/stretchr/testify/require"
)

func generateSeeded(t *testing.T, params config.Params, seed int64) *Layout {
	t.Helper()
	generator := NewGenerator(params, nil)
	generator.SetSeed(seed)
	layout, err := generator.Generate()
	require.NoError(t, err)
	return layout
}

func TestGenerateDeterministic(t *testing.T) {
	first := generateSeeded(t, config.Default(), 42)
	second := generateSeeded(t, config.Default(), 42)
	require.Equal(t, first, second, "the same seed and parameters must produce the same layout")

	third := generateSeeded(t, config.Default(), 43)
	require.NotEqual(t, first, third)
}

func TestGenerateInfeasibleParams(t *testing.T) {
	params := config.Default()
	params.Width = 4
	params.Height = 4
	generator := NewGenerator(params, nil)
	_, err := generator.Generate()
	require.Error(t, err)
}

func TestGenerateLayout(t *testing.T) {
	params := config.Default()
	mapBounds := geometry.Rectangle{X1: 0, Y1: 0, X2: params.Width - 1, Y2: params.Height - 1}

	for seed := int64(0); seed < 10; seed++ {
		layout := generateSeeded(t, params, seed)

		require.Equal(t, params.Width, layout.Width)
		require.Equal(t, params.RoadWidth, layout.RoadWidth)
		require.Len(t, layout.Roads, params.RoadCount)
		for _, road := range layout.Roads {
			require.True(t, lineInside(road, mapBounds), "seed %d: road %+v escapes the map", seed, road)
		}

		for _, car := range layout.Cars {
			onRoad := false
			for _, road := range layout.Roads {
				if road.PointIntersects(car.Position) {
					onRoad = true
				}
			}
			require.True(t, onRoad, "seed %d: car at %+v is off-road", seed, car.Position)
		}

		require.NotEmpty(t, layout.Buildings)
		for _, building := range layout.Buildings {
			footprint := building.Footprint
			require.GreaterOrEqual(t, footprint.X1, 1)
			require.GreaterOrEqual(t, footprint.Y1, 1)
			require.Less(t, footprint.X2, params.Width-1)
			require.Less(t, footprint.Y2, params.Height-1)
			require.GreaterOrEqual(t, footprint.Width(), 5)
			require.GreaterOrEqual(t, footprint.Height(), 5)

			require.Len(t, building.Doors, footprint.Perimeter()/20+1)
			for _, door := range building.Doors {
				onEdge := door.X == footprint.X1 || door.X == footprint.X2 ||
					door.Y == footprint.Y1 || door.Y == footprint.Y2
				require.True(t, footprint.Contains(door))
				require.True(t, onEdge, "seed %d: door %+v not on the perimeter", seed, door)
			}

			require.LessOrEqual(t, len(building.Walls), footprint.Area()/30)
			for _, wall := range building.Walls {
				require.True(t, lineInside(wall.Line, footprint), "seed %d: wall %+v escapes footprint %+v", seed, wall, footprint)
				require.LessOrEqual(t, wall.DrawLength, wall.Length)
				require.GreaterOrEqual(t, wall.DrawLength, wall.Length-1)
				if wall.DrawLength > 1 {
					require.GreaterOrEqual(t, wall.Door, 1)
					require.Less(t, wall.Door, wall.DrawLength)
				}
			}

			require.LessOrEqual(t, len(building.Obstacles), footprint.Area()/50)
			interior := footprint.Shrink(1)
			for _, obstacle := range building.Obstacles {
				require.True(t, interior.Contains(obstacle))
				for _, wall := range building.Walls {
					require.False(t, wall.PointIntersects(obstacle), "seed %d: obstacle %+v sits on a wall", seed, obstacle)
				}
			}
		}

		// Buildings never overlap each other or a road.
		for i, building := range layout.Buildings {
			for j := i + 1; j < len(layout.Buildings); j++ {
				overlap := building.Footprint.IntersectionWith(layout.Buildings[j].Footprint)
				require.True(t, overlap.X1 > overlap.X2 || overlap.Y1 > overlap.Y2,
					"seed %d: buildings %d and %d overlap", seed, i, j)
			}
			for _, road := range layout.Roads {
				for t2 := 0; t2 < road.Length; t2++ {
					cell := geometry.NewPoint(road.X, road.Y+t2)
					if road.Orientation == geometry.Horizontal {
						cell = geometry.NewPoint(road.X+t2, road.Y)
					}
					require.False(t, building.Footprint.Contains(cell),
						"seed %d: building %d overlaps a road", seed, i)
				}
			}
		}

		for _, obstacle := range layout.Obstacles {
			require.True(t, mapBounds.Contains(obstacle))
			for _, building := range layout.Buildings {
				require.False(t, building.Footprint.Contains(obstacle))
			}
		}
	}
}

func TestSmallFootprintsStayEmpty(t *testing.T) {
	// A footprint below 30 cells gets no interior walls, and below 50 cells
	// no indoor obstacles.
	for seed := int64(0); seed < 10; seed++ {
		layout := generateSeeded(t, config.Default(), seed)
		for _, building := range layout.Buildings {
			if building.Footprint.Area() < 30 {
				require.Empty(t, building.Walls)
			}
			if building.Footprint.Area() < 50 {
				require.Empty(t, building.Obstacles)
			}
		}
	}
}

func TestGeneratorLogsPlacementFailures(t *testing.T) {
	// A map crowded with roads leaves no room for six buildings; the
	// generator must degrade and report rather than loop forever.
	params := config.Default()
	params.Width = 12
	params.Height = 12
	params.RoadCount = 4
	params.BuildingCount = 6

	var messages []string
	generator := NewGenerator(params, func(m string) { messages = append(messages, m) })
	generator.SetSeed(7)
	layout, err := generator.Generate()
	require.NoError(t, err)
	require.NotNil(t, layout)
	if len(layout.Buildings) < params.BuildingCount {
		require.NotEmpty(t, messages)
	}
}
