package config

import "fmt"

// Default map parameters.
const (
	DefaultWidth         = 48
	DefaultHeight        = 48
	DefaultRoadCount     = 6
	DefaultRoadWidth     = 2
	DefaultBuildingCount = 6
	DefaultBuildingSize  = 16
)

// Minimum half-extent of a building footprint search.
const BuildingMinSize = 3

// Params holds the knobs for one generation run. The generator treats them
// as immutable once Generate starts.
type Params struct {
	Width         int // map width in cells
	Height        int // map height in cells
	RoadCount     int
	RoadWidth     int // road width in cells; margins derive from it
	BuildingCount int
	BuildingSize  int // maximum footprint extent for the building search
}

// Default returns the standard 48x48 map parameters.
func Default() Params {
	return Params{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		RoadCount:     DefaultRoadCount,
		RoadWidth:     DefaultRoadWidth,
		BuildingCount: DefaultBuildingCount,
		BuildingSize:  DefaultBuildingSize,
	}
}

// RoadMargin is the clearance kept on both sides of a road centerline: half
// the road's width plus one.
func (p Params) RoadMargin() int {
	return p.RoadWidth/2 + 1
}

// Validate checks that every margin and size relationship can be satisfied
// by the map dimensions, so the geometry core never has to cope with an
// impossible request mid-run.
func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("map dimensions %dx%d must be positive", p.Width, p.Height)
	}
	if p.RoadCount < 0 || p.BuildingCount < 0 {
		return fmt.Errorf("road count %d and building count %d must not be negative", p.RoadCount, p.BuildingCount)
	}
	if p.RoadWidth < 1 {
		return fmt.Errorf("road width %d must be positive", p.RoadWidth)
	}
	if p.BuildingSize < 1 {
		return fmt.Errorf("building size %d must be positive", p.BuildingSize)
	}
	if p.RoadCount > 0 {
		margin := p.RoadMargin()
		if p.Width <= margin*2 && p.Height <= margin*2 {
			return fmt.Errorf("%dx%d map cannot fit a road of width %d with margin %d", p.Width, p.Height, p.RoadWidth, margin)
		}
	}
	if p.BuildingCount > 0 {
		seedMargin := (BuildingMinSize + 1) * 2
		if p.Width <= seedMargin || p.Height <= seedMargin {
			return fmt.Errorf("%dx%d map cannot fit a building footprint of minimum size %d", p.Width, p.Height, BuildingMinSize)
		}
	}
	return nil
}
