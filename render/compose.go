package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/dbisdorf/battlemap-gen/config"
	"github.com/dbisdorf/battlemap-gen/generation"
	"github.com/dbisdorf/battlemap-gen/geometry"
)

var gridColor = color.RGBA{128, 128, 128, 255}

// Compose renders a generated layout into an RGBA image: ground everywhere,
// then roads and cars, then buildings with their doors, interior walls and
// crates, then outdoor bushes, and finally the cell grid overlay.
func Compose(layout *generation.Layout, tiles *Tileset) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, layout.Width*config.TileSize, layout.Height*config.TileSize))

	for x := 0; x < layout.Width; x++ {
		for y := 0; y < layout.Height; y++ {
			drawTile(img, tiles.Ground, x, y)
		}
	}

	drawRoads(img, layout, tiles)
	for _, car := range layout.Cars {
		if car.Vertical {
			drawTile(img, tiles.CarV, car.Position.X, car.Position.Y)
		} else {
			drawTile(img, tiles.CarH, car.Position.X, car.Position.Y)
		}
	}

	for _, building := range layout.Buildings {
		drawBuilding(img, building, tiles)
	}

	for _, obstacle := range layout.Obstacles {
		drawTile(img, tiles.Bush, obstacle.X, obstacle.Y)
	}

	drawGrid(img)
	return img
}

// drawRoads paints the road surface, widened to the configured road width on
// both sides of each centerline.
func drawRoads(img *image.RGBA, layout *generation.Layout, tiles *Tileset) {
	for _, road := range layout.Roads {
		x := road.X
		y := road.Y
		for t := 0; t < road.Length; t++ {
			if road.Orientation == geometry.Horizontal {
				for w := 0; w < layout.RoadWidth; w++ {
					drawTile(img, tiles.Road, x, y-layout.RoadWidth/2+w)
				}
				x++
			} else {
				for w := 0; w < layout.RoadWidth; w++ {
					drawTile(img, tiles.Road, x-layout.RoadWidth/2+w, y)
				}
				y++
			}
		}
	}
}

// drawBuilding paints the floor, the perimeter walls with their corner
// pieces, the doors, the interior walls with their door cells, and the
// crates.
func drawBuilding(img *image.RGBA, building generation.Building, tiles *Tileset) {
	footprint := building.Footprint
	doors := make(map[geometry.Point]bool, len(building.Doors))
	for _, door := range building.Doors {
		doors[door] = true
	}

	for x := footprint.X1; x <= footprint.X2; x++ {
		for y := footprint.Y1; y <= footprint.Y2; y++ {
			drawTile(img, tiles.Floor, x, y)
			switch {
			case doors[geometry.NewPoint(x, y)]:
				switch {
				case x == footprint.X1:
					drawTile(img, tiles.DoorW, x, y)
				case x == footprint.X2:
					drawTile(img, tiles.DoorE, x, y)
				case y == footprint.Y1:
					drawTile(img, tiles.DoorN, x, y)
				default:
					drawTile(img, tiles.DoorS, x, y)
				}
			case x == footprint.X1:
				switch {
				case y == footprint.Y1:
					drawTile(img, tiles.WallNW, x, y)
				case y == footprint.Y2:
					drawTile(img, tiles.WallSW, x, y)
				default:
					drawTile(img, tiles.WallW, x, y)
				}
			case x == footprint.X2:
				switch {
				case y == footprint.Y1:
					drawTile(img, tiles.WallNE, x, y)
				case y == footprint.Y2:
					drawTile(img, tiles.WallSE, x, y)
				default:
					drawTile(img, tiles.WallE, x, y)
				}
			case y == footprint.Y1:
				drawTile(img, tiles.WallN, x, y)
			case y == footprint.Y2:
				drawTile(img, tiles.WallS, x, y)
			}
		}
	}

	for _, wall := range building.Walls {
		for l := 0; l < wall.DrawLength; l++ {
			if wall.Orientation == geometry.Horizontal {
				if l == wall.Door {
					drawTile(img, tiles.DoorN, wall.X+l, wall.Y)
				} else {
					drawTile(img, tiles.WallN, wall.X+l, wall.Y)
				}
			} else {
				if l == wall.Door {
					drawTile(img, tiles.DoorW, wall.X, wall.Y+l)
				} else {
					drawTile(img, tiles.WallW, wall.X, wall.Y+l)
				}
			}
		}
	}

	for _, obstacle := range building.Obstacles {
		drawTile(img, tiles.Crate, obstacle.X, obstacle.Y)
	}
}

// drawGrid overlays cell boundary lines across the whole image.
func drawGrid(img *image.RGBA) {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if x%config.TileSize == 0 || y%config.TileSize == 0 {
				img.SetRGBA(x, y, gridColor)
			}
		}
	}
}

// drawTile composites one tile graphic at a cell position. Tiles larger than
// one cell, like the cars, extend toward positive x or y.
func drawTile(img *image.RGBA, tile image.Image, cellX, cellY int) {
	size := tile.Bounds().Size()
	origin := image.Pt(cellX*config.TileSize, cellY*config.TileSize)
	draw.Draw(img, image.Rectangle{Min: origin, Max: origin.Add(size)}, tile, tile.Bounds().Min, draw.Over)
}

// EncodePNG encodes the image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Base64PNG encodes the image as a base64 PNG string for the web mode.
func Base64PNG(img image.Image) (string, error) {
	raw, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// WritePNG saves the image to a PNG file.
func WritePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
