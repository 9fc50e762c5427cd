// Package render turns a generated layout into pixels: it loads the tile
// sheet, composites map tiles into an RGBA image, and encodes the result for
// file or web output.
package render

import (
	"image"
	"image/draw"
	"os"

	_ "image/png"

	"github.com/dbisdorf/battlemap-gen/config"
)

// Tileset holds the named tile graphics cropped out of the sheet. Most tiles
// are one cell square; the two car sprites span two cells along their
// direction of travel.
type Tileset struct {
	Ground image.Image
	Road   image.Image
	Floor  image.Image

	CarH image.Image
	CarV image.Image

	WallNW image.Image
	WallNE image.Image
	WallSW image.Image
	WallSE image.Image
	WallN  image.Image
	WallS  image.Image
	WallW  image.Image
	WallE  image.Image

	DoorW image.Image
	DoorN image.Image
	DoorE image.Image
	DoorS image.Image

	Crate image.Image
	Bush  image.Image
}

// LoadTileset reads and decodes a tile sheet image file.
func LoadTileset(filename string) (*Tileset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return NewTilesetFromImage(img), nil
}

// NewTilesetFromImage crops the named tiles out of an already-decoded sheet.
// The sheet layout is fixed: terrain on the first row, obstacles and the
// horizontal car on the second, doors on the third, building walls on the
// fourth, with the vertical car spanning the first two rows.
func NewTilesetFromImage(img image.Image) *Tileset {
	sheet := image.NewRGBA(img.Bounds())
	draw.Draw(sheet, sheet.Bounds(), img, img.Bounds().Min, draw.Src)

	ts := config.TileSize
	crop := func(x, y, w, h int) image.Image {
		return sheet.SubImage(image.Rect(x, y, x+w, y+h))
	}
	return &Tileset{
		Ground: crop(0, 0, ts, ts),
		Road:   crop(ts, 0, ts, ts),
		Floor:  crop(ts*3, 0, ts, ts),

		CarH: crop(ts*2, ts, ts*2, ts),
		CarV: crop(ts*4, 0, ts, ts*2),

		Crate: crop(0, ts, ts, ts),
		Bush:  crop(ts, ts, ts, ts),

		DoorW: crop(0, ts*2, ts, ts),
		DoorN: crop(ts, ts*2, ts, ts),
		DoorE: crop(ts*2, ts*2, ts, ts),
		DoorS: crop(ts*3, ts*2, ts, ts),

		WallNW: crop(0, ts*3, ts, ts),
		WallNE: crop(ts, ts*3, ts, ts),
		WallSW: crop(ts*2, ts*3, ts, ts),
		WallSE: crop(ts*3, ts*3, ts, ts),
		WallN:  crop(ts*4, ts*3, ts, ts),
		WallS:  crop(ts*5, ts*3, ts, ts),
		WallW:  crop(ts*6, ts*3, ts, ts),
		WallE:  crop(ts*7, ts*3, ts, ts),
	}
}
