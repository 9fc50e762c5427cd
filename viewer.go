package main

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dbisdorf/battlemap-gen/generation"
	"github.com/dbisdorf/battlemap-gen/render"
)

// Viewer implements ebiten.Game interface for browsing generated maps.
// R generates a fresh map, S saves the current one, Escape quits.
type Viewer struct {
	generator *generation.Generator
	tiles     *render.Tileset
	composed  *image.RGBA
	mapImage  *ebiten.Image
}

// NewViewer creates a viewer and generates its first map.
func NewViewer(generator *generation.Generator, tiles *render.Tileset) *Viewer {
	viewer := &Viewer{
		generator: generator,
		tiles:     tiles,
	}
	viewer.regenerate()
	return viewer
}

// regenerate produces a new map with a fresh seed. On a placement error the
// previous map stays on screen.
func (v *Viewer) regenerate() {
	v.generator.SetSeed(time.Now().UnixNano())
	layout, err := v.generator.Generate()
	if err != nil {
		log.Printf("generation failed: %v", err)
		return
	}
	v.composed = render.Compose(layout, v.tiles)
	v.mapImage = ebiten.NewImageFromImage(v.composed)
}

// Update handles the viewer's keys.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && v.composed != nil {
		if err := render.WritePNG(v.composed, "map.png"); err != nil {
			log.Printf("save failed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw scales the map to fit the window, preserving its aspect ratio.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.mapImage == nil {
		return
	}
	screenBounds := screen.Bounds()
	mapBounds := v.mapImage.Bounds()
	scaleX := float64(screenBounds.Dx()) / float64(mapBounds.Dx())
	scaleY := float64(screenBounds.Dy()) / float64(mapBounds.Dy())
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(screenBounds.Dx())-float64(mapBounds.Dx())*scale)/2,
		(float64(screenBounds.Dy())-float64(mapBounds.Dy())*scale)/2,
	)
	screen.DrawImage(v.mapImage, op)
}

// Layout reports the game's logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
