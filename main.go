package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dbisdorf/battlemap-gen/config"
	"github.com/dbisdorf/battlemap-gen/generation"
	"github.com/dbisdorf/battlemap-gen/render"
)

// Environment variables for the CGI-style web mode.
const (
	webModeVar  = "BATTLEMAPPER_WEB"
	webQueryVar = "QUERY_STRING"
)

const tileSheetFile = "gfx/tiles.png"

func main() {
	params := config.Default()
	var seed int64
	var outFile string
	var view bool
	flag.IntVar(&params.Width, "width", params.Width, "map width in cells")
	flag.IntVar(&params.Height, "height", params.Height, "map height in cells")
	flag.IntVar(&params.RoadCount, "road-count", params.RoadCount, "number of roads")
	flag.IntVar(&params.RoadWidth, "road-width", params.RoadWidth, "road width in cells")
	flag.IntVar(&params.BuildingCount, "building-count", params.BuildingCount, "number of buildings")
	flag.IntVar(&params.BuildingSize, "building-size", params.BuildingSize, "maximum building footprint extent in cells")
	flag.Int64Var(&seed, "seed", 0, "generation seed (0 uses the current time)")
	flag.StringVar(&outFile, "out", "map.png", "output PNG file")
	flag.BoolVar(&view, "view", false, "open the interactive viewer instead of writing a file")
	flag.Parse()

	// When invoked as a CGI program, parameters come from the query string
	// and the image goes to stdout as base64.
	if os.Getenv(webModeVar) == "1" {
		if err := runWeb(os.Getenv(webQueryVar)); err != nil {
			log.Fatal(err)
		}
		return
	}

	tiles, err := render.LoadTileset(tileSheetFile)
	if err != nil {
		log.Fatal(err)
	}

	generator := generation.NewGenerator(params, func(message string) { log.Print(message) })
	if seed != 0 {
		generator.SetSeed(seed)
	}

	if view {
		viewer := NewViewer(generator, tiles)
		ebiten.SetWindowSize(config.GetWindowSize())
		ebiten.SetWindowTitle("Battlemap Generator")
		if err := ebiten.RunGame(viewer); err != nil {
			log.Fatal(err)
		}
		return
	}

	layout, err := generator.Generate()
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WritePNG(render.Compose(layout, tiles), outFile); err != nil {
		log.Fatal(err)
	}
}

// runWeb generates one map from query-string parameters and prints it as a
// base64 PNG with a CGI response header.
func runWeb(query string) error {
	params := config.Default()
	values, err := url.ParseQuery(query)
	if err != nil {
		return fmt.Errorf("bad query string: %w", err)
	}
	fields := map[string]*int{
		"width":          &params.Width,
		"height":         &params.Height,
		"road_count":     &params.RoadCount,
		"road_width":     &params.RoadWidth,
		"building_count": &params.BuildingCount,
		"building_size":  &params.BuildingSize,
	}
	for name, field := range fields {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("bad %s value %q: %w", name, raw, err)
		}
		*field = n
	}

	tiles, err := render.LoadTileset(tileSheetFile)
	if err != nil {
		return err
	}
	layout, err := generation.NewGenerator(params, nil).Generate()
	if err != nil {
		return err
	}
	encoded, err := render.Base64PNG(render.Compose(layout, tiles))
	if err != nil {
		return err
	}

	fmt.Println("Content-type: text/plain")
	fmt.Println()
	fmt.Println(encoded)
	return nil
}
