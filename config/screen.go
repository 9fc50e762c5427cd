package config

// Screen layout configuration
const (
	// Tile size in pixels, matching the 32-px tile sheet
	TileSize = 32
)

// GetWindowSize returns the recommended viewer window size
func GetWindowSize() (width, height int) {
	return 1024, 768
}
