package ebiten

import "image/color"

// Tile sizing (pixels). Zoom steps between the min and max.
const (
	defaultTileSize = 16
	minTileSize     = 8
	maxTileSize     = 48
	tileSizeStep    = 2

	// Font size relative to the tile height
	fontScale = 0.9

	defaultWindowCols = 80
	defaultWindowRows = 50
)

// Key repeat timing (milliseconds)
const (
	keyRepeatInitialDelay = 250
	keyRepeatInterval     = 90
)

var colorBackground = color.RGBA{0, 0, 0, 255}
