package renderer

import (
	"image/color"
	"math"
)

// Palette holds the named colours used by tiles, entities and overlays.
var Palette = struct {
	Grey, Black, Green, DarkCyan, Blue, Cyan, Red, Yellow, White, Magenta, Orange color.RGBA
}{
	Grey:     color.RGBA{128, 128, 128, 255},
	Black:    color.RGBA{0, 0, 0, 255},
	Green:    color.RGBA{0, 255, 0, 255},
	DarkCyan: color.RGBA{0, 139, 139, 255},
	Blue:     color.RGBA{0, 0, 255, 255},
	Cyan:     color.RGBA{0, 255, 255, 255},
	Red:      color.RGBA{255, 0, 0, 255},
	Yellow:   color.RGBA{255, 255, 0, 255},
	White:    color.RGBA{255, 255, 255, 255},
	Magenta:  color.RGBA{255, 0, 255, 255},
	Orange:   color.RGBA{255, 165, 0, 255},
}

// Greyscale converts c to its luminance grey (.299r + .587g + .114b).
// Alpha is kept; the luminance is rounded to the nearest level.
func Greyscale(c color.RGBA) color.RGBA {
	l := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	v := uint8(math.Min(math.Round(l), 255))
	return color.RGBA{v, v, v, c.A}
}
