package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadMonoSource parses the bundled Go Mono font.
func loadMonoSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
}

// getMonoFontFace returns a cached monospace face sized to the current tile
func (g *Game) getMonoFontFace() *text.GoTextFace {
	size := float64(g.tileSize) * fontScale
	if g.cachedFace == nil || g.cachedFontSize != size {
		g.cachedFontSize = size
		g.cachedFace = &text.GoTextFace{
			Source: g.monoSource,
			Size:   size,
		}
	}
	return g.cachedFace
}
