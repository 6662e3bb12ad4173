// Package ebiten runs the game in a window. Each frame is drawn into a
// character buffer which is then painted cell by cell with Go Mono.
package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	engineinput "malefactor/pkg/engine/input"
	"malefactor/pkg/game/renderer"
)

// Driver is the game being shown.
type Driver interface {
	// Handle applies one intent and reports whether the game should quit.
	Handle(in engineinput.Intent) (quit bool)
	// Draw renders the current frame into sink.
	Draw(sink renderer.Sink)
}

// Game implements ebiten.Game.
type Game struct {
	driver Driver
	title  string

	windowWidth  int
	windowHeight int
	tileSize     int
	cols, rows   int

	buf *renderer.Buffer

	monoSource     *text.GoTextFaceSource
	cachedFace     *text.GoTextFace
	cachedFontSize float64

	keyRepeat map[string]keyRepeatInfo
}

// New creates a window game for driver.
func New(driver Driver, title string) (*Game, error) {
	src, err := loadMonoSource()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	g := &Game{
		driver:       driver,
		title:        title,
		tileSize:     defaultTileSize,
		windowWidth:  defaultWindowCols * defaultTileSize,
		windowHeight: defaultWindowRows * defaultTileSize,
		buf:          renderer.NewBuffer(0, 0),
		monoSource:   src,
		keyRepeat:    make(map[string]keyRepeatInfo),
	}
	g.recalculateViewport()
	return g, nil
}

// Run opens the window and blocks until the game quits.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.windowWidth, g.windowHeight)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logrus.WithFields(logrus.Fields{"cols": g.cols, "rows": g.rows}).Info("opening window")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update handles input (Ebiten interface)
func (g *Game) Update() error {
	in := g.checkInput()
	if in.Action == engineinput.ActionNone {
		return nil
	}
	if g.handleZoom(in) {
		return nil
	}
	if g.driver.Handle(in) {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current frame (Ebiten interface)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g.buf.Resize(g.cols, g.rows)
	g.driver.Draw(g.buf)

	face := g.getMonoFontFace()
	ts := float32(g.tileSize)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c, ok := g.buf.At(x, y)
			if !ok {
				continue
			}
			px, py := float32(x)*ts, float32(y)*ts
			if c.BG != colorBackground {
				vector.DrawFilledRect(screen, px, py, ts, ts, c.BG, false)
			}
			if c.Glyph == 0 || c.Glyph == ' ' {
				continue
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(px), float64(py))
			op.ColorScale.ScaleWithColor(c.FG)
			text.Draw(screen, string(c.Glyph), face, op)
		}
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.windowWidth || outsideHeight != g.windowHeight {
		g.windowWidth = outsideWidth
		g.windowHeight = outsideHeight
		g.recalculateViewport()
	}
	return outsideWidth, outsideHeight
}

// recalculateViewport fits the character grid to the window.
func (g *Game) recalculateViewport() {
	g.cachedFace = nil
	g.cols = g.windowWidth / g.tileSize
	g.rows = g.windowHeight / g.tileSize
	if g.cols < 1 {
		g.cols = 1
	}
	if g.rows < 1 {
		g.rows = 1
	}
}
