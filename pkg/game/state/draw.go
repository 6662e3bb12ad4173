package state

import (
	"image/color"

	"malefactor/pkg/game/camera"
	"malefactor/pkg/game/renderer"
)

// hudRows is how many rows Draw keeps for the status line and messages
// when ShowHUD is on.
const hudRows = 1 + maxMessages

// mapRegion restricts a sink to its top rows.
type mapRegion struct {
	renderer.Sink
	rows int
}

func (r mapRegion) Set(x, y int, glyph rune, fg, bg color.RGBA) {
	if y < 0 || y >= r.rows {
		return
	}
	r.Sink.Set(x, y, glyph, fg, bg)
}

func (r mapRegion) CharSize() (int, int) {
	w, _ := r.Sink.CharSize()
	return w, r.rows
}

// Draw renders the level centred on the player, the targeting and help
// overlays and, when ShowHUD is set, the status line and message log under
// the map.
func (g *Game) Draw(sink renderer.Sink) {
	w, h := sink.CharSize()
	target := sink
	if g.ShowHUD && h > hudRows {
		target = mapRegion{Sink: sink, rows: h - hudRows}
		g.drawHUD(sink, w, h-hudRows)
	}

	l := g.Level
	focus := l.PlayerPos()
	camera.Render(target, l.Map, l.Store, focus, g.Settings.Render)
	if g.Targeting != nil {
		camera.RenderTargets(target, l.Map, l.Store, focus, g.Targeting.Cells, g.Targeting.Cursor)
	}
	if g.ShowHelp {
		drawHelp(target)
	}
}

func (g *Game) drawHUD(sink renderer.Sink, w, top int) {
	blank := renderer.Palette.Black
	for y := top; y < top+hudRows; y++ {
		for x := 0; x < w; x++ {
			sink.Set(x, y, ' ', blank, blank)
		}
	}
	printRow(sink, w, top, g.Status(), renderer.Palette.Yellow)
	for i, msg := range g.Messages {
		printRow(sink, w, top+1+i, msg, renderer.Palette.White)
	}
}

func printRow(sink renderer.Sink, w, y int, s string, fg color.RGBA) {
	x := 0
	for _, r := range s {
		if x >= w {
			return
		}
		sink.Set(x, y, r, fg, renderer.Palette.Black)
		x++
	}
}
