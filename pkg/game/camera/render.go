package camera

import (
	"sort"

	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/renderer"
)

// Options tweaks a render pass.
type Options struct {
	// ShowBoundaries fills cells outside the map with BoundaryGlyph.
	ShowBoundaries bool
}

// DefaultOptions has boundaries on.
var DefaultOptions = Options{ShowBoundaries: true}

// Render draws the terrain around focus and then every visible entity into
// sink. The viewport is the sink's character size.
func Render(sink renderer.Sink, m *world.Map, store *ecs.World, focus world.Point, opts Options) {
	w, h := sink.CharSize()
	vp := Viewport{W: w, H: h}
	RenderTerrain(sink, m, focus, vp, opts)
	if store != nil {
		RenderEntities(sink, m, store, focus, vp)
	}
}

// RenderTerrain draws revealed tiles. Unrevealed tiles inside the map are
// left alone.
func RenderTerrain(sink renderer.Sink, m *world.Map, focus world.Point, vp Viewport, opts Options) {
	f := ScreenBounds(focus, vp)
	for ty, sy := f.MinY, 0; ty < f.MaxY; ty, sy = ty+1, sy+1 {
		for tx, sx := f.MinX, 0; tx < f.MaxX; tx, sx = tx+1, sx+1 {
			switch {
			case m.InBounds(tx, ty):
				if !m.IsRevealed(tx, ty) {
					continue
				}
				glyph, fg, bg := renderer.TileGlyph(m, tx, ty)
				sink.Set(sx, sy, glyph, fg, bg)
			case opts.ShowBoundaries:
				sink.Set(sx, sy, renderer.BoundaryGlyph, renderer.Palette.Grey, renderer.Palette.Black)
			}
		}
	}
}

// DrawOrder returns the store's drawables sorted back to front: higher
// RenderOrder first, ties kept in creation order.
func DrawOrder(store *ecs.World) []ecs.Drawable {
	data := store.Renderables()
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Renderable.RenderOrder > data[j].Renderable.RenderOrder
	})
	return data
}

// RenderEntities draws entities standing on visible tiles inside the
// viewport margin, back to front.
func RenderEntities(sink renderer.Sink, m *world.Map, store *ecs.World, focus world.Point, vp Viewport) {
	for _, d := range DrawOrder(store) {
		pos := d.Position.Point()
		if !m.IsVisible(pos.X, pos.Y) {
			continue
		}
		s := MapToScreen(focus, vp, pos)
		if !insideMargin(s, vp) {
			continue
		}
		r := d.Renderable
		sink.Set(s.X, s.Y, r.Glyph, r.FG, r.BG)
	}
}
