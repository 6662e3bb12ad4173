package camera

import (
	"errors"
	"image/color"
	"sort"

	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/renderer"
)

// ErrMissingViewshed is returned when the targeting entity has no viewshed.
// Callers treat it as "no targets available".
var ErrMissingViewshed = errors.New("entity has no viewshed")

// AvailableTargets returns the cells the player can see within rangeTiles
// (straight-line distance) of focus, in row-major order.
func AvailableTargets(store *ecs.World, player ecs.EntityID, focus world.Point, rangeTiles int) ([]world.Point, error) {
	vs, ok := store.Viewshed(player)
	if !ok {
		return nil, ErrMissingViewshed
	}

	limit := rangeTiles * rangeTiles
	var cells []world.Point
	vs.Visible.Each(func(p world.Point) {
		dx, dy := p.X-focus.X, p.Y-focus.Y
		if dx*dx+dy*dy <= limit {
			cells = append(cells, p)
		}
	})
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells, nil
}

// RenderTargets highlights target cells: blue for every available cell,
// cyan under the cursor when it is on one, red under the cursor otherwise.
// It reports whether the cursor is on a valid target.
func RenderTargets(sink renderer.Sink, m *world.Map, store *ecs.World, focus world.Point, cells []world.Point, cursor world.Point) bool {
	w, h := sink.CharSize()
	vp := Viewport{W: w, H: h}
	top := topDrawables(store)

	valid := false
	for _, p := range cells {
		bg := renderer.Palette.Blue
		if p == cursor {
			bg = renderer.Palette.Cyan
			valid = true
		}
		highlight(sink, m, top, focus, vp, p, bg)
	}
	if !valid {
		highlight(sink, m, top, focus, vp, cursor, renderer.Palette.Red)
	}
	return valid
}

// topDrawables maps each point to the entity drawn on top there.
func topDrawables(store *ecs.World) map[world.Point]ecs.Drawable {
	top := make(map[world.Point]ecs.Drawable)
	if store == nil {
		return top
	}
	for _, d := range DrawOrder(store) {
		top[d.Position.Point()] = d
	}
	return top
}

func highlight(sink renderer.Sink, m *world.Map, top map[world.Point]ecs.Drawable, focus world.Point, vp Viewport, p world.Point, bg color.RGBA) {
	s := MapToScreen(focus, vp, p)
	glyph, fg := ' ', renderer.Palette.White
	if m.IsRevealed(p.X, p.Y) {
		glyph, fg, _ = renderer.TileGlyph(m, p.X, p.Y)
	}
	if d, ok := top[p]; ok && m.IsVisible(p.X, p.Y) {
		glyph, fg = d.Renderable.Glyph, d.Renderable.FG
	}
	sink.Set(s.X, s.Y, glyph, fg, bg)
}
