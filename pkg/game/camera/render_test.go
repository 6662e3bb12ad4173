package camera

import (
	"image/color"
	"testing"

	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/renderer"
)

type setCall struct {
	x, y  int
	glyph rune
	fg    color.RGBA
	bg    color.RGBA
}

// recordingSink remembers every Set call in order.
type recordingSink struct {
	w, h  int
	calls []setCall
}

func (r *recordingSink) Set(x, y int, glyph rune, fg, bg color.RGBA) {
	r.calls = append(r.calls, setCall{x, y, glyph, fg, bg})
}

func (r *recordingSink) CharSize() (int, int) {
	return r.w, r.h
}

// last returns the final call that drew x, y.
func (r *recordingSink) last(x, y int) (setCall, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].x == x && r.calls[i].y == y {
			return r.calls[i], true
		}
	}
	return setCall{}, false
}

// litRoom returns a 10x10 map with an open interior (1..8), fully visible.
func litRoom() *world.Map {
	m := world.NewMap(1, 10, 10)
	world.ApplyRoom(m, world.NewRect(0, 0, 8, 8))
	for idx := range m.Tiles {
		x, y := m.IdxXY(idx)
		m.Reveal(world.Pt(x, y))
	}
	return m
}

func addEntity(store *ecs.World, x, y int, glyph rune, order int) ecs.EntityID {
	id := store.CreateEntity()
	store.AddComponent(id, ecs.PositionID, &ecs.Position{X: x, Y: y})
	store.AddComponent(id, ecs.RenderableID, &ecs.Renderable{Glyph: glyph, RenderOrder: order})
	return id
}

func TestRenderTerrainBoundaries(t *testing.T) {
	m := litRoom()
	// Focus at (0,0) with a 10x10 viewport shows map x -5..4.
	sink := &recordingSink{w: 10, h: 10}
	Render(sink, m, nil, world.Pt(0, 0), DefaultOptions)

	c, ok := sink.last(0, 0)
	if !ok || c.glyph != renderer.BoundaryGlyph || c.fg != renderer.Palette.Grey || c.bg != renderer.Palette.Black {
		t.Errorf("out-of-map cell = %+v, %v; want boundary filler", c, ok)
	}
	// Screen (6,6) is map (1,1), a floor tile.
	c, ok = sink.last(6, 6)
	if !ok || c.glyph != renderer.FloorGlyph {
		t.Errorf("screen (6,6) = %+v, %v; want floor", c, ok)
	}
	if len(sink.calls) != 100 {
		t.Errorf("Set calls = %d, want 100", len(sink.calls))
	}
}

func TestRenderTerrainWithoutBoundaries(t *testing.T) {
	m := litRoom()
	sink := &recordingSink{w: 10, h: 10}
	Render(sink, m, nil, world.Pt(0, 0), Options{})
	if _, ok := sink.last(0, 0); ok {
		t.Error("out-of-map cell drawn with boundaries off")
	}
	// Only map x,y in 0..4 are on screen: 25 cells.
	if len(sink.calls) != 25 {
		t.Errorf("Set calls = %d, want 25", len(sink.calls))
	}
}

func TestRenderTerrainSkipsUnrevealed(t *testing.T) {
	m := world.NewMap(1, 10, 10)
	m.Reveal(world.Pt(5, 5))
	sink := &recordingSink{w: 10, h: 10}
	Render(sink, m, nil, world.Pt(5, 5), DefaultOptions)
	if len(sink.calls) != 1 {
		t.Fatalf("Set calls = %d, want 1: %+v", len(sink.calls), sink.calls)
	}
	if c := sink.calls[0]; c.x != 5 || c.y != 5 || c.glyph != '■' {
		t.Errorf("call = %+v, want pillar at (5,5)", c)
	}
}

func TestRenderTerrainGreyscalesRemembered(t *testing.T) {
	m := litRoom()
	m.ClearVisible()
	sink := &recordingSink{w: 10, h: 10}
	Render(sink, m, nil, world.Pt(5, 5), DefaultOptions)
	c, _ := sink.last(5, 5)
	if c.fg != renderer.Greyscale(renderer.Palette.DarkCyan) {
		t.Errorf("remembered floor fg = %v, want greyscale", c.fg)
	}
}

func TestRenderEntitiesOrder(t *testing.T) {
	m := litRoom()
	store := ecs.NewWorld()
	addEntity(store, 5, 5, 'i', 2)
	addEntity(store, 5, 5, '@', 0)
	addEntity(store, 5, 5, 'g', 1)
	addEntity(store, 6, 5, 'a', 1)
	addEntity(store, 6, 5, 'b', 1)

	sink := &recordingSink{w: 10, h: 10}
	Render(sink, m, store, world.Pt(5, 5), DefaultOptions)

	var drawn []rune
	for _, c := range sink.calls[100:] {
		drawn = append(drawn, c.glyph)
	}
	want := "igab@"
	if string(drawn) != want {
		t.Errorf("entity draw order = %q, want %q", string(drawn), want)
	}
	if c, _ := sink.last(5, 5); c.glyph != '@' {
		t.Errorf("top of (5,5) = %q, want @", c.glyph)
	}
	if c, _ := sink.last(6, 5); c.glyph != 'b' {
		t.Errorf("top of (6,5) = %q, want b (stable order)", c.glyph)
	}
}

func TestRenderEntitiesFilters(t *testing.T) {
	m := litRoom()
	m.Visible[m.XYIdx(3, 3)] = false

	store := ecs.NewWorld()
	hidden := addEntity(store, 4, 4, 'h', 1)
	store.AddComponent(hidden, ecs.HiddenID, &ecs.Hidden{})
	addEntity(store, 3, 3, 'v', 1) // not visible
	addEntity(store, 1, 5, 'm', 1) // screen x = 1, inside the margin
	addEntity(store, 2, 5, 'k', 1) // screen x = 2, drawn

	sink := &recordingSink{w: 10, h: 10}
	Render(sink, m, store, world.Pt(5, 5), DefaultOptions)

	var drawn []rune
	for _, c := range sink.calls[100:] {
		drawn = append(drawn, c.glyph)
	}
	if string(drawn) != "k" {
		t.Errorf("drawn entities = %q, want %q", string(drawn), "k")
	}
}

func TestDrawOrderIsStable(t *testing.T) {
	store := ecs.NewWorld()
	var want []ecs.EntityID
	for i := 0; i < 10; i++ {
		want = append(want, addEntity(store, i, 0, 'x', 1))
	}
	got := DrawOrder(store)
	for i := range want {
		if got[i].Entity != want[i] {
			t.Fatalf("DrawOrder()[%d] = %d, want %d", i, got[i].Entity, want[i])
		}
	}
}

func TestRenderOnBuffer(t *testing.T) {
	m := litRoom()
	store := ecs.NewWorld()
	addEntity(store, 5, 5, '@', 0)
	buf := renderer.NewBuffer(10, 10)
	Render(buf, m, store, world.Pt(5, 5), DefaultOptions)
	if got, want := buf.Row(5), "║....@...║"; got != want {
		t.Errorf("row 5 = %q, want %q", got, want)
	}
}
