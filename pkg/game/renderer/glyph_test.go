package renderer

import (
	"image/color"
	"testing"

	"malefactor/pkg/engine/world"
)

// revealedWalls builds a map of the given size, all wall, all revealed
// except the listed floor points.
func revealedWalls(w, h int, floors ...world.Point) *world.Map {
	m := world.NewMap(1, w, h)
	for _, p := range floors {
		m.SetTile(p.X, p.Y, world.Floor)
	}
	m.RevealAll()
	return m
}

func TestWallGlyphForMask(t *testing.T) {
	tests := []struct {
		mask uint8
		want rune
		code byte
	}{
		{0, '■', 254},
		{1, '║', 186},
		{2, '║', 186},
		{3, '║', 186},
		{4, '═', 205},
		{8, '═', 205},
		{12, '═', 205},
		{5, '╝', 188},
		{6, '╗', 187},
		{7, '╣', 185},
		{9, '╚', 200},
		{10, '╔', 201},
		{11, '╠', 204},
		{13, '╩', 202},
		{14, '╦', 203},
		{15, '╬', 206},
		{16, '#', 35},
	}
	for _, tt := range tests {
		got := WallGlyphForMask(tt.mask)
		if got != tt.want {
			t.Errorf("WallGlyphForMask(%d) = %q, want %q", tt.mask, got, tt.want)
		}
		if code, ok := CP437(got); !ok || code != tt.code {
			t.Errorf("CP437(%q) = %d, %v; want %d", got, code, ok, tt.code)
		}
	}
}

func TestWallMaskCorner(t *testing.T) {
	// Corner (0,0): north and west are off the map, east and south are
	// floor, so nothing counts.
	m := revealedWalls(3, 3, world.Pt(1, 0), world.Pt(0, 1), world.Pt(1, 1))
	if got := WallMask(m, 0, 0); got != 0 {
		t.Errorf("WallMask(0,0) = %d, want 0", got)
	}
	if got := WallGlyph(m, 0, 0); got != '■' {
		t.Errorf("WallGlyph(0,0) = %q, want pillar", got)
	}
}

func TestWallMaskCornerIgnoresOwnTile(t *testing.T) {
	m := revealedWalls(3, 3, world.Pt(0, 0), world.Pt(1, 0), world.Pt(0, 1), world.Pt(1, 1))
	if m.Tile(0, 0) != world.Floor {
		t.Fatalf("setup: (0,0) is %v, want Floor", m.Tile(0, 0))
	}
	if got := WallMask(m, 0, 0); got != 0 {
		t.Errorf("WallMask(0,0) on floor = %d, want 0", got)
	}
	if got := WallGlyph(m, 0, 0); got != '■' {
		t.Errorf("WallGlyph(0,0) on floor = %q, want pillar", got)
	}
}

func TestWallMaskFullInterior(t *testing.T) {
	m := revealedWalls(3, 3)
	if got := WallMask(m, 1, 1); got != 15 {
		t.Errorf("WallMask(1,1) = %d, want 15", got)
	}
	if got := WallGlyph(m, 1, 1); got != '╬' {
		t.Errorf("WallGlyph(1,1) = %q, want ╬", got)
	}
}

func TestWallMaskIgnoresUnrevealed(t *testing.T) {
	m := world.NewMap(1, 3, 3)
	m.Reveal(world.Pt(1, 0))
	m.Reveal(world.Pt(1, 2))
	// Only north and south are revealed.
	if got := WallMask(m, 1, 1); got != 3 {
		t.Errorf("WallMask(1,1) = %d, want 3", got)
	}
}

func TestWallMaskBits(t *testing.T) {
	tests := []struct {
		name  string
		walls []world.Point
		want  uint8
	}{
		{"north", []world.Point{{X: 1, Y: 0}}, 1},
		{"south", []world.Point{{X: 1, Y: 2}}, 2},
		{"west", []world.Point{{X: 0, Y: 1}}, 4},
		{"east", []world.Point{{X: 2, Y: 1}}, 8},
		{"north east", []world.Point{{X: 1, Y: 0}, {X: 2, Y: 1}}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := world.NewMap(1, 3, 3)
			for i := range m.Tiles {
				m.Tiles[i] = world.Floor
			}
			m.SetTile(1, 1, world.Wall)
			for _, p := range tt.walls {
				m.SetTile(p.X, p.Y, world.Wall)
			}
			m.RevealAll()
			if got := WallMask(m, 1, 1); got != tt.want {
				t.Errorf("WallMask = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTileGlyph(t *testing.T) {
	m := world.NewMap(1, 5, 5)
	world.ApplyRoom(m, world.NewRect(0, 0, 3, 3))
	m.SetTile(2, 2, world.DownStairs)
	m.RevealAll()
	m.Reveal(world.Pt(1, 1))

	g, fg, bg := TileGlyph(m, 1, 1)
	if g != FloorGlyph || fg != Palette.DarkCyan || bg != Palette.Black {
		t.Errorf("visible floor = %q %v %v", g, fg, bg)
	}

	g, fg, _ = TileGlyph(m, 2, 2)
	if g != DownStairsGlyph {
		t.Errorf("stairs glyph = %q, want %q", g, DownStairsGlyph)
	}
	if fg != Greyscale(Palette.DarkCyan) {
		t.Errorf("remembered stairs fg = %v, want greyscale", fg)
	}

	g, fg, _ = TileGlyph(m, 4, 4)
	if g == FloorGlyph || fg != Greyscale(Palette.Green) {
		t.Errorf("remembered wall = %q %v", g, fg)
	}
}

func TestGreyscale(t *testing.T) {
	tests := []struct {
		in   color.RGBA
		want uint8
	}{
		{Palette.Black, 0},
		{Palette.White, 255},
		{Palette.Green, 150},
		{Palette.DarkCyan, 97},
	}
	for _, tt := range tests {
		got := Greyscale(tt.in)
		if got.R != tt.want || got.G != tt.want || got.B != tt.want || got.A != tt.in.A {
			t.Errorf("Greyscale(%v) = %v, want grey %d", tt.in, got, tt.want)
		}
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(1, 0, 'x', Palette.Red, Palette.Black)
	b.Set(5, 5, 'y', Palette.Red, Palette.Black)
	if c, ok := b.At(1, 0); !ok || c.Glyph != 'x' {
		t.Errorf("At(1,0) = %+v, %v", c, ok)
	}
	if got := b.Row(0); got != " x " {
		t.Errorf("Row(0) = %q", got)
	}
	b.Clear()
	if _, ok := b.At(1, 0); ok {
		t.Error("cell still set after Clear")
	}
	if w, h := b.CharSize(); w != 3 || h != 2 {
		t.Errorf("CharSize() = %d,%d", w, h)
	}
}
