package renderer

import (
	"image/color"

	"malefactor/pkg/engine/world"
)

// Glyphs for non-wall tiles and the out-of-map filler.
const (
	FloorGlyph      = '.'
	DownStairsGlyph = '▼'
	BoundaryGlyph   = '+'
	UnknownWall     = '#'
)

// wallGlyphs maps a neighbour mask to its line-drawing glyph. Masks not
// listed fall back to UnknownWall.
var wallGlyphs = map[uint8]rune{
	0:  '■',
	1:  '║',
	2:  '║',
	3:  '║',
	4:  '═',
	8:  '═',
	12: '═',
	5:  '╝',
	6:  '╗',
	7:  '╣',
	9:  '╚',
	10: '╔',
	11: '╠',
	13: '╩',
	14: '╦',
	15: '╬',
}

// cp437 maps every glyph this package emits to its code page 437 byte.
var cp437 = map[rune]byte{
	'■': 254,
	'║': 186,
	'═': 205,
	'╝': 188,
	'╗': 187,
	'╣': 185,
	'╚': 200,
	'╔': 201,
	'╠': 204,
	'╩': 202,
	'╦': 203,
	'╬': 206,
	'#': 35,
	'.': 46,
	'+': 43,
	'▼': 31,
	'@': 64,
}

// WallMask returns the four-neighbour mask of x, y: bit0 north, bit1 south,
// bit2 west, bit3 east. A neighbour counts when it is in range, a wall and
// revealed.
func WallMask(m *world.Map, x, y int) uint8 {
	var mask uint8
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		if m.IsRevealedWall(x+dx, y+dy) {
			mask |= dir.Bit()
		}
	}
	return mask
}

// WallGlyphForMask returns the glyph for a neighbour mask.
func WallGlyphForMask(mask uint8) rune {
	if g, ok := wallGlyphs[mask]; ok {
		return g
	}
	return UnknownWall
}

// WallGlyph picks the wall glyph for x, y from its revealed wall neighbours.
func WallGlyph(m *world.Map, x, y int) rune {
	return WallGlyphForMask(WallMask(m, x, y))
}

// TileGlyph returns how the tile at x, y is drawn. The foreground is
// greyscaled when the tile is not currently visible.
func TileGlyph(m *world.Map, x, y int) (glyph rune, fg, bg color.RGBA) {
	bg = Palette.Black
	switch m.Tile(x, y) {
	case world.Floor:
		glyph, fg = FloorGlyph, Palette.DarkCyan
	case world.DownStairs:
		glyph, fg = DownStairsGlyph, Palette.DarkCyan
	default:
		glyph, fg = WallGlyph(m, x, y), Palette.Green
	}
	if !m.IsVisible(x, y) {
		fg = Greyscale(fg)
	}
	return glyph, fg, bg
}

// CP437 returns the code page 437 byte for r, for tileset-based sinks.
func CP437(r rune) (byte, bool) {
	b, ok := cp437[r]
	return b, ok
}
