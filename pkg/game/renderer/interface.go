// Package renderer holds what every drawing backend shares: the Sink
// interface, the colour palette and the tile glyph rules.
package renderer

import "image/color"

// Sink is a character grid the game draws into. Implementations include the
// ANSI terminal buffer (tui), a tcell screen and the ebiten window.
type Sink interface {
	// Set draws one glyph at screen cell x, y. Cells outside the sink are
	// ignored.
	Set(x, y int, glyph rune, fg, bg color.RGBA)

	// CharSize returns the sink's size in character cells.
	CharSize() (w, h int)
}

// Cell is one drawn character, used by buffered sinks.
type Cell struct {
	Glyph rune
	FG    color.RGBA
	BG    color.RGBA
}

// Buffer is an in-memory Sink. Backends that cannot draw immediately fill a
// Buffer and then present it; tests use it to inspect frames.
type Buffer struct {
	w, h  int
	cells []Cell
	set   []bool
}

// NewBuffer creates an empty buffer of w x h cells.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{w: w, h: h, cells: make([]Cell, w*h), set: make([]bool, w*h)}
}

// Set implements Sink.
func (b *Buffer) Set(x, y int, glyph rune, fg, bg color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	idx := y*b.w + x
	b.cells[idx] = Cell{Glyph: glyph, FG: fg, BG: bg}
	b.set[idx] = true
}

// CharSize implements Sink.
func (b *Buffer) CharSize() (w, h int) {
	return b.w, b.h
}

// At returns the cell at x, y and whether anything was drawn there since the
// last Clear.
func (b *Buffer) At(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Cell{}, false
	}
	idx := y*b.w + x
	return b.cells[idx], b.set[idx]
}

// Clear forgets every drawn cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
		b.set[i] = false
	}
}

// Resize changes the buffer size, clearing it.
func (b *Buffer) Resize(w, h int) {
	if w == b.w && h == b.h {
		b.Clear()
		return
	}
	*b = *NewBuffer(w, h)
}

// Row returns the glyphs of row y, with a space for undrawn cells.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.h {
		return ""
	}
	runes := make([]rune, b.w)
	for x := 0; x < b.w; x++ {
		c, ok := b.At(x, y)
		if !ok || c.Glyph == 0 {
			runes[x] = ' '
			continue
		}
		runes[x] = c.Glyph
	}
	return string(runes)
}
