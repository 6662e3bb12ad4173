// Package tcell draws frames onto a tcell screen.
package tcell

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Screen is the part of tcell.Screen the sink uses.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Sink adapts a tcell screen to renderer.Sink.
type Sink struct {
	screen Screen
}

// New wraps screen.
func New(screen Screen) *Sink {
	return &Sink{screen: screen}
}

// Style converts a foreground/background pair to a tcell style.
func Style(fg, bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// Set implements renderer.Sink.
func (s *Sink) Set(x, y int, glyph rune, fg, bg color.RGBA) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, glyph, nil, Style(fg, bg))
}

// CharSize implements renderer.Sink.
func (s *Sink) CharSize() (w, h int) {
	return s.screen.Size()
}

