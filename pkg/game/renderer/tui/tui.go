// Package tui draws frames to an ANSI terminal. Frames are collected in a
// cell buffer and written out row by row with true-colour escapes.
package tui

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"

	gcolor "github.com/gookit/color"

	"malefactor/pkg/engine/terminal"
	"malefactor/pkg/game/renderer"
)

// MessageRows is the space kept below the map for the status line and the
// messages pane.
const MessageRows = 8

// Sink is a renderer.Sink backed by an in-memory buffer.
type Sink struct {
	*renderer.Buffer

	subtle gcolor.Style
}

// New creates a w x h sink. Non-positive sizes are taken from the terminal
// on stdout, leaving MessageRows for the messages pane.
func New(w, h int) *Sink {
	if w <= 0 || h <= 0 {
		tw, th := terminal.StdoutSize()
		if w <= 0 {
			w = tw
		}
		if h <= 0 {
			h = th - MessageRows
		}
	}
	if h < 1 {
		h = 1
	}
	return &Sink{
		Buffer: renderer.NewBuffer(w, h),
		subtle: gcolor.Style{gcolor.FgGray, gcolor.OpBold},
	}
}

func rgb(c color.RGBA, bg bool) gcolor.RGBColor {
	return gcolor.RGB(c.R, c.G, c.B, bg)
}

// Flush writes the buffer to w. Runs of cells sharing colours are written
// with a single style.
func (s *Sink) Flush(w io.Writer) error {
	bw := bufio.NewWriter(w)
	width, height := s.CharSize()

	for y := 0; y < height; y++ {
		var run strings.Builder
		var runFG, runBG color.RGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := gcolor.NewRGBStyle(rgb(runFG, false), rgb(runBG, true))
			bw.WriteString(style.Sprint(run.String()))
			run.Reset()
		}

		for x := 0; x < width; x++ {
			c, ok := s.At(x, y)
			if !ok {
				c = renderer.Cell{Glyph: ' ', FG: renderer.Palette.Black, BG: renderer.Palette.Black}
			}
			if run.Len() > 0 && (c.FG != runFG || c.BG != runBG) {
				flush()
			}
			runFG, runBG = c.FG, c.BG
			run.WriteRune(c.Glyph)
		}
		flush()
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WriteMessages prints the status line and the most recent messages under a
// rule as wide as the frame.
func (s *Sink) WriteMessages(w io.Writer, status string, messages []string) error {
	width, _ := s.CharSize()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, status)
	fmt.Fprintln(bw, s.subtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))
	if len(messages) == 0 {
		fmt.Fprintln(bw, s.subtle.Sprint("  (no messages)"))
	}

	start := 0
	if keep := MessageRows - 3; len(messages) > keep {
		start = len(messages) - keep
	}
	for _, msg := range messages[start:] {
		fmt.Fprintf(bw, "  %s\n", msg)
	}
	return bw.Flush()
}

// Clear homes the cursor and clears the screen.
func Clear(w io.Writer) {
	fmt.Fprint(w, "\x1b[H\x1b[2J")
}
