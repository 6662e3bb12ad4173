package state

import (
	"fmt"
	"strings"

	engineinput "malefactor/pkg/engine/input"
	"malefactor/pkg/game/renderer"
)

// helpActions are listed in the help overlay, in this order.
var helpActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionDescend,
	engineinput.ActionWait,
	engineinput.ActionTarget,
	engineinput.ActionConfirm,
	engineinput.ActionCancel,
	engineinput.ActionRevealMap,
	engineinput.ActionDumpMap,
	engineinput.ActionZoomIn,
	engineinput.ActionZoomOut,
	engineinput.ActionHelp,
	engineinput.ActionQuit,
}

// HelpLines returns one "Name: keys" line per action using the current
// bindings.
func HelpLines() []string {
	byAction := engineinput.GetBindingsByAction()
	lines := make([]string, 0, len(helpActions))
	for _, act := range helpActions {
		codes := strings.Join(byAction[act], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", engineinput.ActionName(act), codes))
	}
	return lines
}

// drawHelp paints the help lines in a box at the top left of sink.
func drawHelp(sink renderer.Sink) {
	w, h := sink.CharSize()
	lines := HelpLines()
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	bg := renderer.Palette.Black
	for i := 0; i < len(lines)+2 && i < h; i++ {
		for x := 0; x < width+4 && x < w; x++ {
			sink.Set(x, i, ' ', bg, bg)
		}
	}
	for i, l := range lines {
		if i+1 >= h {
			return
		}
		printRow(sink, w, i+1, "  "+l, renderer.Palette.White)
	}
}
