package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// tcellKeys names the special keys the game binds.
var tcellKeys = map[tcell.Key]string{
	tcell.KeyUp:     "arrow_up",
	tcell.KeyDown:   "arrow_down",
	tcell.KeyLeft:   "arrow_left",
	tcell.KeyRight:  "arrow_right",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "escape",
	tcell.KeyF8:     "f8",
	tcell.KeyF9:     "f9",
	tcell.KeyCtrlC:  "q",
}

// FromTcell converts a tcell key event to a RawInput. Ctrl+C reads as "q".
func FromTcell(ev *tcell.EventKey) RawInput {
	return RawInput{
		Device:    DeviceKeyboard,
		Code:      tcellCode(ev.Key(), ev.Rune()),
		Timestamp: ev.When(),
	}
}

func tcellCode(key tcell.Key, r rune) string {
	if code, ok := tcellKeys[key]; ok {
		return code
	}
	if key != tcell.KeyRune {
		return ""
	}
	if r == ' ' {
		return "space"
	}
	return strings.ToLower(string(r))
}
