package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Level
	ActionDescend
	ActionWait

	// Targeting
	ActionTarget  // Enter targeting mode
	ActionConfirm // Pick the target under the cursor
	ActionCancel  // Leave targeting mode

	// Meta / UI
	ActionQuit
	ActionRevealMap // Developer: reveal the whole level (F9)
	ActionDumpMap   // Developer: write the level to map.txt (F8)
	ActionZoomIn
	ActionZoomOut
	ActionHelp
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device-independent key name (e.g. "k", "arrow_up", "f9").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a RawInput after deduplication. Both backends already
// deliver one event per key press, so this is a thin wrapper.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes cannot be rebound away from their action.
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"enter":       true,
	"escape":      true,
}

// defaultBindings maps key codes to actions. Multiple codes may point to
// the same Action.
func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement (arrows, numpad, Vim)
		"arrow_up":    ActionMoveNorth,
		"k":           ActionMoveNorth,
		"8":           ActionMoveNorth,
		"arrow_down":  ActionMoveSouth,
		"j":           ActionMoveSouth,
		"2":           ActionMoveSouth,
		"arrow_left":  ActionMoveWest,
		"h":           ActionMoveWest,
		"4":           ActionMoveWest,
		"arrow_right": ActionMoveEast,
		"l":           ActionMoveEast,
		"6":           ActionMoveEast,

		">":     ActionDescend,
		".":     ActionDescend,
		"space": ActionWait,
		"5":     ActionWait,

		"t":      ActionTarget,
		"enter":  ActionConfirm,
		"escape": ActionCancel,

		"q":  ActionQuit,
		"f8": ActionDumpMap,
		"f9": ActionRevealMap,

		// Zoom (graphical backend only)
		"=": ActionZoomIn,
		"+": ActionZoomIn,
		"-": ActionZoomOut,

		"?": ActionHelp,
	}
}

var bindings = defaultBindings()

// ResetBindings restores the default key bindings.
func ResetBindings() {
	bindings = defaultBindings()
}

// MapToIntent applies the current bindings to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw event through debouncing and bindings.
func Resolve(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionDescend:
		return "Descend"
	case ActionWait:
		return "Wait"
	case ActionTarget:
		return "Target"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	case ActionRevealMap:
		return "Reveal Map"
	case ActionDumpMap:
		return "Dump Map"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help screens don't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for action with code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// ErrBadBinding is returned for a binding that is not "action=key".
var ErrBadBinding = errors.New("binding must look like action=key")

// ErrUnknownAction is returned when a binding names no known action.
var ErrUnknownAction = errors.New("unknown action")

// ErrReservedKey is returned when a binding tries to take a reserved key.
var ErrReservedKey = errors.New("key is reserved")

func normalizeActionName(name string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(name))
}

// ActionByName finds the action whose ActionName matches name, ignoring case,
// spaces, dashes and underscores ("move_north", "MoveNorth").
func ActionByName(name string) (Action, bool) {
	want := normalizeActionName(name)
	for a := ActionMoveNorth; a <= ActionHelp; a++ {
		if normalizeActionName(ActionName(a)) == want {
			return a, true
		}
	}
	return ActionNone, false
}

// ParseBinding splits "action=key" into its action and key code.
func ParseBinding(s string) (Action, string, error) {
	name, code, ok := strings.Cut(s, "=")
	name, code = strings.TrimSpace(name), strings.ToLower(strings.TrimSpace(code))
	if !ok || name == "" || code == "" {
		return ActionNone, "", fmt.Errorf("%q: %w", s, ErrBadBinding)
	}
	act, ok := ActionByName(name)
	if !ok {
		return ActionNone, "", fmt.Errorf("%q: %w", name, ErrUnknownAction)
	}
	if reserved[code] {
		return ActionNone, "", fmt.Errorf("%q: %w", code, ErrReservedKey)
	}
	return act, code, nil
}

// ApplyBinding parses s and makes its key the only rebindable key for the
// action.
func ApplyBinding(s string) error {
	act, code, err := ParseBinding(s)
	if err != nil {
		return err
	}
	SetSingleBinding(act, code)
	return nil
}
