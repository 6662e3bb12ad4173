package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "malefactor/pkg/engine/input"
)

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// repeatKeys are movement keys that repeat while held.
var repeatKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyNumpad8, "8"},
	{ebiten.KeyNumpad2, "2"},
	{ebiten.KeyNumpad4, "4"},
	{ebiten.KeyNumpad6, "6"},
}

// pressKeys fire once per press.
var pressKeys = []struct {
	key   ebiten.Key
	code  string
	shift bool
}{
	{ebiten.KeyPeriod, ">", true},
	{ebiten.KeyPeriod, ".", false},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyNumpad5, "5", false},
	{ebiten.KeyT, "t", false},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyNumpadEnter, "enter", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyF8, "f8", false},
	{ebiten.KeyF9, "f9", false},
	{ebiten.KeySlash, "?", true},
	{ebiten.KeyEqual, "=", false},
	{ebiten.KeyNumpadAdd, "+", false},
	{ebiten.KeyMinus, "-", false},
	{ebiten.KeyNumpadSubtract, "-", false},
}

// shouldRepeatKey reports whether a held key should fire this tick: on the
// first press, then every keyRepeatInterval after keyRepeatInitialDelay.
func (g *Game) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()
	state, exists := g.keyRepeat[code]

	if !pressed {
		if exists {
			delete(g.keyRepeat, code)
		}
		return false
	}
	if !exists {
		g.keyRepeat[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		g.keyRepeat[code] = state
		return true
	}
	return false
}

// checkInput returns the intent for this tick's keyboard state.
func (g *Game) checkInput() engineinput.Intent {
	for _, k := range repeatKeys {
		if g.shouldRepeatKey(ebiten.IsKeyPressed(k.key), k.code) {
			return g.resolve(k.code)
		}
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range pressKeys {
		if k.shift != shift && (k.key == ebiten.KeyPeriod || k.key == ebiten.KeySlash) {
			continue
		}
		if inpututil.IsKeyJustPressed(k.key) {
			return g.resolve(k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func (g *Game) resolve(code string) engineinput.Intent {
	return engineinput.Resolve(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	})
}

// handleZoom changes the tile size for zoom intents and reports whether the
// intent was consumed.
func (g *Game) handleZoom(in engineinput.Intent) bool {
	switch in.Action {
	case engineinput.ActionZoomIn:
		if g.tileSize < maxTileSize {
			g.tileSize += tileSizeStep
		}
	case engineinput.ActionZoomOut:
		if g.tileSize > minTileSize {
			g.tileSize -= tileSizeStep
		}
	default:
		return false
	}
	g.recalculateViewport()
	return true
}
