package state

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	engineinput "malefactor/pkg/engine/input"
	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/camera"
	"malefactor/pkg/game/ecs"
)

// Handle applies one intent and reports whether the game should quit.
func (g *Game) Handle(in engineinput.Intent) bool {
	if in.Action == engineinput.ActionQuit {
		return true
	}
	if g.ShowHelp {
		g.ShowHelp = false
		return false
	}
	if in.Action == engineinput.ActionHelp {
		g.ShowHelp = true
		return false
	}
	if g.Targeting != nil {
		g.handleTargeting(in)
		return false
	}

	switch in.Action {
	case engineinput.ActionMoveNorth:
		g.MovePlayer(world.North)
	case engineinput.ActionMoveSouth:
		g.MovePlayer(world.South)
	case engineinput.ActionMoveWest:
		g.MovePlayer(world.West)
	case engineinput.ActionMoveEast:
		g.MovePlayer(world.East)
	case engineinput.ActionDescend:
		p := g.Level.PlayerPos()
		if g.Level.Map.Tile(p.X, p.Y) != world.DownStairs {
			g.AddMessage(gotext.Get("NO_STAIRS"))
			break
		}
		_ = g.Descend()
	case engineinput.ActionTarget:
		g.StartTargeting()
	case engineinput.ActionRevealMap:
		g.Level.Map.RevealAll()
		g.AddMessage(gotext.Get("MAP_REVEALED"))
	case engineinput.ActionDumpMap:
		g.dumpLevel()
	}
	return false
}

// MovePlayer steps the player one tile. Walls and blocking entities stop
// the move. It reports whether the player moved.
func (g *Game) MovePlayer(dir world.Direction) bool {
	l := g.Level
	pos, ok := l.Store.Position(l.Player)
	if !ok {
		return false
	}
	dest := pos.Point().Step(dir)
	if !l.Map.IsWalkable(dest.X, dest.Y) {
		g.AddMessage(gotext.Get("BLOCKED"))
		return false
	}
	if l.Store.BlockedAt(dest) {
		name := ""
		if ids := l.entitiesAt(dest, ecs.BlocksTileID); len(ids) > 0 {
			name = l.Store.Name(ids[0])
		}
		g.AddMessage(fmt.Sprintf(gotext.Get("BUMP"), name))
		return false
	}

	pos.X, pos.Y = dest.X, dest.Y
	if vs, ok := l.Store.Viewshed(l.Player); ok {
		vs.Dirty = true
	}
	l.Store.UpdateViewsheds(l.Map)

	for _, id := range l.entitiesAt(dest, ecs.ItemID) {
		g.AddMessage(fmt.Sprintf(gotext.Get("SEE_ITEM"), l.Store.Name(id)))
	}
	logrus.WithFields(logrus.Fields{"x": dest.X, "y": dest.Y}).Debug("player moved")
	return true
}

func (l *Level) entitiesAt(p world.Point, cids ...ecs.ComponentID) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range l.Store.EntitiesWith(append([]ecs.ComponentID{ecs.PositionID}, cids...)...) {
		if pos, ok := l.Store.Position(id); ok && pos.Point() == p {
			out = append(out, id)
		}
	}
	return out
}

func (g *Game) dumpLevel() {
	if g.DumpLevel == nil {
		return
	}
	path, err := g.DumpLevel(g.Level)
	if err != nil {
		logrus.WithError(err).Warn("map dump failed")
		g.AddMessage(gotext.Get("DUMP_FAILED"))
		return
	}
	logrus.WithField("path", path).Info("map dumped")
	g.AddMessage(fmt.Sprintf(gotext.Get("MAP_DUMPED"), path))
}

// StartTargeting enters targeting mode with the cursor on the player.
func (g *Game) StartTargeting() bool {
	l := g.Level
	focus := l.PlayerPos()
	cells, err := camera.AvailableTargets(l.Store, l.Player, focus, g.Settings.TargetRange)
	if err != nil || len(cells) == 0 {
		g.AddMessage(gotext.Get("NO_TARGETS"))
		return false
	}
	g.Targeting = &Targeting{Cells: cells, Cursor: focus}
	g.AddMessage(gotext.Get("SELECT_TARGET"))
	return true
}

func (g *Game) handleTargeting(in engineinput.Intent) {
	t := g.Targeting
	switch in.Action {
	case engineinput.ActionMoveNorth:
		t.Cursor = t.Cursor.Step(world.North)
	case engineinput.ActionMoveSouth:
		t.Cursor = t.Cursor.Step(world.South)
	case engineinput.ActionMoveWest:
		t.Cursor = t.Cursor.Step(world.West)
	case engineinput.ActionMoveEast:
		t.Cursor = t.Cursor.Step(world.East)
	case engineinput.ActionConfirm:
		if !t.Valid() {
			g.AddMessage(gotext.Get("TARGET_INVALID"))
			return
		}
		what := gotext.Get("TARGET_NOTHING")
		if ids := g.Level.entitiesAt(t.Cursor, ecs.NameID); len(ids) > 0 {
			what = g.Level.Store.Name(ids[0])
		}
		g.AddMessage(fmt.Sprintf(gotext.Get("TARGET_SELECTED"), what, t.Cursor.String()))
		g.Targeting = nil
	case engineinput.ActionCancel, engineinput.ActionTarget:
		g.AddMessage(gotext.Get("TARGET_CANCELLED"))
		g.Targeting = nil
	}
}

// Valid reports whether the cursor is on an available cell.
func (t *Targeting) Valid() bool {
	for _, c := range t.Cells {
		if c == t.Cursor {
			return true
		}
	}
	return false
}
