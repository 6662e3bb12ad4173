// Package state holds the running game: the current level, the player and
// the message log.
package state

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"malefactor/pkg/engine/dice"
	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/camera"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/generator"
	"malefactor/pkg/game/spawner"
)

// maxMessages is how many log lines are kept.
const maxMessages = 5

// Settings are the knobs a game is started with.
type Settings struct {
	Width, Height int
	Depth         int
	Builder       string // generator kind
	Retries       int    // whole-level attempts per build
	FOVRadius     int
	TargetRange   int
	Render        camera.Options
	RNG           dice.RNG
}

// Level is one generated dungeon floor. It owns its map.
type Level struct {
	Depth       int
	BuilderName string
	Map         *world.Map
	Store       *ecs.World
	Player      ecs.EntityID
	Rooms       []world.Rect
}

// NewLevel takes over the map of a built builder, spawns its entities and
// the player, and computes the first field of view.
func NewLevel(builder generator.MapBuilder, fovRadius int) *Level {
	m := builder.Map()
	store := ecs.NewWorld()
	builder.SpawnEntities(store)
	player := spawner.Player(store, builder.StartingPosition(), fovRadius)
	store.UpdateViewsheds(m)

	return &Level{
		Depth:       m.Depth,
		BuilderName: builder.Name(),
		Map:         m,
		Store:       store,
		Player:      player,
		Rooms:       builder.Rooms(),
	}
}

// PlayerPos returns the player's position.
func (l *Level) PlayerPos() world.Point {
	pos, ok := l.Store.Position(l.Player)
	if !ok {
		return world.Point{}
	}
	return pos.Point()
}

// Game represents the game state
type Game struct {
	Settings Settings
	Level    *Level
	Messages []string

	// Targeting is non-nil while the player picks a target
	Targeting *Targeting

	// ShowHUD draws the status line and messages inside the sink
	ShowHUD bool

	// ShowHelp overlays the key bindings until the next key
	ShowHelp bool

	// DumpLevel writes the level somewhere for debugging and returns where.
	// Nil disables the dump key.
	DumpLevel func(l *Level) (string, error)
}

// Targeting is the state of the ranged targeting overlay.
type Targeting struct {
	Cells  []world.Point
	Cursor world.Point
}

// NewGame generates the first level.
func NewGame(s Settings) (*Game, error) {
	if s.RNG == nil {
		return nil, fmt.Errorf("new game: no random source")
	}
	if s.Retries < 1 {
		s.Retries = 1
	}
	if s.FOVRadius <= 0 {
		s.FOVRadius = world.FOVRadius
	}
	if s.TargetRange <= 0 {
		s.TargetRange = 6
	}

	g := &Game{Settings: s, Messages: make([]string, 0)}
	level, err := g.buildLevel(s.Depth)
	if err != nil {
		return nil, err
	}
	g.Level = level
	g.AddMessage(gotext.Get("WELCOME"))
	return g, nil
}

// buildLevel generates a level at depth without touching the current one.
func (g *Game) buildLevel(depth int) (*Level, error) {
	builder, err := generator.New(g.Settings.Builder, depth, g.Settings.Width, g.Settings.Height, g.Settings.RNG)
	if err != nil {
		return nil, err
	}
	if err := generator.Build(builder, g.Settings.Retries); err != nil {
		return nil, fmt.Errorf("build depth %d: %w", depth, err)
	}
	return NewLevel(builder, g.Settings.FOVRadius), nil
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Status is the one-line summary shown above the messages.
func (g *Game) Status() string {
	p := g.Level.PlayerPos()
	return fmt.Sprintf(gotext.Get("DEPTH_STATUS"), g.Level.Depth, g.Level.BuilderName, p.X, p.Y)
}

// Descend replaces the current level with a new one at depth + 1. On
// failure the current level is kept.
func (g *Game) Descend() error {
	depth := g.Level.Depth + 1
	level, err := g.buildLevel(depth)
	if err != nil {
		logrus.WithError(err).WithField("depth", depth).Warn("descend failed")
		g.AddMessage(gotext.Get("DESCEND_FAILED"))
		return err
	}
	g.Level = level
	g.Targeting = nil
	g.AddMessage(fmt.Sprintf(gotext.Get("DESCEND"), depth))
	return nil
}
