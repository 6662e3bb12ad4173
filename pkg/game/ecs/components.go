package ecs

import (
	"image/color"

	"malefactor/pkg/engine/world"
)

// Component IDs
const (
	PositionID ComponentID = iota
	RenderableID
	HiddenID
	ViewshedID
	NameID
	PlayerID
	MonsterID
	ItemID
	BlocksTileID
)

// Position stores an entity's map coordinate
type Position struct {
	X, Y int
}

// Point returns the position as a world.Point
func (p *Position) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Renderable stores how an entity is drawn. Entities with a higher
// RenderOrder are drawn first, so lower values end up on top.
type Renderable struct {
	Glyph       rune
	FG          color.RGBA
	BG          color.RGBA
	RenderOrder int
}

// Hidden marks an entity that must not be drawn (traps, invisible monsters)
type Hidden struct{}

// Viewshed is the set of points an entity can currently see
type Viewshed struct {
	Visible world.PointSet
	Range   int
	Dirty   bool
}

// NewViewshed creates an empty, dirty viewshed with the given range
func NewViewshed(rangeTiles int) *Viewshed {
	return &Viewshed{Range: rangeTiles, Dirty: true}
}

// Name stores an entity's display name
type Name struct {
	Name string
}

// Player marks the player-controlled entity
type Player struct{}

// Monster marks hostile creatures
type Monster struct{}

// Item marks things that can be picked up
type Item struct{}

// BlocksTile marks entities that occupy their tile for movement
type BlocksTile struct{}
