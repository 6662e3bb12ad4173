// Package spawner populates rooms with monsters and items.
package spawner

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"malefactor/pkg/engine/dice"
	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/renderer"
)

// MaxSpawnsPerRoom caps the base roll before depth is added.
const MaxSpawnsPerRoom = 4

// maxTriesPerSpawn bounds the search for a free tile in a crowded room.
const maxTriesPerSpawn = 50

// Render orders: lower draws on top.
const (
	PlayerRenderOrder  = 0
	MonsterRenderOrder = 1
	ItemRenderOrder    = 2
)

// Kind tells monsters from items in the spawn table.
type Kind int

const (
	KindMonster Kind = iota
	KindItem
)

// Entry is one row of the spawn table.
type Entry struct {
	Name  string
	Kind  Kind
	Glyph rune
	FG    color.RGBA

	// Weight returns the relative chance of this entry at depth.
	Weight func(depth int) int
}

// Table is the default spawn table. Deeper levels bring more orcs and
// fireball scrolls.
var Table = []Entry{
	{Name: "Goblin", Kind: KindMonster, Glyph: 'g', FG: renderer.Palette.Red, Weight: flat(10)},
	{Name: "Orc", Kind: KindMonster, Glyph: 'o', FG: renderer.Palette.Red, Weight: func(depth int) int { return 1 + depth }},
	{Name: "Health Potion", Kind: KindItem, Glyph: '¡', FG: renderer.Palette.Magenta, Weight: flat(7)},
	{Name: "Fireball Scroll", Kind: KindItem, Glyph: ')', FG: renderer.Palette.Orange, Weight: func(depth int) int { return 2 + depth }},
	{Name: "Magic Missile Scroll", Kind: KindItem, Glyph: ')', FG: renderer.Palette.Cyan, Weight: flat(4)},
}

func flat(w int) func(int) int {
	return func(int) int { return w }
}

// SpawnCount returns how many entities a room gets at depth:
// 1d(MaxSpawnsPerRoom+3) + depth - 1 - 3, never below zero.
func SpawnCount(rng dice.RNG, depth int) int {
	n := dice.Roll(rng, 1, MaxSpawnsPerRoom+3) + (depth - 1) - 3
	if n < 0 {
		return 0
	}
	return n
}

// SpawnRoom fills the interior of room with a depth-scaled number of
// entities, never two on the same tile. It returns the created entities.
func SpawnRoom(store *ecs.World, room world.Rect, depth int, rng dice.RNG) []ecs.EntityID {
	count := SpawnCount(rng, depth)
	points := spawnPoints(room, count, rng)

	weights := make([]int, len(Table))
	for i, e := range Table {
		weights[i] = e.Weight(depth)
	}

	var spawned []ecs.EntityID
	for _, p := range points {
		i := dice.Weighted(rng, weights)
		if i < 0 {
			continue
		}
		spawned = append(spawned, Spawn(store, Table[i], p))
	}
	return spawned
}

// spawnPoints picks up to count distinct interior points of room. It may
// return fewer when the random source keeps landing on taken tiles.
func spawnPoints(room world.Rect, count int, rng dice.RNG) []world.Point {
	w, h := room.Width(), room.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	if count > w*h {
		count = w * h
	}

	taken := mapset.New[world.Point]()
	points := make([]world.Point, 0, count)
	for tries := 0; len(points) < count && tries < count*maxTriesPerSpawn; tries++ {
		p := world.Pt(room.X1+dice.Roll(rng, 1, w), room.Y1+dice.Roll(rng, 1, h))
		if taken.Has(p) {
			continue
		}
		taken.Put(p)
		points = append(points, p)
	}
	return points
}

// Spawn creates the entity described by e at p.
func Spawn(store *ecs.World, e Entry, p world.Point) ecs.EntityID {
	id := store.CreateEntity()
	store.AddComponent(id, ecs.PositionID, &ecs.Position{X: p.X, Y: p.Y})
	store.AddComponent(id, ecs.NameID, &ecs.Name{Name: e.Name})

	switch e.Kind {
	case KindMonster:
		store.AddComponent(id, ecs.RenderableID, &ecs.Renderable{
			Glyph: e.Glyph, FG: e.FG, BG: renderer.Palette.Black, RenderOrder: MonsterRenderOrder,
		})
		store.AddComponent(id, ecs.MonsterID, &ecs.Monster{})
		store.AddComponent(id, ecs.BlocksTileID, &ecs.BlocksTile{})
		store.AddComponent(id, ecs.ViewshedID, ecs.NewViewshed(world.FOVRadius))
	default:
		store.AddComponent(id, ecs.RenderableID, &ecs.Renderable{
			Glyph: e.Glyph, FG: e.FG, BG: renderer.Palette.Black, RenderOrder: ItemRenderOrder,
		})
		store.AddComponent(id, ecs.ItemID, &ecs.Item{})
	}
	return id
}

// Player creates the player entity at p.
func Player(store *ecs.World, p world.Point, fovRadius int) ecs.EntityID {
	id := store.CreateEntity()
	store.AddComponent(id, ecs.PositionID, &ecs.Position{X: p.X, Y: p.Y})
	store.AddComponent(id, ecs.RenderableID, &ecs.Renderable{
		Glyph: '@', FG: renderer.Palette.Yellow, BG: renderer.Palette.Black, RenderOrder: PlayerRenderOrder,
	})
	store.AddComponent(id, ecs.PlayerID, &ecs.Player{})
	store.AddComponent(id, ecs.NameID, &ecs.Name{Name: "Player"})
	store.AddComponent(id, ecs.ViewshedID, ecs.NewViewshed(fovRadius))
	return id
}
