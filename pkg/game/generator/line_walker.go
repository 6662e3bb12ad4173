package generator

import (
	"malefactor/pkg/engine/world"
)

// LineWalkerMapBuilder generates maps by walking corridors in random
// directions from the map centre, branching as it goes. Every walk ends in a
// small room, which is where the spawner puts things.
type LineWalkerMapBuilder struct {
	base
}

// NewLineWalkerMapBuilder creates a walker builder for a width x height level.
func NewLineWalkerMapBuilder(depth, width, height int, rng RNG) *LineWalkerMapBuilder {
	return &LineWalkerMapBuilder{base: newBase(depth, width, height, rng)}
}

// Name returns the name of this generator
func (b *LineWalkerMapBuilder) Name() string {
	return "Line Walker"
}

// BuildMap walks the four main corridors from the centre plus a few extra
// ones at depth. The west corridor's end room holds the stairs.
func (b *LineWalkerMapBuilder) BuildMap() error {
	b.reset()

	center := world.Pt(b.width/2, b.height/2)
	if !b.m.IsPlayablePosition(center.X, center.Y) {
		return b.finish(b.Name())
	}
	b.addRoom(center)

	// Deeper levels branch more, capped at 65%
	branchPct := 25 + b.depth*3
	if branchPct > 65 {
		branchPct = 65
	}

	// Level 1: 2-4, Level 10: 4-9
	minDist := 2 + (b.depth / 4)
	maxDist := 4 + (b.depth / 2)

	for _, dir := range []world.Direction{world.North, world.East, world.South} {
		end := b.walk(center, dir, branchPct, minDist, maxDist)
		b.addRoom(end)
	}
	exit := b.walk(center, world.West, branchPct, minDist, maxDist)

	// Extra corridors at depth, each starting on floor that is already
	// carved so the level stays connected
	for i := 0; i < b.depth/2; i++ {
		p := world.Pt(center.X+b.rng.Intn(5)-2, center.Y+b.rng.Intn(5)-2)
		if b.m.IsPlayablePosition(p.X, p.Y) && b.m.IsWalkable(p.X, p.Y) {
			end := b.walk(p, b.randomDirection(), branchPct, minDist, maxDist)
			b.addRoom(end)
		}
	}

	b.addRoom(exit)
	return b.finish(b.Name())
}

// randomDirection returns a random cardinal direction
func (b *LineWalkerMapBuilder) randomDirection() world.Direction {
	return world.Direction(b.rng.Intn(4))
}

// walk carves a corridor from p in dir and returns where it stopped.
// Only the playable area (inside the perimeter) is carved.
func (b *LineWalkerMapBuilder) walk(p world.Point, dir world.Direction, branchPct, minDist, maxDist int) world.Point {
	if !dir.IsValid() {
		dir = b.randomDirection()
	}

	distance := minDist + b.rng.Intn(maxDist-minDist+1)
	for segment := 0; segment < distance; segment++ {
		b.carve(p)

		next := p.Step(dir)
		if !b.m.IsPlayablePosition(next.X, next.Y) {
			return p
		}

		if b.rng.Intn(100) < branchPct {
			end := b.walk(p, b.randomDirection(), branchPct-10, minDist, maxDist)
			b.addRoom(end)
		}
		p = next
	}

	b.carve(p)
	return p
}

func (b *LineWalkerMapBuilder) carve(p world.Point) {
	if b.m.IsPlayablePosition(p.X, p.Y) {
		b.m.SetTile(p.X, p.Y, world.Floor)
	}
}

// addRoom records a 2x2 room whose centre is p. The room is only kept when
// its whole interior is playable.
func (b *LineWalkerMapBuilder) addRoom(p world.Point) {
	room := world.NewRect(p.X-1, p.Y-1, 2, 2)
	if !b.m.IsPlayablePosition(room.X1+1, room.Y1+1) || !b.m.IsPlayablePosition(room.X2, room.Y2) {
		return
	}
	world.ApplyRoom(b.m, room)
	b.rooms = append(b.rooms, room)
}
