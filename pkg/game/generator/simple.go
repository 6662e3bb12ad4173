package generator

import (
	"malefactor/pkg/engine/dice"
	"malefactor/pkg/engine/world"
)

// Room placement limits for SimpleMapBuilder.
const (
	MaxRooms    = 30
	MinRoomSize = 6
	MaxRoomSize = 10
)

// SimpleMapBuilder scatters non-overlapping rectangular rooms and joins each
// new room to the previously placed one with an L-shaped corridor.
type SimpleMapBuilder struct {
	base
}

// NewSimpleMapBuilder creates a builder for a width x height level.
func NewSimpleMapBuilder(depth, width, height int, rng RNG) *SimpleMapBuilder {
	return &SimpleMapBuilder{base: newBase(depth, width, height, rng)}
}

// Name returns the name of this generator
func (b *SimpleMapBuilder) Name() string {
	return "Simple Map"
}

// BuildMap places up to MaxRooms rooms, then puts the stairs in the last
// room and the start in the first.
func (b *SimpleMapBuilder) BuildMap() error {
	b.reset()
	for i := 0; i < MaxRooms; i++ {
		room, ok := b.randomRoom()
		if !ok {
			continue
		}
		if b.overlaps(room) {
			continue
		}

		world.ApplyRoom(b.m, room)
		if len(b.rooms) > 0 {
			prev := b.rooms[len(b.rooms)-1].Center()
			// Connect to the most recent room, not the closest one.
			b.connect(prev, room.Center(), b.rng.Intn(3) == 0)
		}
		b.rooms = append(b.rooms, room)
	}
	return b.finish(b.Name())
}

// randomRoom draws w, h, x, y in that order. It fails when the map is too
// small for the drawn size.
func (b *SimpleMapBuilder) randomRoom() (world.Rect, bool) {
	w, _ := dice.Range(b.rng, MinRoomSize, MaxRoomSize)
	h, _ := dice.Range(b.rng, MinRoomSize, MaxRoomSize)
	x, ok := dice.Range(b.rng, 1, b.width-w-1)
	if !ok {
		return world.Rect{}, false
	}
	y, ok := dice.Range(b.rng, 1, b.height-h-1)
	if !ok {
		return world.Rect{}, false
	}
	return world.NewRect(x, y, w, h), true
}

func (b *SimpleMapBuilder) overlaps(room world.Rect) bool {
	for _, other := range b.rooms {
		if room.Intersect(other) {
			return true
		}
	}
	return false
}
