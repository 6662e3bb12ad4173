package generator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"malefactor/pkg/engine/dice"
	"malefactor/pkg/engine/world"
)

// twoRooms scripts two accepted rooms on a 40x30 map, A = {5,5,11,11}
// (centre 8,8) and B = {20,15,26,21} (centre 23,18), followed by the given
// corridor coin flip. Every later attempt lands on A and is rejected.
func twoRooms(flip int) *scriptedRNG {
	return &scriptedRNG{values: []int{
		0, 0, 4, 4, // A
		0, 0, 19, 14, // B
		flip,
	}}
}

func TestSimpleHorizontalFirstCorridor(t *testing.T) {
	b := NewSimpleMapBuilder(1, 40, 30, twoRooms(0))
	if err := b.BuildMap(); err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}
	m := b.Map()

	want := []world.Rect{{X1: 5, Y1: 5, X2: 11, Y2: 11}, {X1: 20, Y1: 15, X2: 26, Y2: 21}}
	if !reflect.DeepEqual(b.Rooms(), want) {
		t.Fatalf("Rooms() = %s, want %s", spew.Sdump(b.Rooms()), spew.Sdump(want))
	}

	// Horizontal along y=8 from x=8 to 23, then down x=23.
	for x := 8; x <= 23; x++ {
		if !m.IsWalkable(x, 8) {
			t.Errorf("(%d,8) not carved", x)
		}
	}
	for y := 8; y <= 18; y++ {
		if !m.IsWalkable(23, y) {
			t.Errorf("(23,%d) not carved", y)
		}
	}
	if m.Tile(8, 14) != world.Wall {
		t.Errorf("(8,14) = %v, want Wall", m.Tile(8, 14))
	}

	if got := b.StartingPosition(); got != world.Pt(8, 8) {
		t.Errorf("StartingPosition() = %v, want (8,8)", got)
	}
	if m.Tile(23, 18) != world.DownStairs {
		t.Errorf("(23,18) = %v, want DownStairs", m.Tile(23, 18))
	}
}

func TestSimpleVerticalFirstCorridor(t *testing.T) {
	for _, flip := range []int{1, 2} {
		b := NewSimpleMapBuilder(1, 40, 30, twoRooms(flip))
		if err := b.BuildMap(); err != nil {
			t.Fatalf("BuildMap() error = %v", err)
		}
		m := b.Map()

		// Down x=8 from y=8 to 18, then along y=18.
		for y := 8; y <= 18; y++ {
			if !m.IsWalkable(8, y) {
				t.Errorf("flip %d: (8,%d) not carved", flip, y)
			}
		}
		for x := 8; x <= 23; x++ {
			if !m.IsWalkable(x, 18) {
				t.Errorf("flip %d: (%d,18) not carved", flip, x)
			}
		}
		if m.Tile(15, 8) != world.Wall {
			t.Errorf("flip %d: (15,8) = %v, want Wall", flip, m.Tile(15, 8))
		}
	}
}

func TestSimpleDrawOrder(t *testing.T) {
	rng := twoRooms(0)
	b := NewSimpleMapBuilder(1, 40, 30, rng)
	if err := b.BuildMap(); err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}

	// w, h, x, y per attempt; the coin flip only follows an accepted room
	// that is not the first.
	attempt := []int{4, 4, 32, 22}
	var want []int
	want = append(want, attempt...)
	want = append(want, attempt...)
	want = append(want, 3)
	for i := 2; i < MaxRooms; i++ {
		want = append(want, attempt...)
	}
	if !reflect.DeepEqual(rng.calls, want) {
		t.Errorf("Intn calls = %v\nwant %v", rng.calls, want)
	}
}

func TestSimpleRejectsTouchingRooms(t *testing.T) {
	// B = {11,5,17,11} shares A's right edge.
	rng := &scriptedRNG{values: []int{0, 0, 4, 4, 0, 0, 10, 4}}
	b := NewSimpleMapBuilder(1, 40, 30, rng)
	if err := b.BuildMap(); err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}
	if len(b.Rooms()) != 1 {
		t.Errorf("len(Rooms()) = %d, want 1: %s", len(b.Rooms()), spew.Sdump(b.Rooms()))
	}
	// With a single room start and stairs share its centre.
	if b.Map().Tile(8, 8) != world.DownStairs || b.StartingPosition() != world.Pt(8, 8) {
		t.Errorf("single room: tile %v, start %v", b.Map().Tile(8, 8), b.StartingPosition())
	}
}

func TestSimpleExhaustedOnTinyMap(t *testing.T) {
	rng := &scriptedRNG{}
	b := NewSimpleMapBuilder(3, 8, 8, rng)
	err := b.BuildMap()
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("BuildMap() error = %v, want ErrGenerationExhausted", err)
	}
	// Only w and h are drawn when x has no valid range.
	if len(rng.calls) != 2*MaxRooms {
		t.Errorf("Intn calls = %d, want %d", len(rng.calls), 2*MaxRooms)
	}
	if countWalkable(b.Map()) != 0 {
		t.Error("failed build carved tiles")
	}
}

func TestSimpleDeterministicForSeed(t *testing.T) {
	a := NewSimpleMapBuilder(1, 80, 50, dice.New(1234))
	b := NewSimpleMapBuilder(1, 80, 50, dice.New(1234))
	if err := a.BuildMap(); err != nil {
		t.Fatal(err)
	}
	if err := b.BuildMap(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Rooms(), b.Rooms()) {
		t.Errorf("rooms differ for the same seed:\n%s\n%s", spew.Sdump(a.Rooms()), spew.Sdump(b.Rooms()))
	}
	if !reflect.DeepEqual(a.Map().Tiles, b.Map().Tiles) {
		t.Error("tiles differ for the same seed")
	}
}

func TestSimpleRoomsNeverOverlap(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := NewSimpleMapBuilder(1, 80, 50, dice.New(seed))
		if err := b.BuildMap(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		rooms := b.Rooms()
		if len(rooms) > MaxRooms {
			t.Fatalf("seed %d: %d rooms, max %d", seed, len(rooms), MaxRooms)
		}
		for i := range rooms {
			r := rooms[i]
			if r.Width() < MinRoomSize || r.Width() >= MaxRoomSize || r.Height() < MinRoomSize || r.Height() >= MaxRoomSize {
				t.Errorf("seed %d: room %+v has size %dx%d", seed, r, r.Width(), r.Height())
			}
			if r.X1 < 1 || r.Y1 < 1 || r.X2 > 80-2 || r.Y2 > 50-2 {
				t.Errorf("seed %d: room %+v out of bounds", seed, r)
			}
			for j := i + 1; j < len(rooms); j++ {
				if r.Intersect(rooms[j]) {
					t.Errorf("seed %d: rooms %d and %d overlap\n%s", seed, i, j, spew.Sdump(rooms))
				}
			}
		}
	}
}

func TestSimpleRebuildStartsFresh(t *testing.T) {
	b := NewSimpleMapBuilder(1, 80, 50, dice.New(9))
	if err := b.BuildMap(); err != nil {
		t.Fatal(err)
	}
	first := b.Map()
	if err := b.BuildMap(); err != nil {
		t.Fatal(err)
	}
	if b.Map() == first {
		t.Error("BuildMap reused the previous map")
	}
	if n := countTiles(b.Map(), world.DownStairs); n != 1 {
		t.Errorf("%d down stairs after rebuild, want 1", n)
	}
}
