package generator

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"malefactor/pkg/engine/dice"
)

func TestBSPRoomsAreDisjoint(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := NewBSPMapBuilder(1, 80, 50, dice.New(seed))
		if err := b.BuildMap(); err != nil {
			t.Fatalf("seed %d: BuildMap() error = %v", seed, err)
		}
		rooms := b.Rooms()
		if len(rooms) < 2 {
			t.Errorf("seed %d: %d rooms, want at least 2", seed, len(rooms))
		}
		for i := range rooms {
			if rooms[i].Width() < minRoomSize || rooms[i].Height() < minRoomSize {
				t.Errorf("seed %d: room %+v smaller than %d", seed, rooms[i], minRoomSize)
			}
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersect(rooms[j]) {
					t.Errorf("seed %d: rooms %d and %d overlap\n%s", seed, i, j, spew.Sdump(rooms))
				}
			}
		}
	}
}

func TestBSPMoreRoomsDeeper(t *testing.T) {
	shallow, deep := 0, 0
	for seed := int64(1); seed <= 10; seed++ {
		s := NewBSPMapBuilder(1, 80, 50, dice.New(seed))
		d := NewBSPMapBuilder(9, 80, 50, dice.New(seed))
		if err := s.BuildMap(); err != nil {
			t.Fatal(err)
		}
		if err := d.BuildMap(); err != nil {
			t.Fatal(err)
		}
		shallow += len(s.Rooms())
		deep += len(d.Rooms())
	}
	if deep <= shallow {
		t.Errorf("rooms at depth 9 = %d, depth 1 = %d; want more at depth", deep, shallow)
	}
}

func TestBSPSmallestMap(t *testing.T) {
	// 8x8 leaves a 6x6 root: one leaf, one room.
	b := NewBSPMapBuilder(1, 8, 8, dice.New(1))
	if err := b.BuildMap(); err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}
	if len(b.Rooms()) != 1 {
		t.Errorf("len(Rooms()) = %d, want 1", len(b.Rooms()))
	}
	checkLevel(t, b)
}

func TestBSPExhaustedOnTinyMap(t *testing.T) {
	b := NewBSPMapBuilder(1, 7, 20, dice.New(1))
	if err := b.BuildMap(); !errors.Is(err, ErrGenerationExhausted) {
		t.Errorf("BuildMap() error = %v, want ErrGenerationExhausted", err)
	}
}
