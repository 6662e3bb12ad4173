package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/spawner"
	"malefactor/pkg/game/state"
)

// smallLevel is a 6x4 map with one room (1..4, 1..2), stairs at (4,2),
// the player at (1,1) and a goblin at (2,1).
func smallLevel() *state.Level {
	m := world.NewMap(3, 6, 4)
	room := world.NewRect(0, 0, 4, 2)
	world.ApplyRoom(m, room)
	m.SetTile(4, 2, world.DownStairs)

	store := ecs.NewWorld()
	player := spawner.Player(store, world.Pt(1, 1), world.FOVRadius)
	spawner.Spawn(store, spawner.Table[0], world.Pt(2, 1))

	return &state.Level{Depth: 3, BuilderName: "Simple", Map: m, Store: store, Player: player, Rooms: []world.Rect{room}}
}

func TestDumpFullMap(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, smallLevel(), 42); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"depth: 3", "seed: 42", "builder: Simple", "player: 1,1", "stairs: 4,2", "rooms: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}

	full := out[strings.Index(out, "--- Map (fully revealed) ---"):]
	lines := strings.Split(full, "\n")[1:5]
	want := []string{
		"######",
		"#@m..#",
		"#...>#",
		"######",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if !strings.Contains(out, `kind: monster name: "Goblin" x: 2 y: 1`) {
		t.Errorf("entity list missing goblin:\n%s", out)
	}
}

func TestDumpRevealedOnly(t *testing.T) {
	l := smallLevel()
	l.Map.Reveal(world.Pt(1, 1))

	var buf bytes.Buffer
	if err := Dump(&buf, l, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	section := out[strings.Index(out, "--- Map (revealed tiles only) ---"):]
	row := strings.Split(section, "\n")[2]
	if row != " @    " {
		t.Errorf("revealed row = %q, want %q", row, " @    ")
	}
}

func TestDumpNoLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, nil, 0); err == nil {
		t.Error("expected error for nil level")
	}
}

func TestDumpToFile(t *testing.T) {
	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	path, err := DumpToFile(smallLevel(), 1)
	if err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "=== MAP DUMP DEBUG") {
		t.Errorf("file starts with %q", string(data[:20]))
	}
}
