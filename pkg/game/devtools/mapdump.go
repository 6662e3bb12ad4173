// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile (no entity overlay).
// If revealedOnly is true, unrevealed tiles return ' '.
func tileSymbol(m *world.Map, x, y int, revealedOnly bool) rune {
	if revealedOnly && !m.IsRevealed(x, y) {
		return ' '
	}
	switch m.Tile(x, y) {
	case world.Floor:
		return '.'
	case world.DownStairs:
		return '>'
	default:
		return '#'
	}
}

// writeMapGrid writes the map with entity glyphs on top.
func writeMapGrid(w io.Writer, l *state.Level, revealedOnly bool) {
	overlay := make(map[world.Point]rune)
	for _, d := range l.Store.Renderables() {
		p := d.Position.Point()
		if prev, ok := overlay[p]; ok && prev == '@' {
			continue
		}
		if l.Store.HasComponent(d.Entity, ecs.PlayerID) {
			overlay[p] = '@'
			continue
		}
		overlay[p] = entitySymbol(l.Store, d.Entity)
	}

	for y := 0; y < l.Map.Height; y++ {
		for x := 0; x < l.Map.Width; x++ {
			r := tileSymbol(l.Map, x, y, revealedOnly)
			if e, ok := overlay[world.Pt(x, y)]; ok && r != ' ' {
				r = e
			}
			fmt.Fprintf(w, "%c", r)
		}
		fmt.Fprintln(w)
	}
}

func entitySymbol(store *ecs.World, id ecs.EntityID) rune {
	if store.HasComponent(id, ecs.MonsterID) {
		return 'm'
	}
	return 'i'
}

// Dump writes a debug dump of l: metadata, legend, the revealed-only map,
// the full map, rooms and entities. The format is plain key: value
// sections so it diffs well between seeds.
func Dump(w io.Writer, l *state.Level, seed int64) error {
	if l == nil || l.Map == nil {
		return fmt.Errorf("no level")
	}
	bw := bufio.NewWriter(w)

	start := l.PlayerPos()
	stairs, hasStairs := l.Map.Find(world.DownStairs)

	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (level layout, rooms, entities) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "depth: %d\n", l.Depth)
	fmt.Fprintf(bw, "seed: %d\n", seed)
	fmt.Fprintf(bw, "builder: %s\n", l.BuilderName)
	fmt.Fprintf(bw, "width: %d\n", l.Map.Width)
	fmt.Fprintf(bw, "height: %d\n", l.Map.Height)
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(bw, "player: %d,%d\n", start.X, start.Y)
	if hasStairs {
		fmt.Fprintf(bw, "stairs: %d,%d\n", stairs.X, stairs.Y)
	} else {
		fmt.Fprintln(bw, "stairs: none")
	}
	fmt.Fprintf(bw, "rooms: %d\n", len(l.Rooms))
	fmt.Fprintf(bw, "entities: %d\n", l.Store.Len())
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintln(bw, ". = floor  # = wall  > = stairs down  @ = player  m = monster  i = item  (space) = unrevealed")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (revealed tiles only) ---")
	writeMapGrid(bw, l, true)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (fully revealed) ---")
	writeMapGrid(bw, l, false)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Rooms ---")
	for i, r := range l.Rooms {
		c := r.Center()
		fmt.Fprintf(bw, "  %d: x1: %d y1: %d x2: %d y2: %d center: %d,%d\n", i, r.X1, r.Y1, r.X2, r.Y2, c.X, c.Y)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Entities ---")
	for _, id := range l.Store.EntitiesWith(ecs.PositionID) {
		pos, _ := l.Store.Position(id)
		kind := "item"
		switch {
		case l.Store.HasComponent(id, ecs.PlayerID):
			kind = "player"
		case l.Store.HasComponent(id, ecs.MonsterID):
			kind = "monster"
		}
		fmt.Fprintf(bw, "  id: %d kind: %s name: %q x: %d y: %d\n", id, kind, l.Store.Name(id), pos.X, pos.Y)
	}

	return bw.Flush()
}

// DumpToFile writes Dump output to map.txt in the working directory and
// returns the absolute path.
func DumpToFile(l *state.Level, seed int64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Dump(f, l, seed); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
