package world

// ApplyRoom carves the open interior of room (x1+1..=x2, y1+1..=y2) to
// Floor. The perimeter is left untouched so neighbouring rooms keep a wall.
func ApplyRoom(m *Map, room Rect) {
	room.ForEachInterior(func(p Point) {
		m.SetTile(p.X, p.Y, Floor)
	})
}

// ApplyHorizontalTunnel carves Floor from min(x1,x2) to max(x1,x2) on row y.
// Cells outside the map are skipped.
func ApplyHorizontalTunnel(m *Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.SetTile(x, y, Floor)
	}
}

// ApplyVerticalTunnel carves Floor from min(y1,y2) to max(y1,y2) on column x.
// Cells outside the map are skipped.
func ApplyVerticalTunnel(m *Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.SetTile(x, y, Floor)
	}
}
