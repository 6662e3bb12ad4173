package world

// Rect is an axis-aligned room footprint. The perimeter (x1, y1, x2, y2 edges)
// is left as wall when the room is stamped; only the interior is carved.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle from a top-left corner and a size.
// No validation is done; callers pass w, h > 0.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersect returns true if r and other overlap. Touching edges count as
// overlapping, so accepted rooms always keep a wall between them.
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the midpoint of the rectangle (floor division).
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns x2 - x1
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns y2 - y1
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Contains reports whether p lies in the carved interior of the room.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X1 && p.X <= r.X2 && p.Y > r.Y1 && p.Y <= r.Y2
}

// ForEachInterior calls fn for every interior cell, row by row.
func (r Rect) ForEachInterior(fn func(p Point)) {
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}
