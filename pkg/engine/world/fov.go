package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FOVRadius is the default field of view radius (Chebyshev distance).
const FOVRadius = 8

// PointSet is a set of map points, used for viewsheds and flood fills.
type PointSet = mapset.Set[Point]

// CalculateFOV returns the points visible from origin within radius.
// The shape is a Chebyshev square traced with Bresenham lines; walls are
// visible themselves but block everything behind them.
func CalculateFOV(m *Map, origin Point, radius int) PointSet {
	visible := mapset.New[Point]()
	if m == nil || !m.InBounds(origin.X, origin.Y) {
		return visible
	}
	visible.Put(origin)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if chebyshevDist(dx, dy) > radius {
				continue
			}
			x, y := origin.X+dx, origin.Y+dy
			if !m.InBounds(x, y) {
				continue
			}
			if hasLineOfSight(m, origin.X, origin.Y, x, y) {
				visible.Put(Point{X: x, Y: y})
			}
		}
	}
	return visible
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dx, dy).
func chebyshevDist(dx, dy int) int {
	return max(abs(dx), abs(dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// hasLineOfSight returns true if nothing between (x0,y0) and (x1,y1) blocks
// sight. The end point itself may be a wall.
func hasLineOfSight(m *Map, x0, y0, x1, y1 int) bool {
	dx, dy := x1-x0, y1-y0
	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)
	stepX, stepY := sign(dx), sign(dy)
	x, y := x0, y0

	if absDx >= absDy {
		err := 2*absDy - absDx
		for x != x1 {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy
			if x == x1 && y == y1 {
				return true
			}
			if m.Tile(x, y).BlocksSight() {
				return false
			}
		}
	} else {
		err := 2*absDx - absDy
		for y != y1 {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx
			if x == x1 && y == y1 {
				return true
			}
			if m.Tile(x, y).BlocksSight() {
				return false
			}
		}
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ApplyFOV replaces the map's visible layer with the given points and
// marks each of them revealed.
func ApplyFOV(m *Map, visible PointSet) {
	m.ClearVisible()
	visible.Each(func(p Point) {
		m.Reveal(p)
	})
}
