package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Reachable collects every walkable point reachable from start through the
// four cardinal directions using BFS. A non-walkable start yields an empty set.
func Reachable(m *Map, start Point) PointSet {
	visited := mapset.New[Point]()
	if !m.IsWalkable(start.X, start.Y) {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir)
			if m.IsWalkable(next.X, next.Y) && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return visited
}
