package world

import (
	"errors"
	"fmt"
)

// Validation errors returned by Map.Validate
var (
	ErrInvalidDimensions = errors.New("map has invalid dimensions")
	ErrCorruptLayers     = errors.New("map layers do not match its dimensions")
	ErrNoDownStairs      = errors.New("map has no down stairs")
)

// Map is a single dungeon level: a flat grid of tiles indexed by
// y*Width + x, plus parallel reveal and visibility bits.
type Map struct {
	Width  int
	Height int
	Depth  int

	Tiles    []TileType
	Revealed []bool
	Visible  []bool
}

// NewMap creates a map of the given size with every tile set to Wall.
func NewMap(depth, width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic("Map dimensions must be positive")
	}

	count := width * height
	m := &Map{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Tiles:    make([]TileType, count),
		Revealed: make([]bool, count),
		Visible:  make([]bool, count),
	}
	for i := range m.Tiles {
		m.Tiles[i] = Wall
	}
	return m
}

// TileCount returns Width*Height
func (m *Map) TileCount() int {
	return len(m.Tiles)
}

// XYIdx converts a coordinate to a tile index. The result is only
// meaningful when InBounds(x, y) holds.
func (m *Map) XYIdx(x, y int) int {
	return y*m.Width + x
}

// IdxXY converts a tile index back to a coordinate.
func (m *Map) IdxXY(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

// InBounds checks if x, y is within [0,Width)x[0,Height)
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsPlayablePosition checks if a position is inside the 1-tile border
func (m *Map) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < m.Width-1 && y >= 1 && y < m.Height-1
}

// Tile returns the tile at x, y. Out of bounds reads as Wall.
func (m *Map) Tile(x, y int) TileType {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.Tiles[m.XYIdx(x, y)]
}

// SetTile writes a tile. Writes outside the map are dropped and reported
// with a false return.
func (m *Map) SetTile(x, y int, t TileType) bool {
	if !m.InBounds(x, y) {
		return false
	}
	idx := m.XYIdx(x, y)
	if idx < 0 || idx >= m.TileCount() {
		return false
	}
	m.Tiles[idx] = t
	return true
}

// IsWalkable returns true if x, y is inside the map and walkable
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[m.XYIdx(x, y)].IsWalkable()
}

// IsRevealedWall reports whether x, y is a wall the player has seen.
// Coordinates that fall outside the map, or whose index is outside the
// tile range, never count.
func (m *Map) IsRevealedWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	idx := m.XYIdx(x, y)
	if idx < 0 || idx >= m.TileCount() {
		return false
	}
	return m.Tiles[idx] == Wall && m.Revealed[idx]
}

// IsRevealed returns the reveal bit at x, y (false outside the map)
func (m *Map) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.XYIdx(x, y)]
}

// IsVisible returns the visibility bit at x, y (false outside the map)
func (m *Map) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.XYIdx(x, y)]
}

// Reveal marks p as both visible and revealed.
func (m *Map) Reveal(p Point) {
	if !m.InBounds(p.X, p.Y) {
		return
	}
	idx := m.XYIdx(p.X, p.Y)
	m.Visible[idx] = true
	m.Revealed[idx] = true
}

// RevealAll marks every tile as revealed (magic mapping / debugging)
func (m *Map) RevealAll() {
	for i := range m.Revealed {
		m.Revealed[i] = true
	}
}

// ClearVisible resets every visibility bit; reveal bits are kept.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// ForEachTile iterates over all tiles in row-major order
func (m *Map) ForEachTile(fn func(x, y int, t TileType)) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fn(x, y, m.Tiles[m.XYIdx(x, y)])
		}
	}
}

// Find returns the first point holding tile t, scanning row by row.
func (m *Map) Find(t TileType) (Point, bool) {
	for idx, tile := range m.Tiles {
		if tile == t {
			x, y := m.IdxXY(idx)
			return Point{X: x, Y: y}, true
		}
	}
	return Point{}, false
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := &Map{
		Width:    m.Width,
		Height:   m.Height,
		Depth:    m.Depth,
		Tiles:    make([]TileType, len(m.Tiles)),
		Revealed: make([]bool, len(m.Revealed)),
		Visible:  make([]bool, len(m.Visible)),
	}
	copy(c.Tiles, m.Tiles)
	copy(c.Revealed, m.Revealed)
	copy(c.Visible, m.Visible)
	return c
}

// Validate checks the map for common issues after generation.
func (m *Map) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return ErrInvalidDimensions
	}
	count := m.Width * m.Height
	if len(m.Tiles) != count || len(m.Revealed) != count || len(m.Visible) != count {
		return fmt.Errorf("%w: want %d tiles, have %d/%d/%d", ErrCorruptLayers,
			count, len(m.Tiles), len(m.Revealed), len(m.Visible))
	}
	if _, ok := m.Find(DownStairs); !ok {
		return ErrNoDownStairs
	}
	return nil
}
