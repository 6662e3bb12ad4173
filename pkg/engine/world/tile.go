package world

// TileType classifies the terrain of a single map cell.
type TileType int

// Tile types
const (
	Floor TileType = iota
	Wall
	DownStairs
)

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case DownStairs:
		return "DownStairs"
	default:
		return "Unknown"
	}
}

// IsWalkable returns true for tiles an entity may stand on.
func (t TileType) IsWalkable() bool {
	return t == Floor || t == DownStairs
}

// BlocksSight returns true for tiles that stop line of sight.
func (t TileType) BlocksSight() bool {
	return t == Wall
}
