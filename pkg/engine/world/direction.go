package world

// Direction represents a cardinal direction. The ordering matches the bit
// positions used by wall-junction masks: 1<<North, 1<<South, 1<<West, 1<<East.
type Direction int

// Direction constants
const (
	North Direction = iota
	South
	West
	East
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, South, West, East}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= East
}

// Delta returns the x and y offsets for this direction in map space.
// y grows downwards, so North is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	default:
		return 0, 0
	}
}

// Bit returns the mask bit for this direction, or 0 if it is invalid.
func (d Direction) Bit() uint8 {
	if !d.IsValid() {
		return 0
	}
	return 1 << uint(d)
}
