package world

import "math"

// Direction represents a compass direction
type Direction int

// Direction constants, clockwise from north
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// directionCount is the number of compass directions
const directionCount = 8

// AllDirections returns the eight compass directions in enumeration order,
// which is also the tie-break order for anything choosing between them.
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// CardinalDirections returns N, E, S, W for 4-connected traversal
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + directionCount/2) % directionCount
}

// Delta returns the column and row offsets for this direction.
// North is -1 row (towards y = 0).
func (d Direction) Delta() (colDelta, rowDelta int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Unit returns the direction as a unit vector in world space (x = col, y = row).
func (d Direction) Unit() (x, y float64) {
	dc, dr := d.Delta()
	if dc == 0 && dr == 0 {
		return 0, 0
	}
	l := math.Hypot(float64(dc), float64(dr))
	return float64(dc) / l, float64(dr) / l
}
