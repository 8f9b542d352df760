package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the unit offset for this direction. North is towards y = 0.
func (d Direction) Delta() Coord {
	switch d {
	case North:
		return Up
	case East:
		return Right
	case South:
		return Down
	case West:
		return Left
	default:
		return Zero
	}
}

// Without returns the directions in dirs other than the excluded one, keeping order.
func Without(dirs []Direction, excluded Direction) []Direction {
	out := make([]Direction, 0, len(dirs))
	for _, d := range dirs {
		if d != excluded {
			out = append(out, d)
		}
	}
	return out
}
