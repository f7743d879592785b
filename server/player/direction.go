package player

// Direction selects which way a step goes. It has no magnitude.
type Direction int

const (
	West Direction = iota
	East
)

func (d Direction) String() string {
	switch d {
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// ParseDirection maps a wire or key name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "west", "left":
		return West, true
	case "east", "right":
		return East, true
	default:
		return 0, false
	}
}
