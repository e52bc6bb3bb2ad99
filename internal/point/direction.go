package point

import "math/rand"

// Direction is one of the four compass directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in clockwise order starting from North.
var Directions = [4]Direction{North, East, South, West}

// RandomDirection picks a direction uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Invert returns the opposite direction.
func (d Direction) Invert() Direction {
	return (d + 2) % 4
}

// RotateCW returns the direction 90 degrees clockwise.
func (d Direction) RotateCW() Direction {
	return (d + 1) % 4
}

// RotateCCW returns the direction 90 degrees counter-clockwise.
func (d Direction) RotateCCW() Direction {
	return (d + 3) % 4
}

// Delta returns the unit offset of one step in this direction.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{Y: -1}
	case East:
		return Point{X: 1}
	case South:
		return Point{Y: 1}
	case West:
		return Point{X: -1}
	default:
		return Point{}
	}
}

// TryApply steps from p in this direction. It fails only when the step would
// leave the non-negative quadrant; upper bounds are the caller's concern.
func (d Direction) TryApply(p Point) (Point, bool) {
	next := p.Add(d.Delta())
	if next.X < 0 || next.Y < 0 {
		return p, false
	}
	return next, true
}

// DirectionOf returns the direction matching a unit step, if there is one.
func DirectionOf(delta Point) (Direction, bool) {
	for _, d := range Directions {
		if d.Delta() == delta {
			return d, true
		}
	}
	return North, false
}
