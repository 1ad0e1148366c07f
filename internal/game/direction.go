package game

import (
	"fmt"
	"math"
)

// Direction is one of the four discrete inputs.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions in clockwise order, starting at Up. A direction's index is its
// quarter turn count, which the spinner relies on.
var Directions = [...]Direction{Up, Right, Down, Left}

var directionNames = [...]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Degrees is the clockwise rotation from Up.
func (d Direction) Degrees() float64 {
	return float64(d) * 90
}

// DirectionFromDegrees snaps an angle to the nearest quarter turn.
func DirectionFromDegrees(deg float64) Direction {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return Direction(int(math.Round(deg/90)) % 4)
}

func ParseDirection(s string) (Direction, error) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if nil != err {
		return err
	}
	*d = v
	return nil
}

// DirectionSet is a small bitset over the four directions.
type DirectionSet uint8

func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<d
}

func (s DirectionSet) Full() bool {
	return s == 0xf
}
