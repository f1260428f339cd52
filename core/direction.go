// File: direction.go
// Role: Cardinal Direction values, modular arithmetic, parsing and endpoint motion.
// Determinism:
//   - Directions() always returns North, East, South, West (ascending value).
// AI-HINT (file):
//   - Direction values are compass degrees; arithmetic is modulo 360.
//   - Advance rotates a robot-frame displacement by the current heading.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the four cardinal exit orientations, in degrees.
type Direction int

// Cardinal directions.
const (
	North Direction = 0
	East  Direction = 90
	South Direction = 180
	West  Direction = 270
)

// fullTurn is the modulus of direction arithmetic.
const fullTurn = 360

// Directions returns the four cardinal directions in ascending order.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// Valid reports whether d is one of the four cardinal values.
func (d Direction) Valid() bool {
	return d == North || d == East || d == South || d == West
}

// Add returns (d + o) mod 360.
func (d Direction) Add(o Direction) Direction {
	return normalize(int(d) + int(o))
}

// Sub returns (d - o) mod 360, i.e. o expressed relative to d.
func (d Direction) Sub(o Direction) Direction {
	return normalize(int(d) - int(o))
}

// Neg returns -d mod 360.
func (d Direction) Neg() Direction {
	return normalize(-int(d))
}

// Turned returns the opposite direction (d + 180 mod 360).
func (d Direction) Turned() Direction {
	return d.Add(South)
}

// Short returns the one-letter name (N, E, S, W), or the degree value
// for non-cardinal directions.
func (d Direction) Short() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}

	return strconv.Itoa(int(d))
}

// String returns the full upper-case name.
func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts N/E/S/W, the full names, or the degree values
// 0/90/180/270. Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH", "0":
		return North, nil
	case "E", "EAST", "90":
		return East, nil
	case "S", "SOUTH", "180":
		return South, nil
	case "W", "WEST", "270":
		return West, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func normalize(v int) Direction {
	return Direction(((v % fullTurn) + fullTurn) % fullTurn)
}

// Turned returns the same node facing the opposite way. An arrival pose
// turned around is the endpoint of the edge just traveled.
func (e Endpoint) Turned() Endpoint {
	return Endpoint{Node: e.Node, Direction: e.Direction.Turned()}
}

// Advance applies a discrete displacement measured in the robot frame
// (dx to the right, dy straight ahead) and a relative heading change.
//
//	NORTH: (x+dx, y+dy)   SOUTH: (x-dx, y-dy)
//	EAST:  (x+dy, y-dx)   WEST:  (x-dy, y+dx)
//
// The returned endpoint faces Direction.Add(turn).
func (e Endpoint) Advance(dx, dy int, turn Direction) Endpoint {
	n := e.Node
	switch e.Direction {
	case North:
		n.X += dx
		n.Y += dy
	case South:
		n.X -= dx
		n.Y -= dy
	case West:
		n.X -= dy
		n.Y += dx
	case East:
		n.X += dy
		n.Y -= dx
	}

	return Endpoint{Node: n, Direction: e.Direction.Add(turn)}
}
