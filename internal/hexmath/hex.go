// Package hexmath provides axial/cube hex coordinate math: neighbor
// enumeration, distance, fractional rounding, line interpolation, and
// world-space conversion for pointy-top layouts.
package hexmath

import (
	"fmt"
	"math"
)

// Hex represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Key returns the canonical "q,r" string key for map output contracts.
func (h Hex) Key() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

// Add returns the componentwise sum of two axial coordinates.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// ToCube converts axial to cube.
func (h Hex) ToCube() Cube {
	x := h.Q
	z := h.R
	return Cube{X: x, Y: -x - z, Z: z}
}

// ToAxial converts cube back to axial.
func (c Cube) ToAxial() Hex {
	return Hex{Q: c.X, R: c.Z}
}

// Directions defines the six neighbor offsets in axial coordinates,
// counterclockwise from due east (pointy-top orientation). Index order is
// load-bearing: shape rotations are expressed as direction indices.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range Directions {
		result[i] = Hex{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// DirectionIndex returns the index into Directions for the step from a to
// an adjacent b, or -1 if the two coordinates are not adjacent.
func DirectionIndex(a, b Hex) int {
	for i, dir := range Directions {
		if a.Add(dir) == b {
			return i
		}
	}
	return -1
}

// OppositeDirection returns the index of the direction opposite to d.
func OppositeDirection(d int) int {
	return (d + 3) % 6
}

// Distance returns the hex distance between two coordinates: the max of
// the three absolute differences in cube space.
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// Round resolves fractional axial coordinates to the nearest integer hex.
// Rounds each cube component, then corrects the component with the largest
// rounding error so x+y+z=0 still holds. Identity on integer input.
func Round(q, r float64) Hex {
	x := q
	z := r
	y := -x - z

	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return Hex{Q: int(rx), R: int(rz)}
}

// Lerp interpolates fractional axial coordinates between a and b at t.
func Lerp(a, b Hex, t float64) (q, r float64) {
	q = float64(a.Q) + (float64(b.Q)-float64(a.Q))*t
	r = float64(a.R) + (float64(b.R)-float64(a.R))*t
	return
}

// Line returns the sequence of hexes from a to b inclusive, obtained by
// sampling the straight segment at 1/N steps and rounding. A small nudge
// keeps samples off cell boundaries so rounding is stable.
func Line(a, b Hex) []Hex {
	n := Distance(a, b)
	if n == 0 {
		return []Hex{a}
	}
	const eps = 1e-6
	line := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q, r := Lerp(a, b, t)
		line = append(line, Round(q+eps, r+eps))
	}
	return line
}

// ToWorld converts an axial coordinate to world-space coordinates for a
// pointy-top layout. size is the hex radius (center to corner).
func ToWorld(h Hex, size float64) (x, y float64) {
	x = size * math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2.0)
	y = size * 1.5 * float64(h.R)
	return
}

// FromWorld converts world-space coordinates back to the containing hex.
// Inverse of ToWorld up to one hex cell.
func FromWorld(x, y, size float64) Hex {
	q := (math.Sqrt(3)/3.0*x - y/3.0) / size
	r := (2.0 / 3.0 * y) / size
	return Round(q, r)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
