package world

import (
	"fmt"
	"math"
	"sort"
)

// Coord is an integer grid position. It is a value type and is used directly
// as a map key throughout the engine.
type Coord struct {
	X int
	Y int
}

// Unit offsets, in the order Adjacent enumerates them.
var (
	Zero  = Coord{0, 0}
	Up    = Coord{0, -1}
	Down  = Coord{0, 1}
	Left  = Coord{-1, 0}
	Right = Coord{1, 0}
)

// NewCoord creates a coordinate
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c + o
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Sub returns c - o
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y}
}

// Mul scales both axes by n
func (c Coord) Mul(n int) Coord {
	return Coord{c.X * n, c.Y * n}
}

// DistanceTo returns the Euclidean distance between two coordinates
func (c Coord) DistanceTo(o Coord) float64 {
	return math.Hypot(float64(o.X-c.X), float64(o.Y-c.Y))
}

// Adjacent returns the four cardinal neighbours in the order Up, Down, Left, Right.
func (c Coord) Adjacent() []Coord {
	return []Coord{c.Add(Up), c.Add(Down), c.Add(Left), c.Add(Right)}
}

// String returns the canonical "x,y" key
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Bresenham returns every cell on the line from c to to, both ends included.
func (c Coord) Bresenham(to Coord) []Coord {
	dx := abs(to.X - c.X)
	dy := abs(to.Y - c.Y)

	sx := Left
	if c.X < to.X {
		sx = Right
	}
	sy := Up
	if c.Y < to.Y {
		sy = Down
	}

	line := make([]Coord, 0, max(dx, dy)+1)
	cur := c
	err := dx - dy
	for {
		line = append(line, cur)
		if cur == to {
			break
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			cur = cur.Add(sx)
		}
		if e2 < dx {
			err += dx
			cur = cur.Add(sy)
		}
	}
	return line
}

// WithinDistance returns every coordinate whose Euclidean distance from c is
// at most dist, nearest first.
func (c Coord) WithinDistance(dist float64) []Coord {
	r := int(math.Ceil(dist))
	out := make([]Coord, 0, (2*r+1)*(2*r+1))
	for x := c.X - r; x <= c.X+r; x++ {
		for y := c.Y - r; y <= c.Y+r; y++ {
			p := Coord{x, y}
			if c.DistanceTo(p) <= dist {
				out = append(out, p)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return c.DistanceTo(out[i]) < c.DistanceTo(out[j])
	})
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
