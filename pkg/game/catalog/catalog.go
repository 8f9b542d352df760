// Package catalog is the static room data the dungeon generator draws from.
package catalog

import (
	"errors"
	"fmt"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
)

// ErrInvalidBlueprint is returned by Validate for malformed room data
var ErrInvalidBlueprint = errors.New("invalid blueprint")

// SizeClass groups rooms by footprint
type SizeClass int

const (
	Mini SizeClass = iota
	Small
	Mid
	Large
	Jumbo
)

func (s SizeClass) String() string {
	switch s {
	case Mini:
		return "Mini"
	case Small:
		return "Small"
	case Mid:
		return "Mid"
	case Large:
		return "Large"
	case Jumbo:
		return "Jumbo"
	default:
		return "Unknown"
	}
}

// Blueprint is a room template. Item is nil for rooms without an item point.
type Blueprint struct {
	Size    SizeClass
	Pattern []string
	Spawn   world.Coord
	Item    *world.Coord
	Gold    []world.Coord
	Enemies []world.Coord
}

// Width returns the number of columns in the pattern
func (b *Blueprint) Width() int {
	if len(b.Pattern) == 0 {
		return 0
	}
	return len(b.Pattern[0])
}

// Height returns the number of rows in the pattern
func (b *Blueprint) Height() int {
	return len(b.Pattern)
}

// TileAt returns the tile kind at a pattern-relative position
func (b *Blueprint) TileAt(p world.Coord) entities.Kind {
	if p.Y < 0 || p.Y >= b.Height() || p.X < 0 || p.X >= len(b.Pattern[p.Y]) {
		return entities.KindNone
	}
	switch b.Pattern[p.Y][p.X] {
	case '#':
		return entities.KindWall
	case '1':
		return entities.KindGate
	default:
		return entities.KindNone
	}
}

// IsFloor reports whether the pattern cell at p is open floor
func (b *Blueprint) IsFloor(p world.Coord) bool {
	return p.Y >= 0 && p.Y < b.Height() && p.X >= 0 && p.X < b.Width() && b.Pattern[p.Y][p.X] == '.'
}

// Validate checks the pattern is rectangular, walled on its border and that
// every point sits on floor.
func (b *Blueprint) Validate() error {
	w, h := b.Width(), b.Height()
	if w < 3 || h < 3 {
		return fmt.Errorf("%w: pattern %dx%d is too small", ErrInvalidBlueprint, w, h)
	}

	for y, row := range b.Pattern {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidBlueprint, y, len(row), w)
		}
		for x := range row {
			onBorder := x == 0 || y == 0 || x == w-1 || y == h-1
			if onBorder && row[x] != '#' {
				return fmt.Errorf("%w: border cell %d,%d is not wall", ErrInvalidBlueprint, x, y)
			}
		}
	}

	points := []world.Coord{b.Spawn}
	if b.Item != nil {
		points = append(points, *b.Item)
	}
	points = append(points, b.Gold...)
	points = append(points, b.Enemies...)
	for _, p := range points {
		if !b.IsFloor(p) {
			return fmt.Errorf("%w: point %v is not on floor", ErrInvalidBlueprint, p)
		}
	}

	return nil
}

// All returns every blueprint in the catalog
func All() []*Blueprint {
	out := make([]*Blueprint, len(blueprints))
	for i := range blueprints {
		out[i] = &blueprints[i]
	}
	return out
}

// UpTo returns the blueprints whose size class is at most limit
func UpTo(limit SizeClass) []*Blueprint {
	var out []*Blueprint
	for _, b := range All() {
		if b.Size <= limit {
			out = append(out, b)
		}
	}
	return out
}
