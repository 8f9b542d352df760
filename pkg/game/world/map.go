// Package world provides the playable dungeon map built on the generic
// engine grid: object lookup, movement and sight blocking, and fog of war.
package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
)

// RenderState is how a renderer should draw a cell
type RenderState int

const (
	Unseen RenderState = iota
	Seen
	Lit
)

// Map is a level's tile grid plus the indexes derived from it.
type Map struct {
	Title string

	tiles   *world.Grid[entities.Kind]
	objects map[world.Coord]*entities.Entity
	solid   mapset.Set[world.Coord]
	opaque  mapset.Set[world.Coord]
	seen    mapset.Set[world.Coord]
}

// NewMap wraps a copy of tiles and indexes every non-empty tile.
func NewMap(title string, tiles *world.Grid[entities.Kind]) *Map {
	m := &Map{
		Title:   title,
		tiles:   tiles.Clone(),
		objects: make(map[world.Coord]*entities.Entity),
		solid:   mapset.New[world.Coord](),
		opaque:  mapset.New[world.Coord](),
		seen:    mapset.New[world.Coord](),
	}

	m.tiles.ForEachCell(func(p world.Coord, k entities.Kind) {
		if k == entities.KindNone {
			return
		}
		e := entities.NewEntity(k, p)
		m.objects[p] = e
		if e.IsSolid() {
			m.solid.Put(p)
		}
		if e.IsOpaque() {
			m.opaque.Put(p)
		}
	})

	return m
}

// Width returns the number of columns
func (m *Map) Width() int {
	return m.tiles.Width()
}

// Height returns the number of rows
func (m *Map) Height() int {
	return m.tiles.Height()
}

// Tile returns the tile kind at p, KindNone when empty or outside
func (m *Map) Tile(p world.Coord) entities.Kind {
	return m.tiles.Get(p)
}

// Tiles returns a copy of the current tile grid
func (m *Map) Tiles() *world.Grid[entities.Kind] {
	return m.tiles.Clone()
}

// IsPositionOutsideMap reports whether p is out of bounds
func (m *Map) IsPositionOutsideMap(p world.Coord) bool {
	return !m.tiles.IsValidPosition(p)
}

// IsPositionEmpty reports whether p holds no object. Out of bounds is never empty.
func (m *Map) IsPositionEmpty(p world.Coord) bool {
	if m.IsPositionOutsideMap(p) {
		return false
	}
	_, found := m.objects[p]
	return !found
}

// IsPositionWalkable reports whether p is inside the map and either empty
// or holds a pickup.
func (m *Map) IsPositionWalkable(p world.Coord) bool {
	if m.IsPositionOutsideMap(p) {
		return false
	}
	o := m.objects[p]
	return o == nil || o.Kind.IsPickup()
}

// IsSolid reports whether an object at p blocks movement
func (m *Map) IsSolid(p world.Coord) bool {
	return m.solid.Has(p)
}

// IsOpaque reports whether an object at p blocks sight
func (m *Map) IsOpaque(p world.Coord) bool {
	return m.opaque.Has(p)
}

// GetAtPosition returns the object at p, or nil
func (m *Map) GetAtPosition(p world.Coord) *entities.Entity {
	return m.objects[p]
}

// Objects returns all objects ordered by row then column
func (m *Map) Objects() []*entities.Entity {
	out := make([]*entities.Entity, 0, len(m.objects))
	for _, o := range m.objects {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Position, out[j].Position
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// Find returns the positions of every object of the given kind
func (m *Map) Find(kind entities.Kind) []world.Coord {
	var out []world.Coord
	for _, o := range m.Objects() {
		if o.Kind == kind {
			out = append(out, o.Position)
		}
	}
	return out
}

// RemoveObject drops e from every index and clears its tile.
func (m *Map) RemoveObject(e *entities.Entity) {
	if e == nil {
		return
	}
	if m.objects[e.Position] != e {
		return
	}
	delete(m.objects, e.Position)
	m.solid.Remove(e.Position)
	m.opaque.Remove(e.Position)
	m.tiles.Set(e.Position, entities.KindNone)
}

// OpenDoor removes a door or gate and any door or gate directly next to it,
// so doorways wider than one tile open together. Returns false if e is not
// a doorway.
func (m *Map) OpenDoor(e *entities.Entity) bool {
	if e == nil || !e.Kind.IsDoorway() {
		return false
	}

	m.RemoveObject(e)
	for _, adj := range e.Position.Adjacent() {
		if o := m.GetAtPosition(adj); o != nil && o.Kind.IsDoorway() {
			m.RemoveObject(o)
		}
	}
	return true
}

// MarkSeen records every lit cell as seen
func (m *Map) MarkSeen(lit mapset.Set[world.Coord]) {
	lit.Each(func(p world.Coord) {
		m.seen.Put(p)
	})
}

// IsSeen reports whether p has ever been lit
func (m *Map) IsSeen(p world.Coord) bool {
	return m.seen.Has(p)
}

// RenderState classifies p given the current lit set
func (m *Map) RenderState(p world.Coord, lit mapset.Set[world.Coord]) RenderState {
	switch {
	case lit.Has(p):
		return Lit
	case m.seen.Has(p):
		return Seen
	default:
		return Unseen
	}
}
