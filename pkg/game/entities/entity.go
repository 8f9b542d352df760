package entities

import (
	"math/rand"

	"dungeoncrawl/pkg/engine/world"
)

// Entity is anything with a position on the map
type Entity struct {
	Position world.Coord
	Kind     Kind
}

// NewEntity creates an entity of the given kind at pos
func NewEntity(kind Kind, pos world.Coord) *Entity {
	return &Entity{Position: pos, Kind: kind}
}

// IsSolid reports whether the entity blocks movement
func (e *Entity) IsSolid() bool {
	return e.Kind.IsSolid()
}

// IsOpaque reports whether the entity blocks sight
func (e *Entity) IsOpaque() bool {
	return e.Kind.IsOpaque()
}

// Stats are the combat attributes of an actor. ACC is a percentage.
type Stats struct {
	HP  int
	STR int
	DEF int
	ACC int
}

// Actor is an entity that can fight
type Actor struct {
	Entity
	Health int
	Stats  Stats
	Vision float64
}

func newActor(kind Kind, pos world.Coord, stats Stats, vision float64) Actor {
	return Actor{
		Entity: Entity{Position: pos, Kind: kind},
		Health: stats.HP,
		Stats:  stats,
		Vision: vision,
	}
}

// TakeDamage reduces health by dmg less DEF, never below zero, and returns
// the damage actually applied.
func (a *Actor) TakeDamage(dmg int) int {
	applied := max(dmg-a.Stats.DEF, 0)
	before := a.Health
	a.Health = max(a.Health-applied, 0)
	return before - a.Health
}

// Heal restores up to amount health, capped at HP
func (a *Actor) Heal(amount int) int {
	before := a.Health
	a.Health = min(a.Health+amount, a.Stats.HP)
	return a.Health - before
}

// IsDead reports whether health reached zero
func (a *Actor) IsDead() bool {
	return a.Health <= 0
}

// Attack rolls against ACC and on a hit deals STR damage to target.
// Returns whether it hit and the damage applied.
func (a *Actor) Attack(target *Actor, rng *rand.Rand) (bool, int) {
	if rng.Float64()*100 >= float64(a.Stats.ACC) {
		return false, 0
	}
	return true, target.TakeDamage(a.Stats.STR)
}
