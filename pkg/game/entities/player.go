package entities

import (
	"dungeoncrawl/pkg/engine/world"
)

// PlayerStats are the starting stats of a new player
var PlayerStats = Stats{HP: 10, STR: 2, DEF: 0, ACC: 90}

// Player is the actor controlled by the user
type Player struct {
	Actor

	Level  int
	Exp    int
	MaxExp int

	Gold int
	Keys int
}

// NewPlayer creates a level 1 player at pos
func NewPlayer(pos world.Coord) *Player {
	return &Player{
		Actor:  newActor(KindPlayer, pos, PlayerStats, world.FOVRadius),
		Level:  1,
		MaxExp: 10,
	}
}

// GainExp adds experience and levels up when the threshold is reached.
// Returns true if the player levelled up.
func (p *Player) GainExp(exp int) bool {
	p.Exp += exp
	if p.Exp < p.MaxExp {
		return false
	}

	p.Exp = max(p.Exp-p.MaxExp, 0)
	p.Level++
	p.MaxExp *= 2
	p.Stats.HP += 2 * p.Level
	p.Health = p.Stats.HP
	return true
}
