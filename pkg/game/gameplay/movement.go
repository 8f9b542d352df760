// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/state"
)

// PotionHeal is how much health a potion restores
const PotionHeal = 5

// MovePlayer steps the player one tile in dir. An enemy in the way is
// attacked instead, solid tiles block, and anything on the new tile is picked
// up. Returns true if the action used up the turn.
func MovePlayer(g *state.Game, dir world.Direction) bool {
	if g.Player == nil || g.Map == nil {
		return false
	}
	target := g.Player.Position.Add(dir.Delta())

	if e := g.EnemyAt(target); e != nil {
		attackEnemy(g, e)
		return true
	}

	if g.Map.IsPositionOutsideMap(target) {
		return false
	}
	obj := g.Map.GetAtPosition(target)
	if obj != nil && obj.IsSolid() {
		return false
	}

	g.Player.Position = target
	if obj != nil {
		pickUp(g, obj)
	}
	ShowDoorwayHint(g)
	return true
}

func attackEnemy(g *state.Game, e *entities.Enemy) {
	hit, dmg := g.Player.Attack(&e.Actor, g.Rng)
	if !hit {
		logMessage(g, "You miss the %s.", e.Type)
		return
	}
	logMessage(g, "You hit the %s for %d damage.", e.Type, dmg)
}

// pickUp collects keys, gold and potions from the player's tile
func pickUp(g *state.Game, obj *entities.Entity) {
	p := g.Player
	switch obj.Kind {
	case entities.KindKey:
		p.Keys++
		g.Map.RemoveObject(obj)
		logMessage(g, "You picked up a key!")
	case entities.KindGold:
		p.Gold++
		g.Map.RemoveObject(obj)
		logMessage(g, "You found a gold coin.")
	case entities.KindPotion:
		p.Heal(PotionHeal)
		g.Map.RemoveObject(obj)
		logMessage(g, "You healed %d HP from a potion!", PotionHeal)
	}
}

// logMessage translates msg and appends it to the message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
