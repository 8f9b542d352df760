package gameplay

import (
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/state"
)

// UpdateLighting recomputes what the player can see and remembers it
func UpdateLighting(g *state.Game) {
	if g.Map == nil || g.Player == nil {
		return
	}
	g.Lit = world.ComputeLit(g.Player.Position, g.Player.Vision, g.Map)
	g.Map.MarkSeen(g.Lit)
}
