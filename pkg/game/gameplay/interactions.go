package gameplay

import (
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/state"
)

// Interact opens every gate on or next to the player, and every door too as
// long as the player has a key for it. Returns true if anything opened.
func Interact(g *state.Game) bool {
	if g.Player == nil || g.Map == nil {
		return false
	}

	pos := g.Player.Position
	cells := append([]world.Coord{pos}, pos.Adjacent()...)

	found := false
	acted := false
	for _, c := range cells {
		obj := g.Map.GetAtPosition(c)
		if obj == nil {
			continue
		}

		switch obj.Kind {
		case entities.KindGate:
			found = true
			g.Map.OpenDoor(obj)
			g.Interactions++
			acted = true
		case entities.KindDoor:
			found = true
			if g.Player.Keys == 0 {
				logMessage(g, "The door is locked.")
				continue
			}
			g.Player.Keys--
			g.Map.OpenDoor(obj)
			g.Interactions++
			logMessage(g, "You unlocked the door with a key!")
			acted = true
		}
	}

	if !found {
		logMessage(g, "Nothing to interact with here.")
	}
	return acted
}
