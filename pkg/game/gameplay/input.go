package gameplay

import (
	"log/slog"

	"github.com/leonelquinteros/gotext"

	engineinput "dungeoncrawl/pkg/engine/input"
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/ai"
	"dungeoncrawl/pkg/game/devtools"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system. Any action that uses the player's turn is followed by the rest of
// the turn: dead enemies are cleared, the portal is checked, enemies act and
// the player's view is recomputed.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if g.Over {
		if intent.Action == engineinput.ActionQuit {
			g.Quit = true
		}
		return
	}

	var acted bool
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		logMessage(g, "Goodbye!")
		g.Quit = true
		return

	case engineinput.ActionHint:
		ShowHint(g)
		return

	case engineinput.ActionDebugMapDump:
		dumpMap(g)
		return

	case engineinput.ActionMoveNorth:
		acted = MovePlayer(g, world.North)
	case engineinput.ActionMoveSouth:
		acted = MovePlayer(g, world.South)
	case engineinput.ActionMoveWest:
		acted = MovePlayer(g, world.West)
	case engineinput.ActionMoveEast:
		acted = MovePlayer(g, world.East)

	case engineinput.ActionInteract:
		acted = Interact(g)

	case engineinput.ActionWait:
		acted = true

	default:
		g.AddMessage(gotext.Get("Unknown command."))
		return
	}

	if acted {
		EndTurn(g)
	}
}

// dumpMap writes the debug map dump and reports where it went
func dumpMap(g *state.Game) {
	path, err := devtools.DumpMapToFile(g)
	if err != nil {
		slog.Error("Map dump failed", "err", err)
		logMessage(g, "Map dump failed: %v", err)
		return
	}
	logMessage(g, "Map dumped to %s", path)
}

// EndTurn runs everything that happens after the player has acted.
func EndTurn(g *state.Game) {
	g.Turns++

	purgeDead(g)

	if g.Map.Tile(g.Player.Position) == entities.KindPortal {
		AdvanceLevel(g)
		return
	}

	ai.TickAll(&ai.Context{
		Map:     g.Map,
		Player:  g.Player,
		Enemies: g.Enemies,
		Rng:     g.Rng,
		Notify:  g,
	})

	if g.Player.IsDead() {
		g.Over = true
		logMessage(g, "You died on %s after %d turns.", g.Map.Title, g.Turns)
	}

	UpdateLighting(g)
}

// purgeDead removes slain enemies and awards their experience
func purgeDead(g *state.Game) {
	alive := g.Enemies[:0]
	for _, e := range g.Enemies {
		if !e.IsDead() {
			alive = append(alive, e)
			continue
		}
		logMessage(g, "You killed the %s!", e.Type)
		if g.Player.GainExp(e.Exp()) {
			logMessage(g, "Leveled Up to level %d!", g.Player.Level)
		}
	}
	g.Enemies = alive
}
