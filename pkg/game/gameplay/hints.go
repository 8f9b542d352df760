package gameplay

import (
	"math/rand"
	"strings"

	"dungeoncrawl/pkg/game/ai"
	"dungeoncrawl/pkg/game/state"
)

type hint struct {
	format string
	args   []any
}

var hints = []hint{
	{format: "Walk into an enemy to attack it."},
	{format: "Press E next to a gate to open it."},
	{format: "Locked doors need a key. Keys lie in rooms far from the start."},
	{format: "Potions restore %d HP.", args: []any{PotionHeal}},
	{format: "Step onto the portal (>) to go deeper."},
	{format: "Zombies are slow and only act every other turn."},
	{format: "Enemies lose interest once you are %d tiles away.", args: []any{ai.DisengageDistance}},
}

// ShowHint logs a random tip. It does not touch the run's seeded rng so
// asking for hints never changes the dungeon.
func ShowHint(g *state.Game) {
	h := hints[rand.Intn(len(hints))]
	logMessage(g, h.format, h.args...)
}

// ShowDoorwayHint points out a gate or door next to the player until the
// player has opened a few.
func ShowDoorwayHint(g *state.Game) {
	if g.Interactions >= 3 {
		return
	}
	for _, c := range g.Player.Position.Adjacent() {
		obj := g.Map.GetAtPosition(c)
		if obj != nil && obj.Kind.IsDoorway() {
			logMessage(g, "Press E/Enter to open the %s.", strings.ToLower(obj.Kind.String()))
			return
		}
	}
}
