package gameplay

import (
	"log/slog"

	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/floor"
	"dungeoncrawl/pkg/game/state"
	gameworld "dungeoncrawl/pkg/game/world"
)

// BuildGame creates a new game instance with optional starting level
func BuildGame(seed int64, startLevel int) *state.Game {
	g := state.NewGame(seed)

	// Set starting level if specified (for developer testing)
	if startLevel > 1 {
		g.Level = startLevel
	}

	SetupLevel(g)

	g.ClearMessages()
	logMessage(g, "Welcome to the dungeon!")
	logMessage(g, "You are on %s.", g.Map.Title)

	return g
}

// SetupLevel generates the map for the current level, places the player on
// its start cell and spawns its enemies. The player keeps stats and
// inventory between levels.
func SetupLevel(g *state.Game) {
	size := floor.SizeFor(g.Level)
	info := g.Generator.Generate(size, g.Rng)

	g.Map = gameworld.NewMap(floor.Title(g.Level), info.Tiles)

	if g.Player == nil {
		g.Player = entities.NewPlayer(info.Start)
	} else {
		g.Player.Position = info.Start
	}

	g.Enemies = make([]*entities.Enemy, 0, len(info.Enemies))
	for _, spawn := range info.Enemies {
		g.Enemies = append(g.Enemies, entities.NewEnemy(spawn.Type, spawn.Position))
	}

	UpdateLighting(g)

	slog.Debug("level ready",
		"level", g.Level,
		"size", size.String(),
		"generator", g.Generator.Name(),
		"enemies", len(g.Enemies),
	)
}

// AdvanceLevel moves the player down to the next floor
func AdvanceLevel(g *state.Game) {
	g.Level++
	SetupLevel(g)
	logMessage(g, "You step through the portal into %s.", g.Map.Title)
}
