package state

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/generator"
	gameworld "dungeoncrawl/pkg/game/world"
)

// maxMessages is how many log lines are kept
const maxMessages = 5

// Game represents the state of one run through the dungeon
type Game struct {
	Map     *gameworld.Map
	Player  *entities.Player
	Enemies []*entities.Enemy

	// Lit is the set of cells the player can currently see
	Lit mapset.Set[world.Coord]

	Messages []string

	Level int // Current floor number
	Seed  int64
	Turns int

	// Interactions counts opened gates and doors, for hints
	Interactions int

	Rng       *rand.Rand
	Generator generator.GridGenerator

	// Over is set when the player dies
	Over bool
	// Quit is set when the player asks to leave
	Quit bool
}

// NewGame creates a new game instance. All randomness of the run is drawn
// from seed.
func NewGame(seed int64) *Game {
	return &Game{
		Lit:       mapset.New[world.Coord](),
		Messages:  make([]string, 0),
		Level:     1,
		Seed:      seed,
		Rng:       rand.New(rand.NewSource(seed)),
		Generator: generator.DefaultGenerator,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// EnemyAt returns the living enemy at p, or nil
func (g *Game) EnemyAt(p world.Coord) *entities.Enemy {
	for _, e := range g.Enemies {
		if e.Position == p && !e.IsDead() {
			return e
		}
	}
	return nil
}

// IsLit reports whether the player can currently see p
func (g *Game) IsLit(p world.Coord) bool {
	return g.Lit.Has(p)
}

// Hit logs an enemy landing a blow
func (g *Game) Hit(attacker, target string, damage int) {
	g.AddMessage(gotext.Get("The %s hits you for %d damage!", attacker, damage))
}

// Miss logs an enemy missing
func (g *Game) Miss(attacker, target string) {
	g.AddMessage(gotext.Get("The %s misses you.", attacker))
}
