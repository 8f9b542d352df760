package gameplay

import (
	"math/rand"
	"strings"
	"testing"

	engineinput "dungeoncrawl/pkg/engine/input"
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/generator"
	"dungeoncrawl/pkg/game/state"
)

var glyphKinds = map[rune]entities.Kind{
	'#': entities.KindWall,
	'-': entities.KindGate,
	'+': entities.KindDoor,
	'=': entities.KindKey,
	'>': entities.KindPortal,
	'$': entities.KindGold,
	'&': entities.KindPotion,
}

// fixedGenerator always returns the same hand drawn map
type fixedGenerator struct {
	rows    []string
	start   world.Coord
	enemies []generator.EnemySpawn
	calls   int
}

func (f *fixedGenerator) Name() string {
	return "Fixed"
}

func (f *fixedGenerator) Generate(size generator.MapSize, rng *rand.Rand) generator.MapInfo {
	f.calls++
	g := world.NewGrid[entities.Kind](len(f.rows[0]), len(f.rows))
	for y, row := range f.rows {
		for x, ch := range row {
			g.Set(world.Coord{X: x, Y: y}, glyphKinds[ch])
		}
	}
	return generator.MapInfo{Size: size, Tiles: g, Start: f.start, Enemies: f.enemies}
}

// newTestGame sets up level 1 of a game played on gen's map
func newTestGame(gen *fixedGenerator) *state.Game {
	g := state.NewGame(1)
	g.Generator = gen
	SetupLevel(g)
	return g
}

func intent(a engineinput.Action) engineinput.Intent {
	return engineinput.Intent{Action: a}
}

func lastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

func TestMovePlayer_PicksUpItems(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows: []string{
			"#######",
			"#.=$&.#",
			"#######",
		},
		start: world.Coord{X: 1, Y: 1},
	})
	g.Player.Health = 3

	ProcessIntent(g, intent(engineinput.ActionMoveEast))
	if g.Player.Keys != 1 || lastMessage(g) != "You picked up a key!" {
		t.Errorf("after key: keys=%d message=%q", g.Player.Keys, lastMessage(g))
	}
	if g.Map.Tile(world.Coord{X: 2, Y: 1}) != entities.KindNone {
		t.Error("key tile not cleared")
	}

	ProcessIntent(g, intent(engineinput.ActionMoveEast))
	if g.Player.Gold != 1 {
		t.Errorf("gold = %d, want 1", g.Player.Gold)
	}

	ProcessIntent(g, intent(engineinput.ActionMoveEast))
	if g.Player.Health != 8 {
		t.Errorf("health = %d after potion, want 8", g.Player.Health)
	}
	if lastMessage(g) != "You healed 5 HP from a potion!" {
		t.Errorf("message = %q", lastMessage(g))
	}

	if g.Player.Position != (world.Coord{X: 4, Y: 1}) || g.Turns != 3 {
		t.Errorf("position %v turns %d", g.Player.Position, g.Turns)
	}
}

func TestMovePlayer_WallDoesNotUseTurn(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows:  []string{"####", "#..#", "####"},
		start: world.Coord{X: 1, Y: 1},
	})

	ProcessIntent(g, intent(engineinput.ActionMoveNorth))
	ProcessIntent(g, intent(engineinput.ActionMoveWest))

	if g.Player.Position != (world.Coord{X: 1, Y: 1}) {
		t.Errorf("player moved into a wall: %v", g.Player.Position)
	}
	if g.Turns != 0 {
		t.Errorf("turns = %d, want 0", g.Turns)
	}
}

func TestInteract(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		keys      int
		wantOpen  bool
		wantKeys  int
		wantTurns int
		wantMsg   string
	}{
		{"gate opens", "#.-.#", 0, true, 0, 1, ""},
		{"door locked", "#.+.#", 0, false, 0, 0, "The door is locked."},
		{"door with key", "#.+.#", 2, true, 1, 1, "You unlocked the door with a key!"},
		{"nothing", "#...#", 0, false, 0, 0, "Nothing to interact with here."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(&fixedGenerator{
				rows:  []string{"#####", tt.row, "#####"},
				start: world.Coord{X: 1, Y: 1},
			})
			g.Player.Keys = tt.keys
			doorway := world.Coord{X: 2, Y: 1}
			before := g.Map.Tile(doorway)

			ProcessIntent(g, intent(engineinput.ActionInteract))

			opened := before != entities.KindNone && g.Map.Tile(doorway) == entities.KindNone
			if opened != tt.wantOpen {
				t.Errorf("opened = %v, want %v", opened, tt.wantOpen)
			}
			if g.Player.Keys != tt.wantKeys {
				t.Errorf("keys = %d, want %d", g.Player.Keys, tt.wantKeys)
			}
			if g.Turns != tt.wantTurns {
				t.Errorf("turns = %d, want %d", g.Turns, tt.wantTurns)
			}
			if tt.wantMsg != "" && lastMessage(g) != tt.wantMsg {
				t.Errorf("message = %q, want %q", lastMessage(g), tt.wantMsg)
			}
		})
	}
}

func TestAttackKillsAndAwardsExp(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows:    []string{"######", "#....#", "######"},
		start:   world.Coord{X: 1, Y: 1},
		enemies: []generator.EnemySpawn{{Type: entities.Rat, Position: world.Coord{X: 2, Y: 1}}},
	})
	g.Player.Stats.ACC = 100
	g.Player.Exp = 9

	ProcessIntent(g, intent(engineinput.ActionMoveEast))

	if len(g.Enemies) != 0 {
		t.Fatalf("rat not purged: %d enemies left", len(g.Enemies))
	}
	if g.Player.Position != (world.Coord{X: 1, Y: 1}) {
		t.Errorf("attacking moved the player to %v", g.Player.Position)
	}
	if g.Player.Level != 2 || g.Player.Exp != 1 || g.Player.MaxExp != 20 {
		t.Errorf("level %d exp %d/%d, want 2 1/20", g.Player.Level, g.Player.Exp, g.Player.MaxExp)
	}
	if g.Player.Stats.HP != 14 || g.Player.Health != 14 {
		t.Errorf("hp %d/%d, want 14/14", g.Player.Health, g.Player.Stats.HP)
	}
	if lastMessage(g) != "Leveled Up to level 2!" {
		t.Errorf("message = %q", lastMessage(g))
	}
}

func TestEnemiesActAfterPlayer(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows:    []string{"########", "#......#", "########"},
		start:   world.Coord{X: 1, Y: 1},
		enemies: []generator.EnemySpawn{{Type: entities.Rat, Position: world.Coord{X: 5, Y: 1}}},
	})
	rat := g.Enemies[0]

	ProcessIntent(g, intent(engineinput.ActionWait))
	if rat.State != entities.StateChase || rat.Position != (world.Coord{X: 5, Y: 1}) {
		t.Fatalf("after first turn rat is %v at %v", rat.State, rat.Position)
	}

	ProcessIntent(g, intent(engineinput.ActionWait))
	if rat.Position != (world.Coord{X: 4, Y: 1}) {
		t.Errorf("rat at %v, want 4,1", rat.Position)
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows:    []string{"#####", "#...#", "#####"},
		start:   world.Coord{X: 1, Y: 1},
		enemies: []generator.EnemySpawn{{Type: entities.Kobold, Position: world.Coord{X: 2, Y: 1}}},
	})
	kobold := g.Enemies[0]
	kobold.State = entities.StateChase
	kobold.Stats.ACC = 100
	g.Player.Health = 1

	ProcessIntent(g, intent(engineinput.ActionWait))
	if !g.Over {
		t.Fatal("game not over after a lethal hit")
	}

	turns := g.Turns
	ProcessIntent(g, intent(engineinput.ActionMoveEast))
	if g.Turns != turns {
		t.Error("a dead player took a turn")
	}

	ProcessIntent(g, intent(engineinput.ActionQuit))
	if !g.Quit {
		t.Error("quit ignored after death")
	}
}

func TestPortalAdvancesLevel(t *testing.T) {
	gen := &fixedGenerator{
		rows:  []string{"#####", "#..>#", "#####"},
		start: world.Coord{X: 1, Y: 1},
	}
	g := newTestGame(gen)
	g.Player.Keys = 1

	ProcessIntent(g, intent(engineinput.ActionMoveEast))
	if g.Level != 1 {
		t.Fatalf("level changed early to %d", g.Level)
	}
	ProcessIntent(g, intent(engineinput.ActionMoveEast))

	if g.Level != 2 || gen.calls != 2 {
		t.Errorf("level %d after %d generations, want 2 after 2", g.Level, gen.calls)
	}
	if g.Player.Position != gen.start || g.Player.Keys != 1 {
		t.Errorf("player at %v with %d keys", g.Player.Position, g.Player.Keys)
	}
	if !strings.Contains(lastMessage(g), "Floor 2") {
		t.Errorf("message = %q", lastMessage(g))
	}
	if !g.IsLit(gen.start) {
		t.Error("new level not lit around the player")
	}
}

func TestLightingMarksSeen(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows: []string{
			"##########",
			"#........#",
			"##########",
		},
		start: world.Coord{X: 1, Y: 1},
	})

	far := world.Coord{X: 8, Y: 1}
	if !g.IsLit(far) || !g.Map.IsSeen(far) {
		t.Fatal("cell in view not lit and seen")
	}

	g.Player.Vision = 2
	UpdateLighting(g)
	if g.IsLit(far) {
		t.Error("cell out of view still lit")
	}
	if !g.Map.IsSeen(far) {
		t.Error("seen cell forgotten")
	}
}

func TestBuildGame(t *testing.T) {
	g := BuildGame(42, 1)

	if err := generator.Validate(generator.MapInfo{Tiles: g.Map.Tiles(), Start: g.Player.Position}); err != nil {
		t.Fatalf("generated level invalid: %v", err)
	}
	if g.Map.Width() != generator.XS.Dimension() {
		t.Errorf("level 1 width = %d", g.Map.Width())
	}
	if len(g.Messages) != 2 || g.Messages[0] != "Welcome to the dungeon!" {
		t.Errorf("messages = %v", g.Messages)
	}

	deep := BuildGame(42, 3)
	if deep.Level != 3 || deep.Map.Width() != generator.M.Dimension() {
		t.Errorf("start level 3 gave level %d width %d", deep.Level, deep.Map.Width())
	}
}

func TestHintDoesNotUseTurn(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows:  []string{"####", "#..#", "####"},
		start: world.Coord{X: 1, Y: 1},
	})

	ProcessIntent(g, intent(engineinput.ActionHint))

	if g.Turns != 0 || len(g.Messages) != 1 {
		t.Errorf("turns %d messages %v", g.Turns, g.Messages)
	}
}

func TestHintsFormatCleanly(t *testing.T) {
	g := newTestGame(&fixedGenerator{
		rows:  []string{"####", "#..#", "####"},
		start: world.Coord{X: 1, Y: 1},
	})

	for _, h := range hints {
		g.ClearMessages()
		logMessage(g, h.format, h.args...)
		if len(g.Messages) != 1 {
			t.Fatalf("%q logged %d messages", h.format, len(g.Messages))
		}
		if msg := g.Messages[0]; strings.Contains(msg, "%") {
			t.Errorf("%q rendered as %q", h.format, msg)
		}
	}
}
