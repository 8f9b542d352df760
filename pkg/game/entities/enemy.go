package entities

import (
	"dungeoncrawl/pkg/engine/world"
)

// EnemyType identifies an enemy's stat block
type EnemyType int

const (
	Rat EnemyType = iota
	Kobold
	Zombie
)

// EnemyInfo is the static data for an enemy type
type EnemyInfo struct {
	Name      string
	Glyph     rune
	MoveSpeed int
	Vision    float64
	Exp       int
	Stats     Stats
}

var enemyTable = map[EnemyType]EnemyInfo{
	Rat:    {Name: "Rat", Glyph: 'R', MoveSpeed: 1, Vision: 7, Exp: 2, Stats: Stats{HP: 2, STR: 1, DEF: 0, ACC: 70}},
	Kobold: {Name: "Kobold", Glyph: 'K', MoveSpeed: 1, Vision: 7, Exp: 4, Stats: Stats{HP: 4, STR: 2, DEF: 0, ACC: 80}},
	Zombie: {Name: "Zombie", Glyph: 'Z', MoveSpeed: 2, Vision: 7, Exp: 8, Stats: Stats{HP: 6, STR: 4, DEF: 1, ACC: 85}},
}

// EnemyTypes returns every enemy type in a stable order
func EnemyTypes() []EnemyType {
	return []EnemyType{Rat, Kobold, Zombie}
}

// Info returns the static data for t
func (t EnemyType) Info() EnemyInfo {
	return enemyTable[t]
}

func (t EnemyType) String() string {
	return t.Info().Name
}

// AIState is the state of an enemy's decision machine
type AIState int

const (
	StateIdle AIState = iota
	StateChase
)

func (s AIState) String() string {
	if s == StateChase {
		return "Chase"
	}
	return "Idle"
}

// Enemy is a hostile actor driven by the AI
type Enemy struct {
	Actor
	Type      EnemyType
	MoveSpeed int
	State     AIState

	tick int
}

// NewEnemy creates an enemy of type t at pos with fresh stats
func NewEnemy(t EnemyType, pos world.Coord) *Enemy {
	info := t.Info()
	return &Enemy{
		Actor:     newActor(KindEnemy, pos, info.Stats, info.Vision),
		Type:      t,
		MoveSpeed: max(info.MoveSpeed, 1),
	}
}

// Glyph returns the enemy's map character
func (e *Enemy) Glyph() rune {
	return e.Type.Info().Glyph
}

// Exp is the experience awarded for killing this enemy
func (e *Enemy) Exp() int {
	return e.Type.Info().Exp
}

// Ready advances the move throttle and reports whether the enemy may act
// this tick. An enemy with MoveSpeed n acts on every nth call.
func (e *Enemy) Ready() bool {
	e.tick = (e.tick + 1) % e.MoveSpeed
	return e.tick == 0
}
