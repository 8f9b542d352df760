package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"dungeoncrawl/pkg/engine/world"
)

func TestKindSettings(t *testing.T) {
	tests := []struct {
		kind   Kind
		solid  bool
		opaque bool
		pickup bool
	}{
		{KindNone, false, false, false},
		{KindWall, true, true, false},
		{KindGate, true, true, false},
		{KindDoor, true, true, false},
		{KindKey, false, false, true},
		{KindPortal, false, false, false},
		{KindGold, false, false, true},
		{KindPotion, false, false, true},
		{KindPlayer, true, false, false},
		{KindEnemy, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.solid, tt.kind.IsSolid(), "solid")
			assert.Equal(t, tt.opaque, tt.kind.IsOpaque(), "opaque")
			assert.Equal(t, tt.pickup, tt.kind.IsPickup(), "pickup")
		})
	}
}

func TestTakeDamage(t *testing.T) {
	e := NewEnemy(Zombie, world.Coord{})
	assert.Equal(t, 6, e.Health)

	assert.Equal(t, 0, e.TakeDamage(1), "DEF absorbs a single point")
	assert.Equal(t, 3, e.TakeDamage(4))
	assert.Equal(t, 3, e.Health)

	assert.Equal(t, 3, e.TakeDamage(100), "damage is clamped to remaining health")
	assert.Equal(t, 0, e.Health)
	assert.True(t, e.IsDead())
}

func TestHealCapsAtMax(t *testing.T) {
	p := NewPlayer(world.Coord{})
	p.Health = 3
	assert.Equal(t, 5, p.Heal(5))
	assert.Equal(t, 8, p.Health)
	assert.Equal(t, 2, p.Heal(5))
	assert.Equal(t, p.Stats.HP, p.Health)
}

func TestAttackAlwaysHitsAtFullAccuracy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	attacker := newActor(KindPlayer, world.Coord{}, Stats{HP: 5, STR: 1, DEF: 0, ACC: 100}, 7)

	for i := 0; i < 50; i++ {
		rat := NewEnemy(Rat, world.Coord{X: 1})
		rat.Health = 1
		hit, dmg := attacker.Attack(&rat.Actor, rng)
		assert.True(t, hit)
		assert.Equal(t, 1, dmg)
		assert.Equal(t, 0, rat.Health)
	}
}

func TestAttackNeverHitsAtZeroAccuracy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	attacker := newActor(KindEnemy, world.Coord{}, Stats{HP: 5, STR: 3, ACC: 0}, 7)
	target := NewPlayer(world.Coord{})

	for i := 0; i < 50; i++ {
		hit, _ := attacker.Attack(&target.Actor, rng)
		assert.False(t, hit)
	}
	assert.Equal(t, target.Stats.HP, target.Health)
}

func TestGainExpLevelsUp(t *testing.T) {
	p := NewPlayer(world.Coord{})
	p.Health = 1

	assert.False(t, p.GainExp(9))
	assert.True(t, p.GainExp(3))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 2, p.Exp)
	assert.Equal(t, 20, p.MaxExp)
	assert.Equal(t, PlayerStats.HP+4, p.Stats.HP)
	assert.Equal(t, p.Stats.HP, p.Health)
}

func TestEnemyReadyThrottle(t *testing.T) {
	rat := NewEnemy(Rat, world.Coord{})
	for i := 0; i < 4; i++ {
		assert.True(t, rat.Ready(), "speed 1 acts every tick")
	}

	zombie := NewEnemy(Zombie, world.Coord{})
	var acted []bool
	for i := 0; i < 4; i++ {
		acted = append(acted, zombie.Ready())
	}
	assert.Equal(t, []bool{false, true, false, true}, acted)
}
