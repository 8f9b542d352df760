// Package ai drives enemies: each enemy idles until it sees the player, then
// chases and attacks until the player gets far enough away.
package ai

//go:generate mockgen -destination=mock/mock_notifier.go -package=aimock dungeoncrawl/pkg/game/ai Notifier

import (
	"log/slog"
	"math/rand"
	"sort"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	gameworld "dungeoncrawl/pkg/game/world"
)

// DisengageDistance is how far the player must get before a chasing enemy
// gives up.
const DisengageDistance = 8

// Notifier receives the outcome of enemy attacks
type Notifier interface {
	Hit(attacker, target string, damage int)
	Miss(attacker, target string)
}

// Context is everything an enemy needs to decide its turn. Enemies is the
// live list, so an enemy sees the positions earlier enemies moved to.
type Context struct {
	Map     *gameworld.Map
	Player  *entities.Player
	Enemies []*entities.Enemy
	Rng     *rand.Rand
	Notify  Notifier
}

// Tick advances one enemy by one turn.
func Tick(ctx *Context, e *entities.Enemy) {
	if e.IsDead() || ctx.Player == nil {
		return
	}

	target := ctx.Player.Position
	dist := e.Position.DistanceTo(target)

	switch e.State {
	case entities.StateIdle:
		if world.HasLineOfSight(e.Position, target, e.Vision, ctx.Map) {
			e.State = entities.StateChase
			slog.Debug("enemy spotted player", "enemy", e.Type.String(), "at", e.Position.String())
		}

	case entities.StateChase:
		if dist > DisengageDistance {
			e.State = entities.StateIdle
			slog.Debug("enemy lost player", "enemy", e.Type.String(), "at", e.Position.String())
			return
		}
		if !e.Ready() {
			return
		}
		if dist <= 1 {
			attack(ctx, e)
			return
		}
		step(ctx, e)
	}
}

// TickAll runs every living enemy in list order
func TickAll(ctx *Context) {
	for _, e := range ctx.Enemies {
		Tick(ctx, e)
	}
}

func attack(ctx *Context, e *entities.Enemy) {
	hit, dmg := e.Attack(&ctx.Player.Actor, ctx.Rng)
	if ctx.Notify == nil {
		return
	}
	if hit {
		ctx.Notify.Hit(e.Type.String(), "player", dmg)
	} else {
		ctx.Notify.Miss(e.Type.String(), "player")
	}
}

// step moves e one tile towards a free cell next to the player.
func step(ctx *Context, e *entities.Enemy) {
	goal := approachTarget(ctx, e)
	path := world.FindPath(e.Position, goal, ctx.Map)
	if len(path) < 2 {
		return
	}

	next := path[1]
	if next == ctx.Player.Position || occupied(ctx, next, e) {
		return
	}
	e.Position = next
}

// approachTarget picks the walkable, unoccupied neighbour of the player
// closest to e, or the player's own cell when every neighbour is taken.
func approachTarget(ctx *Context, e *entities.Enemy) world.Coord {
	candidates := ctx.Player.Position.Adjacent()
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceTo(e.Position) < candidates[j].DistanceTo(e.Position)
	})

	for _, c := range candidates {
		if ctx.Map.IsPositionWalkable(c) && !occupied(ctx, c, e) {
			return c
		}
	}
	return ctx.Player.Position
}

// occupied reports whether a living enemy other than self stands on p
func occupied(ctx *Context, p world.Coord, self *entities.Enemy) bool {
	for _, o := range ctx.Enemies {
		if o != self && !o.IsDead() && o.Position == p {
			return true
		}
	}
	return false
}
