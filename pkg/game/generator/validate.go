package generator

import (
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
)

// Errors reported by Validate
var (
	ErrStartOutside  = errors.New("start position is not on open ground")
	ErrPortalCount   = errors.New("map must have exactly one portal")
	ErrDisconnected  = errors.New("map has unreachable cells")
	ErrEnemyMisplace = errors.New("enemy spawn is not walkable")
)

// passagePath implements paths.Pather over every non-wall tile. Gates and
// doors count as passable because the player can open them.
type passagePath struct {
	tiles *world.Grid[entities.Kind]
	nbs   paths.Neighbors
}

func (pp *passagePath) Neighbors(p gruid.Point) []gruid.Point {
	return pp.nbs.Cardinal(p, pp.passable)
}

func (pp *passagePath) passable(p gruid.Point) bool {
	c := world.Coord{X: p.X, Y: p.Y}
	return pp.tiles.IsValidPosition(c) && pp.tiles.Get(c) != entities.KindWall
}

// Validate checks the structural guarantees of a generated map: the start is
// open ground, there is one portal, enemies stand on walkable cells and every
// non-wall cell can be reached from the start.
func Validate(info MapInfo) error {
	tiles := info.Tiles
	if tiles == nil {
		return fmt.Errorf("%w: no tiles", ErrStartOutside)
	}

	if !tiles.IsValidPosition(info.Start) || tiles.Get(info.Start).IsSolid() {
		return fmt.Errorf("%w: %v", ErrStartOutside, info.Start)
	}

	portals := 0
	tiles.ForEachCell(func(_ world.Coord, k entities.Kind) {
		if k == entities.KindPortal {
			portals++
		}
	})
	if portals != 1 {
		return fmt.Errorf("%w: found %d", ErrPortalCount, portals)
	}

	for _, e := range info.Enemies {
		k := tiles.Get(e.Position)
		if !tiles.IsValidPosition(e.Position) || (k != entities.KindNone && !k.IsPickup() && k != entities.KindPortal) {
			return fmt.Errorf("%w: %v at %v", ErrEnemyMisplace, e.Type, e.Position)
		}
	}

	pp := &passagePath{tiles: tiles}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, tiles.Width(), tiles.Height()))
	pr.CCMap(pp, gruid.Point{X: info.Start.X, Y: info.Start.Y})

	unreachable := 0
	var first world.Coord
	tiles.ForEachCell(func(p world.Coord, k entities.Kind) {
		if k == entities.KindWall {
			return
		}
		if pr.CCMapAt(gruid.Point{X: p.X, Y: p.Y}) == -1 {
			if unreachable == 0 {
				first = p
			}
			unreachable++
		}
	})
	if unreachable > 0 {
		return fmt.Errorf("%w: %d cells, first at %v", ErrDisconnected, unreachable, first)
	}

	return nil
}
