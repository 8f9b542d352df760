package renderer

import (
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/state"
	gameworld "dungeoncrawl/pkg/game/world"
)

// Cell is what a backend should draw at one map position
type Cell struct {
	Glyph rune
	Style TextStyle
}

// blank is drawn for unseen cells and anything outside the map
var blank = Cell{Glyph: ' ', Style: StyleNormal}

// CellAt decides how to draw p. Unseen cells are blank. Remembered cells
// show their tile but never actors. Lit cells show the player and living
// enemies on top of the tile.
func CellAt(g *state.Game, p world.Coord) Cell {
	if g.Map == nil || g.Map.IsPositionOutsideMap(p) {
		return blank
	}

	switch g.Map.RenderState(p, g.Lit) {
	case gameworld.Unseen:
		return blank
	case gameworld.Seen:
		return Cell{Glyph: g.Map.Tile(p).Glyph(), Style: StyleRemembered}
	}

	if g.Player != nil && g.Player.Position == p {
		return Cell{Glyph: entities.KindPlayer.Glyph(), Style: StylePlayer}
	}
	if e := g.EnemyAt(p); e != nil {
		return Cell{Glyph: e.Glyph(), Style: StyleEnemy}
	}

	k := g.Map.Tile(p)
	return Cell{Glyph: k.Glyph(), Style: tileStyle(k)}
}

func tileStyle(k entities.Kind) TextStyle {
	switch {
	case k == entities.KindNone:
		return StyleFloor
	case k == entities.KindWall:
		return StyleWall
	case k.IsDoorway():
		return StyleDoorway
	case k == entities.KindPortal:
		return StylePortal
	case k.IsPickup():
		return StyleItem
	}
	return StyleNormal
}

// Viewport returns the top-left map coordinate of a rows x cols window
// centred on the player and clamped to the map where the map is larger
// than the window.
func Viewport(g *state.Game, rows, cols int) world.Coord {
	origin := world.Coord{
		X: g.Player.Position.X - cols/2,
		Y: g.Player.Position.Y - rows/2,
	}
	origin.X = clampOrigin(origin.X, cols, g.Map.Width())
	origin.Y = clampOrigin(origin.Y, rows, g.Map.Height())
	return origin
}

func clampOrigin(v, window, size int) int {
	if size <= window {
		return (size - window) / 2
	}
	return min(max(v, 0), size-window)
}
