package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/state"
	gameworld "dungeoncrawl/pkg/game/world"
)

func testGame() *state.Game {
	tiles := world.NewGrid[entities.Kind](20, 10)
	tiles.Set(world.Coord{X: 0, Y: 0}, entities.KindWall)
	tiles.Set(world.Coord{X: 3, Y: 0}, entities.KindDoor)
	tiles.Set(world.Coord{X: 4, Y: 0}, entities.KindKey)

	g := state.NewGame(1)
	g.Map = gameworld.NewMap("Test", tiles)
	g.Player = entities.NewPlayer(world.Coord{X: 1, Y: 0})
	g.Enemies = []*entities.Enemy{entities.NewEnemy(entities.Zombie, world.Coord{X: 2, Y: 0})}

	lit := mapset.New[world.Coord]()
	for x := 0; x <= 4; x++ {
		lit.Put(world.Coord{X: x, Y: 0})
	}
	g.Map.MarkSeen(lit)
	g.Lit = lit
	return g
}

func TestCellAt_Lit(t *testing.T) {
	g := testGame()

	assert.Equal(t, Cell{'#', StyleWall}, CellAt(g, world.Coord{X: 0, Y: 0}))
	assert.Equal(t, Cell{'@', StylePlayer}, CellAt(g, world.Coord{X: 1, Y: 0}))
	assert.Equal(t, Cell{'Z', StyleEnemy}, CellAt(g, world.Coord{X: 2, Y: 0}))
	assert.Equal(t, Cell{'+', StyleDoorway}, CellAt(g, world.Coord{X: 3, Y: 0}))
	assert.Equal(t, Cell{'=', StyleItem}, CellAt(g, world.Coord{X: 4, Y: 0}))
}

func TestCellAt_RememberedHidesActors(t *testing.T) {
	g := testGame()
	g.Lit = mapset.New[world.Coord]()

	assert.Equal(t, Cell{'.', StyleRemembered}, CellAt(g, world.Coord{X: 2, Y: 0}))
	assert.Equal(t, Cell{'+', StyleRemembered}, CellAt(g, world.Coord{X: 3, Y: 0}))
}

func TestCellAt_UnseenAndOutside(t *testing.T) {
	g := testGame()

	assert.Equal(t, blank, CellAt(g, world.Coord{X: 5, Y: 5}))
	assert.Equal(t, blank, CellAt(g, world.Coord{X: -1, Y: 0}))
	assert.Equal(t, blank, CellAt(g, world.Coord{X: 20, Y: 0}))
}

func TestViewport(t *testing.T) {
	g := testGame()

	// map narrower than the window is centred
	assert.Equal(t, world.Coord{X: -5, Y: 0}, Viewport(g, 10, 30))

	// clamped at the top-left edge
	assert.Equal(t, world.Coord{X: 0, Y: 0}, Viewport(g, 5, 9))

	g.Player.Position = world.Coord{X: 19, Y: 9}
	assert.Equal(t, world.Coord{X: 11, Y: 5}, Viewport(g, 5, 9))

	g.Player.Position = world.Coord{X: 10, Y: 5}
	assert.Equal(t, world.Coord{X: 6, Y: 3}, Viewport(g, 5, 9))
}
