package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
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

func mapFromRows(rows ...string) *Map {
	g := world.NewGrid[entities.Kind](len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			g.Set(world.Coord{X: x, Y: y}, glyphKinds[ch])
		}
	}
	return NewMap("test", g)
}

func TestNewMapIndexes(t *testing.T) {
	m := mapFromRows(
		"#####",
		"#=.$#",
		"#-&>#",
		"#####",
	)

	assert.True(t, m.IsSolid(world.Coord{X: 0, Y: 0}))
	assert.True(t, m.IsOpaque(world.Coord{X: 1, Y: 2}), "gate blocks sight")
	assert.False(t, m.IsSolid(world.Coord{X: 1, Y: 1}), "key is not solid")
	assert.Equal(t, entities.KindPortal, m.GetAtPosition(world.Coord{X: 3, Y: 2}).Kind)
	assert.Nil(t, m.GetAtPosition(world.Coord{X: 2, Y: 1}))
	assert.Equal(t, []world.Coord{{X: 3, Y: 2}}, m.Find(entities.KindPortal))
}

func TestPointQueries(t *testing.T) {
	m := mapFromRows(
		"###",
		"#=#",
		"#.#",
		"#>#",
		"###",
	)

	tests := []struct {
		name     string
		pos      world.Coord
		outside  bool
		empty    bool
		walkable bool
	}{
		{"wall", world.Coord{X: 0, Y: 0}, false, false, false},
		{"key", world.Coord{X: 1, Y: 1}, false, false, true},
		{"floor", world.Coord{X: 1, Y: 2}, false, true, true},
		{"portal", world.Coord{X: 1, Y: 3}, false, false, false},
		{"negative", world.Coord{X: -1, Y: 1}, true, false, false},
		{"past edge", world.Coord{X: 3, Y: 1}, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.outside, m.IsPositionOutsideMap(tt.pos), "outside")
			assert.Equal(t, tt.empty, m.IsPositionEmpty(tt.pos), "empty")
			assert.Equal(t, tt.walkable, m.IsPositionWalkable(tt.pos), "walkable")
		})
	}
}

func TestRemoveObject(t *testing.T) {
	m := mapFromRows("#$#")
	gold := m.GetAtPosition(world.Coord{X: 1, Y: 0})
	require.NotNil(t, gold)

	m.RemoveObject(gold)

	assert.Nil(t, m.GetAtPosition(gold.Position))
	assert.True(t, m.IsPositionEmpty(gold.Position))
	assert.Equal(t, entities.KindNone, m.Tile(gold.Position))

	m.RemoveObject(gold)
	m.RemoveObject(nil)
	assert.NotNil(t, m.GetAtPosition(world.Coord{X: 0, Y: 0}), "repeat removal leaves other objects alone")
}

func TestNewMapCopiesTiles(t *testing.T) {
	g := world.NewGrid[entities.Kind](2, 1)
	g.Set(world.Coord{X: 0, Y: 0}, entities.KindGold)
	m := NewMap("copy", g)

	m.RemoveObject(m.GetAtPosition(world.Coord{X: 0, Y: 0}))
	assert.Equal(t, entities.KindGold, g.Get(world.Coord{X: 0, Y: 0}))
}

func TestOpenDoorWidensDoorway(t *testing.T) {
	m := mapFromRows(
		"#####",
		"#...#",
		"##--#",
		"#...#",
		"#####",
	)
	gate := m.GetAtPosition(world.Coord{X: 2, Y: 2})
	require.NotNil(t, gate)

	assert.True(t, m.OpenDoor(gate))
	assert.True(t, m.IsPositionEmpty(world.Coord{X: 2, Y: 2}))
	assert.True(t, m.IsPositionEmpty(world.Coord{X: 3, Y: 2}))
	assert.False(t, m.IsOpaque(world.Coord{X: 3, Y: 2}))
	assert.NotNil(t, m.GetAtPosition(world.Coord{X: 1, Y: 2}), "walls stay")
}

func TestOpenDoorRejectsNonDoorways(t *testing.T) {
	m := mapFromRows("#+#")
	wall := m.GetAtPosition(world.Coord{X: 0, Y: 0})
	assert.False(t, m.OpenDoor(wall))
	assert.NotNil(t, m.GetAtPosition(wall.Position))
	assert.False(t, m.OpenDoor(nil))
}

func TestSeenMapRenderStates(t *testing.T) {
	m := mapFromRows("....")
	lit := mapset.New[world.Coord]()
	lit.Put(world.Coord{X: 0, Y: 0})
	lit.Put(world.Coord{X: 1, Y: 0})
	m.MarkSeen(lit)

	lit2 := mapset.New[world.Coord]()
	lit2.Put(world.Coord{X: 1, Y: 0})

	assert.Equal(t, Seen, m.RenderState(world.Coord{X: 0, Y: 0}, lit2))
	assert.Equal(t, Lit, m.RenderState(world.Coord{X: 1, Y: 0}, lit2))
	assert.Equal(t, Unseen, m.RenderState(world.Coord{X: 3, Y: 0}, lit2))
	assert.True(t, m.IsSeen(world.Coord{X: 0, Y: 0}))
	assert.False(t, m.IsSeen(world.Coord{X: 2, Y: 0}))
}
