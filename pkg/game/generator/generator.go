package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/catalog"
	"dungeoncrawl/pkg/game/entities"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(size MapSize, rng *rand.Rand) MapInfo
	Name() string
}

// Available generators
var (
	Rooms = New(DefaultConfig())
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Rooms

// MapSize is the side length class of a square map
type MapSize int

const (
	XS MapSize = iota
	S
	M
	L
	XL
	XXL
)

var mapSizes = []struct {
	name    string
	dim     int
	maxRoom catalog.SizeClass
}{
	XS:  {"xs", 24, catalog.Small},
	S:   {"s", 32, catalog.Mid},
	M:   {"m", 48, catalog.Large},
	L:   {"l", 64, catalog.Jumbo},
	XL:  {"xl", 92, catalog.Jumbo},
	XXL: {"xxl", 128, catalog.Jumbo},
}

// AllMapSizes returns every map size, smallest first
func AllMapSizes() []MapSize {
	return []MapSize{XS, S, M, L, XL, XXL}
}

// Dimension returns the width and height of maps of this size
func (s MapSize) Dimension() int {
	if s < XS || s > XXL {
		return mapSizes[XS].dim
	}
	return mapSizes[s].dim
}

// MaxRoom returns the largest room size class allowed at this map size
func (s MapSize) MaxRoom() catalog.SizeClass {
	if s < XS || s > XXL {
		return mapSizes[XS].maxRoom
	}
	return mapSizes[s].maxRoom
}

func (s MapSize) String() string {
	if s < XS || s > XXL {
		return "unknown"
	}
	return strings.ToUpper(mapSizes[s].name)
}

// ParseMapSize parses a size name such as "xs" or "XL"
func ParseMapSize(name string) (MapSize, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, s := range mapSizes {
		if s.name == name {
			return MapSize(i), nil
		}
	}
	return XS, fmt.Errorf("unknown map size %q", name)
}

// EnemySpawn is an enemy to create when the level loads
type EnemySpawn struct {
	Type     entities.EnemyType
	Position world.Coord
}

// MapInfo is the output of a generator
type MapInfo struct {
	Size    MapSize
	Tiles   *world.Grid[entities.Kind]
	Start   world.Coord
	Enemies []EnemySpawn
}
