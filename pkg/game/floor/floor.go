// Package floor maps dungeon depth to the size of the generated map and to
// the theme and title shown to the player. Deeper floors are larger.
package floor

import (
	"github.com/leonelquinteros/gotext"

	"dungeoncrawl/pkg/game/generator"
)

// Theme is the flavour of a floor. Themes cycle as the player descends.
type Theme int

const (
	Cellar Theme = iota
	Sewers
	Catacombs
	Crypt
	Caverns
	Abyss
)

// themeCount is the number of themes (for cycling)
const themeCount = 6

// ThemeFor returns the theme of the given floor level (1-based)
func ThemeFor(level int) Theme {
	if level <= 0 {
		return Cellar
	}
	return Theme((level - 1) % themeCount)
}

// Name returns the translated theme name. Uses gotext.Get with constant
// strings so extraction tools can find them.
func (t Theme) Name() string {
	switch t {
	case Sewers:
		return gotext.Get("Sewers")
	case Catacombs:
		return gotext.Get("Catacombs")
	case Crypt:
		return gotext.Get("Crypt")
	case Caverns:
		return gotext.Get("Caverns")
	case Abyss:
		return gotext.Get("Abyss")
	default:
		return gotext.Get("Cellar")
	}
}

// SizeFor returns the map size of the given floor level. Level 1 is the
// smallest map and every level after grows one size until the largest.
func SizeFor(level int) generator.MapSize {
	sizes := generator.AllMapSizes()
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sizes) {
		idx = len(sizes) - 1
	}
	return sizes[idx]
}

// Title is the name of a floor as shown in the status line
func Title(level int) string {
	if level < 1 {
		level = 1
	}
	return gotext.Get("Floor %d: %s", level, ThemeFor(level).Name())
}
