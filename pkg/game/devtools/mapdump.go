// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
	"dungeoncrawl/pkg/game/generator"
	"dungeoncrawl/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// glyphStyles colour the ASCII dump for terminals
var glyphStyles = map[rune]color.Style{
	entities.KindWall.Glyph():   {color.FgGray},
	entities.KindGate.Glyph():   {color.FgYellow},
	entities.KindDoor.Glyph():   {color.FgYellow, color.OpBold},
	entities.KindKey.Glyph():    {color.FgBlue, color.OpBold},
	entities.KindPortal.Glyph(): {color.FgGreen, color.OpBold},
	entities.KindGold.Glyph():   {color.FgYellow},
	entities.KindPotion.Glyph(): {color.FgMagenta},
	entities.KindPlayer.Glyph(): {color.FgGreen, color.BgBlack, color.OpBold},
}

// FormatInfo draws a generated map as ASCII, one row per line. The start
// is drawn as the player and spawns as their enemy glyphs.
func FormatInfo(info generator.MapInfo) string {
	overlay := map[world.Coord]rune{info.Start: entities.KindPlayer.Glyph()}
	for _, e := range info.Enemies {
		overlay[e.Position] = e.Type.Info().Glyph
	}
	return formatTiles(info.Tiles, func(p world.Coord, k entities.Kind) rune {
		if r, ok := overlay[p]; ok {
			return r
		}
		return k.Glyph()
	})
}

func formatTiles(tiles *world.Grid[entities.Kind], glyph func(world.Coord, entities.Kind) rune) string {
	var sb strings.Builder
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			p := world.Coord{X: x, Y: y}
			sb.WriteRune(glyph(p, tiles.Get(p)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Colorize adds terminal colours to an ASCII dump
func Colorize(ascii string) string {
	var sb strings.Builder
	for _, r := range ascii {
		if s, ok := glyphStyles[r]; ok {
			sb.WriteString(s.Sprint(string(r)))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			sb.WriteString(color.Red.Sprint(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// WriteMapDump writes a full debug dump of the current level: metadata,
// legend, the map as the player knows it, the full map and every actor.
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Map == nil {
		return fmt.Errorf("no map")
	}

	tiles := g.Map.Tiles()
	actors := map[world.Coord]rune{}
	for _, e := range g.Enemies {
		if !e.IsDead() {
			actors[e.Position] = e.Glyph()
		}
	}
	actors[g.Player.Position] = entities.KindPlayer.Glyph()

	fmt.Fprintln(w, "=== MAP DUMP DEBUG ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "title: %s\n", g.Map.Title)
	fmt.Fprintf(w, "level: %d\n", g.Level)
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "turns: %d\n", g.Turns)
	fmt.Fprintf(w, "width: %d\n", tiles.Width())
	fmt.Fprintf(w, "height: %d\n", tiles.Height())
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)")
	fmt.Fprintf(w, "player: %v\n", g.Player.Position)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	var legend []string
	for k := entities.KindNone; k <= entities.KindPlayer; k++ {
		legend = append(legend, fmt.Sprintf("%c = %s", k.Glyph(), strings.ToLower(k.String())))
	}
	for _, t := range entities.EnemyTypes() {
		legend = append(legend, fmt.Sprintf("%c = %s", t.Info().Glyph, strings.ToLower(t.String())))
	}
	fmt.Fprintln(w, strings.Join(legend, "  "))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (seen cells only; unseen = space) ---")
	fmt.Fprint(w, formatTiles(tiles, func(p world.Coord, k entities.Kind) rune {
		if !g.Map.IsSeen(p) {
			return ' '
		}
		if r, ok := actors[p]; ok && g.IsLit(p) {
			return r
		}
		return k.Glyph()
	}))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	fmt.Fprint(w, formatTiles(tiles, func(p world.Coord, k entities.Kind) rune {
		if r, ok := actors[p]; ok {
			return r
		}
		return k.Glyph()
	}))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Enemies ---")
	if len(g.Enemies) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range g.Enemies {
		fmt.Fprintf(w, "  type: %s pos: %v hp: %d/%d state: %s\n", e.Type, e.Position, e.Health, e.Stats.HP, e.State)
	}
	fmt.Fprintln(w, "")

	p := g.Player
	fmt.Fprintln(w, "--- Player ---")
	fmt.Fprintf(w, "  hp: %d/%d level: %d exp: %d/%d keys: %d gold: %d\n",
		p.Health, p.Stats.HP, p.Level, p.Exp, p.MaxExp, p.Keys, p.Gold)
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

// DumpMapToFile writes WriteMapDump's output to map.txt in the working
// directory and returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
