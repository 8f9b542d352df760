package catalog

import (
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/entities"
)

type patternPath struct {
	bp  *Blueprint
	nbs paths.Neighbors
}

func (pp *patternPath) Neighbors(p gruid.Point) []gruid.Point {
	return pp.nbs.Cardinal(p, func(q gruid.Point) bool {
		return pp.bp.TileAt(world.Coord{X: q.X, Y: q.Y}) != entities.KindWall &&
			q.X > 0 && q.Y > 0 && q.X < pp.bp.Width()-1 && q.Y < pp.bp.Height()-1
	})
}

func TestBlueprintsValidate(t *testing.T) {
	for i, bp := range All() {
		if err := bp.Validate(); err != nil {
			t.Errorf("blueprint %d (%v): %v", i, bp.Size, err)
		}
	}
}

func TestBlueprintsFullyConnected(t *testing.T) {
	for i, bp := range All() {
		pr := paths.NewPathRange(gruid.NewRange(0, 0, bp.Width(), bp.Height()))
		pr.CCMap(&patternPath{bp: bp}, gruid.Point{X: bp.Spawn.X, Y: bp.Spawn.Y})

		for y, row := range bp.Pattern {
			for x, ch := range row {
				if ch == '#' {
					continue
				}
				if pr.CCMapAt(gruid.Point{X: x, Y: y}) == -1 {
					t.Errorf("blueprint %d (%v): cell %d,%d unreachable from spawn", i, bp.Size, x, y)
				}
			}
		}
	}
}

func TestEverySizeClassUpToLargeHasBlueprints(t *testing.T) {
	for _, s := range []SizeClass{Mini, Small, Mid, Large} {
		found := false
		for _, bp := range All() {
			if bp.Size == s {
				found = true
			}
		}
		if !found {
			t.Errorf("no blueprint of size %v", s)
		}
	}
	if got, all := len(UpTo(Jumbo)), len(All()); got != all {
		t.Errorf("UpTo(Jumbo) = %d blueprints, want %d", got, all)
	}
	for _, bp := range UpTo(Mini) {
		if bp.Size != Mini {
			t.Errorf("UpTo(Mini) returned %v", bp.Size)
		}
	}
}

func TestValidateRejectsBadBlueprints(t *testing.T) {
	tests := []struct {
		name string
		bp   Blueprint
	}{
		{"too small", Blueprint{Pattern: []string{"##", "##"}}},
		{"ragged", Blueprint{Pattern: []string{"####", "#..#", "###"}, Spawn: world.Coord{X: 1, Y: 1}}},
		{"open border", Blueprint{Pattern: []string{"#.##", "#..#", "####"}, Spawn: world.Coord{X: 1, Y: 1}}},
		{"spawn in wall", Blueprint{Pattern: []string{"####", "#..#", "####"}, Spawn: world.Coord{X: 0, Y: 0}}},
		{"item outside", Blueprint{Pattern: []string{"####", "#..#", "####"}, Spawn: world.Coord{X: 1, Y: 1}, Item: &world.Coord{X: 9, Y: 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bp.Validate()
			if !errors.Is(err, ErrInvalidBlueprint) {
				t.Errorf("Validate() = %v, want ErrInvalidBlueprint", err)
			}
		})
	}
}
