package world

import (
	"testing"
)

// layoutMap is a test map built from rows of text: '#' is a wall, anything
// else is open floor.
type layoutMap struct {
	grid *Grid[bool]
}

func newLayoutMap(rows ...string) *layoutMap {
	g := NewGrid[bool](len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			g.Set(Coord{x, y}, ch == '#')
		}
	}
	return &layoutMap{grid: g}
}

func (m *layoutMap) IsPositionOutsideMap(p Coord) bool { return !m.grid.IsValidPosition(p) }
func (m *layoutMap) IsOpaque(p Coord) bool             { return m.grid.Get(p) }
func (m *layoutMap) IsPositionWalkable(p Coord) bool {
	return m.grid.IsValidPosition(p) && !m.grid.Get(p)
}

func assertValidPath(t *testing.T, path []Coord, from, to Coord, m *layoutMap) {
	t.Helper()
	if path == nil {
		t.Fatalf("no path from %v to %v", from, to)
	}
	if path[0] != from {
		t.Errorf("path starts at %v, want %v", path[0], from)
	}
	if path[len(path)-1] != to {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], to)
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].DistanceTo(path[i]) != 1 {
			t.Errorf("steps %v -> %v are not cardinal neighbours", path[i-1], path[i])
		}
		if !m.IsPositionWalkable(path[i]) {
			t.Errorf("path crosses unwalkable %v", path[i])
		}
	}
}

func TestFindPath_OpenRoom(t *testing.T) {
	m := newLayoutMap(
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	)
	from, to := Coord{1, 1}, Coord{5, 3}
	path := FindPath(from, to, m)
	assertValidPath(t, path, from, to, m)
	if len(path) != 7 {
		t.Errorf("len(path) = %d, want 7 in an open room", len(path))
	}
}

func TestFindPath_AroundWall(t *testing.T) {
	m := newLayoutMap(
		"#######",
		"#..#..#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	from, to := Coord{1, 1}, Coord{5, 1}
	assertValidPath(t, FindPath(from, to, m), from, to, m)
}

func TestFindPath_SameCell(t *testing.T) {
	m := newLayoutMap("...")
	path := FindPath(Coord{1, 0}, Coord{1, 0}, m)
	if len(path) != 1 || path[0] != (Coord{1, 0}) {
		t.Errorf("FindPath to self = %v, want single cell", path)
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	m := newLayoutMap(
		"#####",
		"#.#.#",
		"#####",
	)
	if path := FindPath(Coord{1, 1}, Coord{3, 1}, m); path != nil {
		t.Errorf("FindPath through wall = %v, want nil", path)
	}
}

func TestFindPath_CostCap(t *testing.T) {
	row := ""
	for i := 0; i < 20; i++ {
		row += "."
	}
	m := newLayoutMap(row)

	tests := []struct {
		to      int
		wantNil bool
	}{
		{to: 15, wantNil: false},
		{to: 16, wantNil: true},
		{to: 19, wantNil: true},
	}
	for _, tt := range tests {
		path := FindPath(Coord{0, 0}, Coord{tt.to, 0}, m)
		if (path == nil) != tt.wantNil {
			t.Errorf("FindPath(0 -> %d) nil = %v, want %v", tt.to, path == nil, tt.wantNil)
		}
	}
}
