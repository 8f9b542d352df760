package generator

import (
	"sort"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/catalog"
)

// PlacedRoom is a blueprint instantiated at an absolute position
type PlacedRoom struct {
	ID        int
	Blueprint *catalog.Blueprint
	Pos       world.Coord
	Distance  int
	Vault     bool
}

func newPlacedRoom(id int, bp *catalog.Blueprint, pos world.Coord) *PlacedRoom {
	return &PlacedRoom{ID: id, Blueprint: bp, Pos: pos}
}

// Width returns the room width including walls
func (r *PlacedRoom) Width() int {
	return r.Blueprint.Width()
}

// Height returns the room height including walls
func (r *PlacedRoom) Height() int {
	return r.Blueprint.Height()
}

// Abs converts a blueprint-relative point to a map position
func (r *PlacedRoom) Abs(p world.Coord) world.Coord {
	return r.Pos.Add(p)
}

// Spawn returns the absolute spawn point
func (r *PlacedRoom) Spawn() world.Coord {
	return r.Abs(r.Blueprint.Spawn)
}

// Item returns the absolute item point, if the blueprint has one
func (r *PlacedRoom) Item() (world.Coord, bool) {
	if r.Blueprint.Item == nil {
		return world.Coord{}, false
	}
	return r.Abs(*r.Blueprint.Item), true
}

// floorCells returns the absolute floor positions of the room's pattern in
// row order
func (r *PlacedRoom) floorCells() []world.Coord {
	var cells []world.Coord
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if p := r.Abs(world.Coord{X: x, Y: y}); r.IsFloor(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Contains reports whether p lies inside the room's bounds
func (r *PlacedRoom) Contains(p world.Coord) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.Width() && p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.Height()
}

// IsFloor reports whether the room's own pattern has floor at map position p
func (r *PlacedRoom) IsFloor(p world.Coord) bool {
	return r.Blueprint.IsFloor(p.Sub(r.Pos))
}

// Overlaps is an AABB test with the outer ring of each room ignored, so
// rooms may share a wall line but not floor.
func (r *PlacedRoom) Overlaps(o *PlacedRoom) bool {
	return r.Pos.X < o.Pos.X+o.Width()-1 &&
		r.Pos.X+r.Width() > o.Pos.X+1 &&
		r.Pos.Y < o.Pos.Y+o.Height()-1 &&
		r.Pos.Y+r.Height() > o.Pos.Y+1
}

// sharedWall returns the cells of the wall line shared by r and o, in
// increasing order, and the unit step that crosses from r into o.
func (r *PlacedRoom) sharedWall(o *PlacedRoom) ([]world.Coord, world.Coord) {
	rRight, rBottom := r.Pos.X+r.Width()-1, r.Pos.Y+r.Height()-1
	oRight, oBottom := o.Pos.X+o.Width()-1, o.Pos.Y+o.Height()-1

	vertical := func(x int) []world.Coord {
		var cells []world.Coord
		for y := max(r.Pos.Y, o.Pos.Y); y <= min(rBottom, oBottom); y++ {
			cells = append(cells, world.Coord{X: x, Y: y})
		}
		return cells
	}
	horizontal := func(y int) []world.Coord {
		var cells []world.Coord
		for x := max(r.Pos.X, o.Pos.X); x <= min(rRight, oRight); x++ {
			cells = append(cells, world.Coord{X: x, Y: y})
		}
		return cells
	}

	switch {
	case rRight == o.Pos.X:
		return vertical(o.Pos.X), world.Right
	case oRight == r.Pos.X:
		return vertical(r.Pos.X), world.Left
	case rBottom == o.Pos.Y:
		return horizontal(o.Pos.Y), world.Down
	case oBottom == r.Pos.Y:
		return horizontal(r.Pos.Y), world.Up
	}
	return nil, world.Zero
}

// RoomGraph is the adjacency of carved connections, keyed by room id
type RoomGraph map[int][]int

// Connect adds an undirected edge
func (g RoomGraph) Connect(a, b int) {
	if g.Connected(a, b) {
		return
	}
	g[a] = append(g[a], b)
	g[b] = append(g[b], a)
}

// Connected reports whether a and b share an edge
func (g RoomGraph) Connected(a, b int) bool {
	for _, n := range g[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Degree returns the number of connections of a room
func (g RoomGraph) Degree(id int) int {
	return len(g[id])
}

// Reachable returns the ids reachable from start, sorted
func (g RoomGraph) Reachable(start int) []int {
	seen := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g[cur] {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
