package generator

import (
	"log/slog"
	"math/rand"
	"sort"

	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/catalog"
	"dungeoncrawl/pkg/game/entities"
)

// gateOffset is where along a shared wall the connecting gate is punched
const gateOffset = 2

// RoomGenerator grows a graph of catalog rooms outwards from a random
// starting room. Neighbouring rooms share a wall line with a gate in it.
type RoomGenerator struct {
	Config Config
}

// New creates a room generator with the given tuning
func New(cfg Config) *RoomGenerator {
	return &RoomGenerator{Config: cfg}
}

// Name returns the name of this generator
func (g *RoomGenerator) Name() string {
	return "Room Graph"
}

// Generate builds a map. The same rng state always yields the same map.
func (g *RoomGenerator) Generate(size MapSize, rng *rand.Rand) MapInfo {
	return g.build(size, rng).info()
}

// loopLink is an extra gate between two rooms that were already reachable
type loopLink struct {
	a, b *PlacedRoom
	gate world.Coord
}

type frontierEntry struct {
	room *PlacedRoom
	dirs []world.Direction
}

// layout is the working state of one generation run
type layout struct {
	cfg  Config
	size MapSize
	rng  *rand.Rand
	pool []*catalog.Blueprint

	tiles  *world.Grid[entities.Kind]
	carved *world.Grid[bool]

	rooms    []*PlacedRoom
	graph    RoomGraph
	frontier []*frontierEntry
	enemies  []EnemySpawn
	links    []loopLink

	vaults, keys int
	portal       world.Coord
}

// growthOrder is the direction order of a fresh frontier entry
var growthOrder = []world.Direction{world.North, world.West, world.East, world.South}

func (g *RoomGenerator) build(size MapSize, rng *rand.Rand) *layout {
	dim := size.Dimension()
	l := &layout{
		cfg:    g.Config,
		size:   size,
		rng:    rng,
		tiles:  world.NewGrid[entities.Kind](dim, dim),
		carved: world.NewGrid[bool](dim, dim),
		graph:  make(RoomGraph),
	}

	for _, bp := range catalog.UpTo(size.MaxRoom()) {
		if bp.Width() <= dim && bp.Height() <= dim {
			l.pool = append(l.pool, bp)
		}
	}

	l.placeStart()
	for len(l.frontier) > 0 {
		l.expand()
	}
	l.addLoops()
	l.fillLoneRooms()
	l.populate()
	l.placePortal()
	l.sealVoid()

	slog.Debug("dungeon generated",
		"generator", g.Name(),
		"size", size.String(),
		"rooms", len(l.rooms),
		"vaults", l.vaults,
		"loops", len(l.links),
		"keys", l.keys,
		"enemies", len(l.enemies),
	)

	return l
}

func (l *layout) info() MapInfo {
	return MapInfo{
		Size:    l.size,
		Tiles:   l.tiles,
		Start:   l.rooms[0].Spawn(),
		Enemies: l.enemies,
	}
}

func (l *layout) randomBlueprint() *catalog.Blueprint {
	return l.pool[l.rng.Intn(len(l.pool))]
}

func (l *layout) placeStart() {
	dim := l.size.Dimension()
	bp := l.randomBlueprint()

	// Any position in [0, dim) is drawn and rejected until the room fits,
	// which is the same as drawing from the fitting range directly.
	pos := world.Coord{
		X: l.rng.Intn(dim - bp.Width() + 1),
		Y: l.rng.Intn(dim - bp.Height() + 1),
	}

	start := newPlacedRoom(0, bp, pos)
	l.carve(start)
	l.rooms = append(l.rooms, start)
	l.frontier = append(l.frontier, &frontierEntry{
		room: start,
		dirs: append([]world.Direction(nil), growthOrder...),
	})
}

// expand pops one direction from a random frontier entry and tries to grow a
// room there.
func (l *layout) expand() {
	idx := l.rng.Intn(len(l.frontier))
	entry := l.frontier[idx]

	d := l.rng.Intn(len(entry.dirs))
	dir := entry.dirs[d]
	entry.dirs = append(entry.dirs[:d], entry.dirs[d+1:]...)

	if room, gate, ok := l.tryPlace(entry.room, dir); ok {
		l.attach(entry.room, room, gate, dir)
	}

	if len(entry.dirs) == 0 {
		l.frontier = append(l.frontier[:idx], l.frontier[idx+1:]...)
	}
}

// tryPlace draws up to 1+PlacementRetries blueprints and returns the first
// that fits next to anchor in direction dir, with its gate position.
func (l *layout) tryPlace(anchor *PlacedRoom, dir world.Direction) (*PlacedRoom, world.Coord, bool) {
	for attempt := 0; attempt <= l.cfg.PlacementRetries; attempt++ {
		bp := l.randomBlueprint()
		candidate := newPlacedRoom(len(l.rooms), bp, adjacentPosition(anchor, bp, dir))

		if !l.fits(candidate) {
			continue
		}

		wall, across := anchor.sharedWall(candidate)
		if gate, ok := l.pickDoorway(wall, across, gateOffset, candidate); ok {
			return candidate, gate, true
		}
	}
	return nil, world.Coord{}, false
}

// adjacentPosition places bp flush against anchor so the two share a wall line
func adjacentPosition(anchor *PlacedRoom, bp *catalog.Blueprint, dir world.Direction) world.Coord {
	switch dir {
	case world.North:
		return world.Coord{X: anchor.Pos.X, Y: anchor.Pos.Y - bp.Height() + 1}
	case world.West:
		return world.Coord{X: anchor.Pos.X - bp.Width() + 1, Y: anchor.Pos.Y}
	case world.East:
		return world.Coord{X: anchor.Pos.X + anchor.Width() - 1, Y: anchor.Pos.Y}
	default:
		return world.Coord{X: anchor.Pos.X, Y: anchor.Pos.Y + anchor.Height() - 1}
	}
}

func (l *layout) fits(r *PlacedRoom) bool {
	dim := l.size.Dimension()
	if r.Pos.X < 0 || r.Pos.Y < 0 || r.Pos.X+r.Width() > dim || r.Pos.Y+r.Height() > dim {
		return false
	}
	for _, other := range l.rooms {
		if r.Overlaps(other) {
			return false
		}
	}
	return true
}

// pickDoorway chooses a cell of a shared wall with floor on both sides,
// preferring index first and then the cells closest to it.
func (l *layout) pickDoorway(wall []world.Coord, across world.Coord, first int, pending *PlacedRoom) (world.Coord, bool) {
	if len(wall) == 0 {
		return world.Coord{}, false
	}

	order := make([]int, len(wall))
	for i := range order {
		order[i] = i
	}
	first = min(first, len(wall)-1)
	sort.SliceStable(order, func(a, b int) bool {
		return abs(order[a]-first) < abs(order[b]-first)
	})

	for _, i := range order {
		c := wall[i]
		if l.isFloor(c.Sub(across), pending) && l.isFloor(c.Add(across), pending) {
			return c, true
		}
	}
	return world.Coord{}, false
}

// isFloor reports whether p is carved floor, or floor of the pending room
// that has not been carved yet.
func (l *layout) isFloor(p world.Coord, pending *PlacedRoom) bool {
	if pending != nil && pending.Contains(p) && !l.carved.Get(p) {
		return pending.IsFloor(p)
	}
	return l.carved.Get(p) && l.tiles.Get(p) == entities.KindNone
}

// carve writes a room's pattern into the grid. Cells already carved by
// another room are shared wall and are left alone.
func (l *layout) carve(r *PlacedRoom) {
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			p := r.Abs(world.Coord{X: x, Y: y})
			if l.carved.Get(p) {
				continue
			}
			l.carved.Set(p, true)
			l.tiles.Set(p, r.Blueprint.TileAt(world.Coord{X: x, Y: y}))
		}
	}
}

func (l *layout) attach(anchor, room *PlacedRoom, gate world.Coord, dir world.Direction) {
	room.Distance = anchor.Distance + 1
	l.carve(room)
	l.rooms = append(l.rooms, room)
	l.graph.Connect(anchor.ID, room.ID)

	if l.makeVault(room, gate) {
		return
	}

	l.tiles.Set(gate, entities.KindGate)
	l.frontier = append(l.frontier, &frontierEntry{
		room: room,
		dirs: world.Without(growthOrder, dir.Opposite()),
	})
}

// makeVault turns a qualifying dead end into a locked room with a potion in it
func (l *layout) makeVault(room *PlacedRoom, entrance world.Coord) bool {
	item, hasItem := room.Item()
	if room.Blueprint.Size != catalog.Mini || room.Distance < l.cfg.VaultMinDistance || !hasItem {
		return false
	}
	if l.vaults >= l.cfg.VaultBudget[l.size] || l.rng.Float64() >= l.cfg.VaultChance {
		return false
	}

	room.Vault = true
	l.vaults++
	l.tiles.Set(entrance, entities.KindDoor)
	l.tiles.Set(item, entities.KindPotion)
	return true
}

// addLoops connects some neighbouring rooms that are not yet linked
func (l *layout) addLoops() {
	for i, a := range l.rooms {
		for _, b := range l.rooms[i+1:] {
			if a.Vault || b.Vault || l.graph.Connected(a.ID, b.ID) {
				continue
			}

			wall, across := a.sharedWall(b)
			if len(wall) < l.cfg.LoopMinOverlap {
				continue
			}
			if l.rng.Float64() >= l.cfg.LoopChance {
				continue
			}

			gate, ok := l.pickDoorway(wall, across, len(wall)/2, nil)
			if !ok {
				continue
			}
			l.tiles.Set(gate, entities.KindGate)
			l.graph.Connect(a.ID, b.ID)
			l.links = append(l.links, loopLink{a: a, b: b, gate: gate})
		}
	}
}

// fillLoneRooms scatters gold in rooms with no connection besides their entrance
func (l *layout) fillLoneRooms() {
	for _, r := range l.rooms[1:] {
		if r.Vault || l.graph.Degree(r.ID) > 1 {
			continue
		}
		for _, p := range r.Blueprint.Gold {
			l.setIfFloor(r.Abs(p), entities.KindGold)
		}
	}
}

// populate spawns enemies and keys in rooms far enough from the start
func (l *layout) populate() {
	types := entities.EnemyTypes()
	for _, r := range l.rooms {
		if r.Vault || r.Distance < l.cfg.EnemyMinDistance || len(r.Blueprint.Enemies) == 0 {
			continue
		}
		if l.rng.Float64() < l.cfg.EnemySkipChance {
			continue
		}

		for _, p := range r.Blueprint.Enemies {
			l.enemies = append(l.enemies, EnemySpawn{
				Type:     types[l.rng.Intn(len(types))],
				Position: r.Abs(p),
			})
		}

		item, ok := r.Item()
		if !ok || l.keys >= l.cfg.KeyBudget[l.size] {
			continue
		}
		if l.rng.Float64() < l.cfg.KeyChance && l.setIfFloor(item, entities.KindKey) {
			l.keys++
		}
	}
}

// placePortal puts the exit at the spawn point of the room farthest from the
// start. Ties go to the room placed first.
func (l *layout) placePortal() {
	far := l.rooms[0]
	for _, r := range l.rooms[1:] {
		if r.Distance > far.Distance {
			far = r
		}
	}
	l.portal = far.Spawn()

	switch l.tiles.Get(l.portal) {
	case entities.KindKey:
		l.keys--
	case entities.KindPotion:
		l.movePotion(far)
	}
	l.tiles.Set(l.portal, entities.KindPortal)

	if far.Vault {
		l.ensureKey()
	}
}

// movePotion shifts a vault's reward off the portal onto another floor cell
// of the same room.
func (l *layout) movePotion(r *PlacedRoom) {
	for _, p := range r.floorCells() {
		if p != l.portal && l.setIfFloor(p, entities.KindPotion) {
			return
		}
	}
}

// ensureKey places one key outside the vaults when none was placed, so a
// portal inside a vault can always be reached. It ignores the key budget.
func (l *layout) ensureKey() {
	if l.keys > 0 {
		return
	}
	start := l.rooms[0].Spawn()
	for _, r := range l.rooms {
		if r.Vault {
			continue
		}
		candidates := r.floorCells()
		if item, ok := r.Item(); ok {
			candidates = append([]world.Coord{item}, candidates...)
		}
		for _, p := range candidates {
			if p != start && l.setIfFloor(p, entities.KindKey) {
				l.keys++
				return
			}
		}
	}
}

// sealVoid turns every cell outside all rooms into solid rock
func (l *layout) sealVoid() {
	l.carved.ForEachCell(func(p world.Coord, carved bool) {
		if !carved {
			l.tiles.Set(p, entities.KindWall)
		}
	})
}

func (l *layout) setIfFloor(p world.Coord, k entities.Kind) bool {
	if l.tiles.Get(p) != entities.KindNone {
		return false
	}
	return l.tiles.Set(p, k)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
