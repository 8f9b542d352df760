package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FOVRadius is the default sight radius (Euclidean) for the player.
const FOVRadius = 7

// OpacityMap is what the visibility functions need to know about a map.
type OpacityMap interface {
	IsPositionOutsideMap(p Coord) bool
	IsOpaque(p Coord) bool
}

// ComputeLit returns the set of cells visible from origin within radius.
// A ray is cast to every in-bounds cell in range; an opaque cell on a ray is
// itself lit but hides everything behind it on that ray.
func ComputeLit(origin Coord, radius float64, m OpacityMap) mapset.Set[Coord] {
	lit := mapset.New[Coord]()

	for _, target := range origin.WithinDistance(radius) {
		if m.IsPositionOutsideMap(target) {
			continue
		}

		for _, p := range origin.Bresenham(target) {
			if m.IsPositionOutsideMap(p) || origin.DistanceTo(p) > radius {
				continue
			}
			lit.Put(p)
			if m.IsOpaque(p) {
				break
			}
		}
	}

	return lit
}

// HasLineOfSight reports whether to is within radius of from and no opaque
// cell lies on the Bresenham line between them. The final cell is not tested,
// so a target standing in a doorway is still visible.
func HasLineOfSight(from, to Coord, radius float64, m OpacityMap) bool {
	if from.DistanceTo(to) > radius {
		return false
	}

	line := from.Bresenham(to)
	for _, p := range line[:len(line)-1] {
		if m.IsPositionOutsideMap(p) || m.IsOpaque(p) {
			return false
		}
	}
	return true
}
