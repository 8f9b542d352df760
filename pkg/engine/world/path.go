package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// MaxPathCost bounds the search depth of FindPath. A node whose cost would
// reach this value is never expanded.
const MaxPathCost = 16

// WalkableMap is what FindPath needs to know about a map.
type WalkableMap interface {
	IsPositionWalkable(p Coord) bool
}

type pathNode struct {
	pos    Coord
	parent *pathNode
	cost   int
}

// FindPath searches breadth-first from from to to over the 4-connected grid
// and returns the route including both ends, or nil when to cannot be reached
// within MaxPathCost steps.
//
// Neighbours are queued nearest-to-target first. This biases which route is
// found and does not guarantee the shortest one.
func FindPath(from, to Coord, m WalkableMap) []Coord {
	open := mapset.New[Coord]()
	closed := mapset.New[Coord]()

	q := queue.New[*pathNode]()
	q.Enqueue(&pathNode{pos: from})
	open.Put(from)

	for !q.Empty() {
		current := q.Dequeue()
		closed.Put(current.pos)

		if current.pos == to {
			return current.route()
		}

		neighbours := current.pos.Adjacent()
		sort.SliceStable(neighbours, func(i, j int) bool {
			return neighbours[i].DistanceTo(to) < neighbours[j].DistanceTo(to)
		})

		for _, n := range neighbours {
			if current.cost+1 >= MaxPathCost || open.Has(n) || closed.Has(n) || !m.IsPositionWalkable(n) {
				continue
			}
			open.Put(n)
			q.Enqueue(&pathNode{pos: n, parent: current, cost: current.cost + 1})
		}
	}

	return nil
}

func (n *pathNode) route() []Coord {
	path := make([]Coord, n.cost+1)
	for cur := n; cur != nil; cur = cur.parent {
		path[cur.cost] = cur.pos
	}
	return path
}
