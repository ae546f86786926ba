package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/util/collections"
)

type NeighborGetter func(Pos) []Pos

// Visitor handles one position and reports whether its neighbors should be
// queued as well
type Visitor func(Pos) bool

// flood visits start and everything transitively reachable through positions
// whose visitor returned true. Each position is visited at most once.
func flood(start Pos, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(collections.Set[Pos])
	var visitQueue deque.Deque

	visited.Add(start)
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		pos := visitQueue.PopFront().(Pos)

		if !visit(pos) {
			continue
		}

		for _, neighbor := range getNeighbors(pos) {
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)
			visitQueue.PushBack(neighbor)
		}
	}
}
