package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/minegrid/util/collections"
)

// revealCascade walks the connected zero region around origin breadth-first,
// revealing every hidden, unflagged square it touches. Only zero squares are
// expanded, and a square is queued at most once.
func (grid *MineGrid) revealCascade(origin *Square) RevealOutcome {
	var outcome RevealOutcome

	visited := make(collections.Set[Point])
	var queue deque.Deque

	enqueue := func(square *Square) {
		p := Point{square.x, square.y}
		if visited.Contains(p) {
			return
		}
		visited.Add(p)
		queue.PushBack(square)
	}

	enqueue(origin)
	for queue.Len() > 0 {
		square := queue.PopFront().(*Square)

		for _, neighbor := range grid.neighbors(square) {
			if neighbor.isRevealed || neighbor.isFlagged || neighbor.IsMine() {
				continue
			}

			grid.markRevealed(neighbor)
			outcome.add(neighbor)

			if neighbor.content == 0 {
				enqueue(neighbor)
			}
		}
	}

	return outcome
}
