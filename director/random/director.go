package random

import (
	"github.com/they4kman/minegrid/game"
)

// Director reveals a random hidden, unflagged square
type Director struct{}

func (director *Director) Act(grid *game.MineGrid) (game.CellAction, bool) {
	var candidates []*game.Square
	for _, square := range grid.Squares() {
		if !square.IsRevealed() && !square.IsFlagged() {
			candidates = append(candidates, square)
		}
	}

	if len(candidates) == 0 {
		return game.CellAction{}, false
	}

	square := candidates[grid.Rand().Intn(len(candidates))]
	return game.CellAction{
		X:    square.X(),
		Y:    square.Y(),
		Type: game.Click,
	}, true
}
