package game

import (
	"fmt"
)

// Square is a single cell of a MineGrid. Its content is negative for a mine,
// otherwise the number of mines among its neighbours.
type Square struct {
	x, y    int
	content int

	isFlagged, isRevealed bool
	// set once a MineGrid owns the square and keeps counts derived from it
	locked bool
}

func newSquare(x, y, content int) *Square {
	return &Square{x: x, y: y, content: content}
}

func (square *Square) String() string {
	return fmt.Sprintf("Square(%v, %v)", square.x, square.y)
}

func (square *Square) X() int {
	return square.x
}

func (square *Square) Y() int {
	return square.y
}

// SetContent overwrites the square's content. Negative values mark a mine.
// Squares handed out by a MineGrid cannot be changed.
func (square *Square) SetContent(n int) error {
	if square.locked {
		return fmt.Errorf("%w: %v belongs to a grid", ErrInvalidArgument, square)
	}
	if n > MaxValue {
		return fmt.Errorf("%w: %d is above %d", ErrInvalidValue, n, MaxValue)
	}
	square.content = n
	return nil
}

func (square *Square) IsMine() bool {
	return square.content < 0
}

func (square *Square) Value() int {
	return square.content
}

func (square *Square) IsFlagged() bool {
	return square.isFlagged
}

func (square *Square) IsRevealed() bool {
	return square.isRevealed
}

func (square *Square) setFlag(isFlagged bool) bool {
	square.isFlagged = isFlagged
	return square.isFlagged
}

func (square *Square) reveal() {
	square.isRevealed = true
}

func (square *Square) view() SquareView {
	return SquareView{
		X:        square.x,
		Y:        square.y,
		Flagged:  square.isFlagged,
		Revealed: square.isRevealed,
		Value:    square.content,
	}
}
