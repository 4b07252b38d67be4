package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig occurs when a grid is requested with an impossible mine count or layout
	ErrInvalidConfig = errors.New("invalid grid configuration")
	// ErrInvalidArgument occurs when a coordinate or square does not belong to the grid
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidValue occurs when a square's content is set above MaxValue
	ErrInvalidValue = errors.New("invalid square value")
	// ErrSquareRevealed occurs when a revealed square is flagged
	ErrSquareRevealed = fmt.Errorf("%w: square is already revealed", ErrInvalidArgument)
	// ErrGameOver occurs when a move is made on a won or lost grid
	ErrGameOver = errors.New("the game is over")
	// ErrInvalidChoice occurs when a difficulty name is not known
	ErrInvalidChoice = errors.New("no valid difficulty selection")
)

func outOfRange(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) is outside the %dx%d grid", ErrInvalidArgument, x, y, Width, Height)
}
