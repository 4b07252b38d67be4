package game

import "fmt"

type ActionType int

const (
	Click ActionType = iota
	RightClick
	MiddleClick
)

func (actionType ActionType) String() string {
	switch actionType {
	case Click:
		return "click"
	case RightClick:
		return "right click"
	case MiddleClick:
		return "middle click"
	default:
		return "unknown"
	}
}

// CellAction is a single move a Director wants made on the grid
type CellAction struct {
	X, Y int
	Type ActionType
}

func (action CellAction) String() string {
	return fmt.Sprintf("%v(%d, %d)", action.Type, action.X, action.Y)
}

// Director plays the game through the same moves a user could make
type Director interface {
	/**
	 * Pick the next move for the grid, or false when there is nothing to do
	 */
	Act(grid *MineGrid) (CellAction, bool)
}

// Apply performs a move on the grid
func (grid *MineGrid) Apply(action CellAction) (RevealOutcome, error) {
	switch action.Type {
	case Click:
		return grid.Reveal(action.X, action.Y)
	case RightClick:
		_, err := grid.ToggleFlag(action.X, action.Y)
		return RevealOutcome{}, err
	case MiddleClick:
		return grid.Chord(action.X, action.Y)
	default:
		return RevealOutcome{}, fmt.Errorf("%w: unknown action %d", ErrInvalidArgument, action.Type)
	}
}
