package game

type CellState int
type GridState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	MineUnrevealed
	MineLosing
)

const (
	InProgress GridState = iota
	Won
	Lost
)

func (state GridState) String() string {
	switch state {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

const (
	// Width and Height of every board, in squares
	Width  = 20
	Height = 15

	// MaxValue is the highest adjacency count a square can hold
	MaxValue = 8

	// mineSentinel stays negative after MaxValue neighbour increments
	mineSentinel = -9
)
