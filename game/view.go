package game

// SquareView is a read-only projection of a Square for rendering
type SquareView struct {
	X, Y     int
	Flagged  bool
	Revealed bool
	Value    int
}

func (view SquareView) IsMine() bool {
	return view.Value < 0
}

// CellState picks the sprite a square should be drawn with. Once the grid is
// lost every mine and every wrong flag is exposed.
func (view SquareView) CellState(state GridState) CellState {
	if state == Lost {
		switch {
		case view.Flagged && !view.IsMine():
			return FlagWrong
		case view.IsMine() && view.Revealed:
			return MineLosing
		case view.IsMine() && !view.Flagged:
			return MineUnrevealed
		}
	}

	switch {
	case view.Flagged:
		return Flag
	case !view.Revealed:
		return Unrevealed
	case view.IsMine():
		return MineLosing
	default:
		return CellState(view.Value)
	}
}

// RevealedSquare is one entry of a RevealOutcome
type RevealedSquare struct {
	X, Y  int
	Value int
}

// RevealOutcome lists every square a move revealed, in reveal order, so the
// caller knows exactly what to repaint.
type RevealOutcome struct {
	NewlyRevealed []RevealedSquare
	MineHit       bool
	Won           bool
}

func (outcome *RevealOutcome) add(square *Square) {
	outcome.NewlyRevealed = append(outcome.NewlyRevealed, RevealedSquare{
		X:     square.x,
		Y:     square.y,
		Value: square.content,
	})
}

func (outcome *RevealOutcome) merge(other RevealOutcome) {
	outcome.NewlyRevealed = append(outcome.NewlyRevealed, other.NewlyRevealed...)
	outcome.MineHit = outcome.MineHit || other.MineHit
	outcome.Won = outcome.Won || other.Won
}
