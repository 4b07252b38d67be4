package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareViewCellState(t *testing.T) {
	tests := []struct {
		name  string
		view  SquareView
		state GridState
		want  CellState
	}{
		{name: "hidden", view: SquareView{Value: 3}, state: InProgress, want: Unrevealed},
		{name: "hidden mine", view: SquareView{Value: -9}, state: InProgress, want: Unrevealed},
		{name: "flagged", view: SquareView{Flagged: true, Value: 2}, state: InProgress, want: Flag},
		{name: "empty", view: SquareView{Revealed: true}, state: InProgress, want: Empty},
		{name: "number", view: SquareView{Revealed: true, Value: 5}, state: InProgress, want: Number5},
		{name: "won flag", view: SquareView{Flagged: true, Value: -8}, state: Won, want: Flag},
		{name: "won hidden mine", view: SquareView{Value: -8}, state: Won, want: Unrevealed},
		{name: "lost wrong flag", view: SquareView{Flagged: true, Value: 1}, state: Lost, want: FlagWrong},
		{name: "lost right flag", view: SquareView{Flagged: true, Value: -9}, state: Lost, want: Flag},
		{name: "lost hidden mine", view: SquareView{Value: -7}, state: Lost, want: MineUnrevealed},
		{name: "losing mine", view: SquareView{Revealed: true, Value: -9}, state: Lost, want: MineLosing},
		{name: "lost hidden number", view: SquareView{Value: 4}, state: Lost, want: Unrevealed},
		{name: "lost number", view: SquareView{Revealed: true, Value: 8}, state: Lost, want: Number8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.view.CellState(test.state))
		})
	}
}

func TestGridStateString(t *testing.T) {
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}
