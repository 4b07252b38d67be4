package random_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/minegrid/director/random"
	"github.com/they4kman/minegrid/game"
)

func TestActPicksHiddenSquare(t *testing.T) {
	grid, err := game.NewMineGrid(35, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	_, err = grid.ToggleFlag(0, 0)
	require.NoError(t, err)

	director := &random.Director{}
	for i := 0; i < 50; i++ {
		action, ok := director.Act(grid)
		require.True(t, ok)
		assert.Equal(t, game.Click, action.Type)

		square := grid.SquareAt(action.X, action.Y)
		require.NotNil(t, square)
		assert.False(t, square.IsRevealed())
		assert.False(t, square.IsFlagged())
	}
}

func TestActOnFinishedGrid(t *testing.T) {
	grid, err := game.NewMineGrid(0, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	_, err = grid.Reveal(0, 0)
	require.NoError(t, err)

	_, ok := (&random.Director{}).Act(grid)
	assert.False(t, ok)
}
