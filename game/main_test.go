package game

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// columnGrid has a wall of mines at x=5, splitting the board in two
func columnGrid(t *testing.T) *MineGrid {
	t.Helper()

	var mines []Point
	for y := 0; y < Height; y++ {
		mines = append(mines, Point{5, y})
	}
	layout, err := NewLayout(mines)
	require.NoError(t, err)

	grid, err := NewMineGridFromLayout(layout, newRand())
	require.NoError(t, err)
	return grid
}

func layoutGrid(t *testing.T, mines ...Point) *MineGrid {
	t.Helper()

	layout, err := NewLayout(mines)
	require.NoError(t, err)

	grid, err := NewMineGridFromLayout(layout, newRand())
	require.NoError(t, err)
	return grid
}

func countMines(p Point, isMine func(Point) bool) int {
	count := 0
	for _, neighbor := range p.Neighbors() {
		if isMine(neighbor) {
			count++
		}
	}
	return count
}
