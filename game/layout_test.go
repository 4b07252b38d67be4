package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLayout(t *testing.T) {
	mineCounts := []int{0, 1, 35, 45, 55, 150, Width*Height - 1}

	for _, mineCount := range mineCounts {
		for seed := int64(1); seed <= 10; seed++ {
			t.Run(fmt.Sprintf("%d mines seed %d", mineCount, seed), func(t *testing.T) {
				layout := GenerateLayout(rand.New(rand.NewSource(seed)), mineCount)
				require.Len(t, layout, Height)

				assert.Len(t, layout.Mines(), mineCount)

				for y, row := range layout {
					require.Len(t, row, Width)
					for x, content := range row {
						p := Point{x, y}
						if content < 0 {
							continue
						}
						assert.Equal(t, countMines(p, layout.isMine), content, "value at %v", p)
					}
				}
			})
		}
	}
}

func TestGenerateLayoutIsDeterministic(t *testing.T) {
	first := GenerateLayout(rand.New(rand.NewSource(42)), 45)
	second := GenerateLayout(rand.New(rand.NewSource(42)), 45)
	assert.Equal(t, first, second)
}

func TestNewLayoutMinesStayNegative(t *testing.T) {
	var mines []Point
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if x != 10 || y != 10 {
				mines = append(mines, Point{x, y})
			}
		}
	}

	layout, err := NewLayout(mines)
	require.NoError(t, err)

	for _, p := range mines {
		assert.Less(t, layout[p.Y][p.X], 0, "mine at %v", p)
	}
	assert.Equal(t, 8, layout[10][10])
	// a corner mine has three mine neighbours
	assert.Equal(t, mineSentinel+3, layout[0][0])
}

func TestNewLayoutErrors(t *testing.T) {
	tests := []struct {
		name  string
		mines []Point
		want  error
	}{
		{
			name:  "out of range",
			mines: []Point{{Width, 0}},
			want:  ErrInvalidArgument,
		},
		{
			name:  "negative",
			mines: []Point{{0, -1}},
			want:  ErrInvalidArgument,
		},
		{
			name:  "duplicate",
			mines: []Point{{3, 3}, {3, 3}},
			want:  ErrInvalidArgument,
		},
		{
			name:  "every square",
			mines: make([]Point, Width*Height),
			want:  ErrInvalidConfig,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewLayout(test.mines)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	mined := func() Layout {
		layout, err := NewLayout([]Point{{0, 0}, {7, 7}})
		require.NoError(t, err)
		return layout
	}

	tests := []struct {
		name   string
		layout func() Layout
		want   error
	}{
		{
			name:   "empty",
			layout: emptyLayout,
		},
		{
			name:   "generated",
			layout: mined,
		},
		{
			name:   "missing row",
			layout: func() Layout { return emptyLayout()[:Height-1] },
			want:   ErrInvalidConfig,
		},
		{
			name: "short row",
			layout: func() Layout {
				layout := emptyLayout()
				layout[2] = layout[2][:Width-1]
				return layout
			},
			want: ErrInvalidConfig,
		},
		{
			name: "above max",
			layout: func() Layout {
				layout := emptyLayout()
				layout[0][0] = MaxValue + 1
				return layout
			},
			want: ErrInvalidValue,
		},
		{
			name: "number without mines",
			layout: func() Layout {
				layout := emptyLayout()
				layout[0][0] = 3
				return layout
			},
			want: ErrInvalidConfig,
		},
		{
			name: "number missing a mine",
			layout: func() Layout {
				layout := mined()
				layout[0][1] = 0
				return layout
			},
			want: ErrInvalidConfig,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.layout().validate()
			if test.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestNewMineGridFromLayoutRejectsWrongNumbers(t *testing.T) {
	layout := emptyLayout()
	layout[0][0] = 3

	grid, err := NewMineGridFromLayout(layout, newRand())
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, grid)
}

func TestPointNeighbors(t *testing.T) {
	assert.ElementsMatch(t, []Point{{1, 0}, {0, 1}, {1, 1}}, Point{0, 0}.Neighbors())
	assert.Len(t, Point{Width - 1, 7}.Neighbors(), 5)
	assert.Len(t, Point{7, 7}.Neighbors(), 8)
}
