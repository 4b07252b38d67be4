package game

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}

// Neighbors returns the in-bounds points of the Moore neighbourhood of p
func (p Point) Neighbors() []Point {
	neighbors := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if inBounds(p.X+dx, p.Y+dy) {
				neighbors = append(neighbors, Point{p.X + dx, p.Y + dy})
			}
		}
	}
	return neighbors
}

// Layout holds the content of every square, indexed [y][x]. Mines are
// negative, everything else is the number of adjacent mines.
type Layout [][]int

func emptyLayout() Layout {
	layout := make(Layout, Height)
	for y := range layout {
		layout[y] = make([]int, Width)
	}
	return layout
}

func (layout Layout) isMine(p Point) bool {
	return layout[p.Y][p.X] < 0
}

func (layout Layout) adjacentMines(p Point) int {
	count := 0
	for _, neighbor := range p.Neighbors() {
		if layout.isMine(neighbor) {
			count++
		}
	}
	return count
}

// placeMine adds the sentinel to p and bumps each neighbour, mines included,
// so a mine always ends up at mineSentinel plus its adjacent mine count
func (layout Layout) placeMine(p Point) {
	layout[p.Y][p.X] += mineSentinel
	for _, neighbor := range p.Neighbors() {
		layout[neighbor.Y][neighbor.X]++
	}
}

// Mines returns every mine point in row order
func (layout Layout) Mines() []Point {
	var mines []Point
	for y, row := range layout {
		for x, content := range row {
			if content < 0 {
				mines = append(mines, Point{x, y})
			}
		}
	}
	return mines
}

func (layout Layout) validate() error {
	if len(layout) != Height {
		return fmt.Errorf("%w: layout has %d rows, want %d", ErrInvalidConfig, len(layout), Height)
	}
	for y, row := range layout {
		if len(row) != Width {
			return fmt.Errorf("%w: layout row %d has %d columns, want %d", ErrInvalidConfig, y, len(row), Width)
		}
		for x, content := range row {
			if content > MaxValue {
				return fmt.Errorf("%w: (%d, %d) holds %d", ErrInvalidValue, x, y, content)
			}
		}
	}
	for y, row := range layout {
		for x, content := range row {
			if content < 0 {
				continue
			}
			if want := layout.adjacentMines(Point{x, y}); content != want {
				return fmt.Errorf("%w: (%d, %d) holds %d but borders %d mines", ErrInvalidConfig, x, y, content, want)
			}
		}
	}
	if mines := len(layout.Mines()); mines >= Width*Height {
		return fmt.Errorf("%w: %d mines leave no safe square", ErrInvalidConfig, mines)
	}
	return nil
}

// GenerateLayout places mineCount mines uniformly at random, resampling
// coordinates that already hold a mine. mineCount must be below Width*Height.
func GenerateLayout(rnd *rand.Rand, mineCount int) Layout {
	layout := emptyLayout()

	placed, attempts := 0, 0
	for placed < mineCount {
		attempts++
		p := Point{rnd.Intn(Width), rnd.Intn(Height)}
		if layout.isMine(p) {
			continue
		}
		layout.placeMine(p)
		placed++
	}

	Log.WithFields(logrus.Fields{
		"mines":    mineCount,
		"attempts": attempts,
	}).Debug("generated layout")

	return layout
}

// NewLayout builds the layout holding exactly the given mines
func NewLayout(mines []Point) (Layout, error) {
	if len(mines) >= Width*Height {
		return nil, fmt.Errorf("%w: %d mines leave no safe square", ErrInvalidConfig, len(mines))
	}

	layout := emptyLayout()
	for _, p := range mines {
		if !inBounds(p.X, p.Y) {
			return nil, outOfRange(p.X, p.Y)
		}
		if layout.isMine(p) {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidArgument, p)
		}
		layout.placeMine(p)
	}
	return layout, nil
}
