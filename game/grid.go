package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type MineGrid struct {
	mineCount int
	squares   [][]*Square

	state         GridState
	won           bool
	revealedCount int
	flagCount     int

	rand *rand.Rand
	seed int64
}

// NewMineGrid creates a grid with mineCount randomly placed mines. A nil rnd
// is replaced with a time-seeded source.
func NewMineGrid(mineCount int, rnd *rand.Rand) (*MineGrid, error) {
	if mineCount < 0 || mineCount >= Width*Height {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d grid", ErrInvalidConfig, mineCount, Width, Height)
	}

	grid := &MineGrid{mineCount: mineCount}
	if rnd == nil {
		grid.seed = time.Now().UnixNano()
		rnd = rand.New(rand.NewSource(grid.seed))
	}
	grid.rand = rnd

	grid.fill(GenerateLayout(grid.rand, mineCount))
	return grid, nil
}

// NewMineGridFromLayout creates a grid holding a fixed layout. The mine count
// is taken from the layout.
func NewMineGridFromLayout(layout Layout, rnd *rand.Rand) (*MineGrid, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}

	grid := &MineGrid{mineCount: len(layout.Mines())}
	if rnd == nil {
		grid.seed = time.Now().UnixNano()
		rnd = rand.New(rand.NewSource(grid.seed))
	}
	grid.rand = rnd

	grid.fill(layout)
	return grid, nil
}

// fill replaces every square and resets all progress
func (grid *MineGrid) fill(layout Layout) {
	grid.squares = make([][]*Square, Height)
	for y := 0; y < Height; y++ {
		grid.squares[y] = make([]*Square, Width)
		for x := 0; x < Width; x++ {
			square := newSquare(x, y, layout[y][x])
			square.locked = true
			grid.squares[y][x] = square
		}
	}

	grid.state = InProgress
	grid.won = false
	grid.revealedCount = 0
	grid.flagCount = 0
}

// Restart regenerates the layout in place with the same mine count. The
// random source is reseeded so the new layout can be reproduced from its seed.
func (grid *MineGrid) Restart() {
	seed := grid.rand.Int63()
	for seed == 0 {
		seed = grid.rand.Int63()
	}
	grid.seed = seed
	grid.rand = rand.New(rand.NewSource(seed))
	grid.fill(GenerateLayout(grid.rand, grid.mineCount))

	Log.WithFields(logrus.Fields{
		"mines": grid.mineCount,
		"seed":  seed,
	}).Debug("grid restarted")
}

func (grid *MineGrid) Width() int {
	return Width
}

func (grid *MineGrid) Height() int {
	return Height
}

func (grid *MineGrid) MineCount() int {
	return grid.mineCount
}

func (grid *MineGrid) RevealedCount() int {
	return grid.revealedCount
}

func (grid *MineGrid) FlagCount() int {
	return grid.flagCount
}

// MinesRemaining is the mine count less the flags placed. Over-flagging makes it negative.
func (grid *MineGrid) MinesRemaining() int {
	return grid.mineCount - grid.flagCount
}

func (grid *MineGrid) Won() bool {
	return grid.won
}

func (grid *MineGrid) State() GridState {
	return grid.state
}

func (grid *MineGrid) Rand() *rand.Rand {
	return grid.rand
}

func (grid *MineGrid) canPlay() bool {
	return grid.state == InProgress
}

// SquareAt returns the square at (x, y), or nil if out of range
func (grid *MineGrid) SquareAt(x, y int) *Square {
	if inBounds(x, y) {
		return grid.squares[y][x]
	}
	return nil
}

// Squares returns every square in row order
func (grid *MineGrid) Squares() []*Square {
	squares := make([]*Square, 0, Width*Height)
	for _, row := range grid.squares {
		squares = append(squares, row...)
	}
	return squares
}

func (grid *MineGrid) neighbors(square *Square) []*Square {
	points := Point{square.x, square.y}.Neighbors()
	neighbors := make([]*Square, len(points))
	for i, p := range points {
		neighbors[i] = grid.squares[p.Y][p.X]
	}
	return neighbors
}

func (grid *MineGrid) SquareView(x, y int) (SquareView, error) {
	square := grid.SquareAt(x, y)
	if square == nil {
		return SquareView{}, outOfRange(x, y)
	}
	return square.view(), nil
}

func (grid *MineGrid) CheckWin() bool {
	return grid.revealedCount == Width*Height-grid.mineCount
}

// RevealSquare reveals a square owned by this grid. Revealing a square twice
// does not count it twice.
func (grid *MineGrid) RevealSquare(square *Square) error {
	if square == nil {
		return fmt.Errorf("%w: nil square", ErrInvalidArgument)
	}
	if grid.SquareAt(square.x, square.y) != square {
		return fmt.Errorf("%w: %v does not belong to this grid", ErrInvalidArgument, square)
	}
	if !grid.canPlay() {
		return ErrGameOver
	}
	if square.isFlagged {
		return nil
	}

	grid.markRevealed(square)
	return nil
}

// markRevealed reveals a hidden square and settles the grid state
func (grid *MineGrid) markRevealed(square *Square) bool {
	if square.isRevealed {
		return false
	}

	square.reveal()
	grid.revealedCount++

	if square.IsMine() {
		grid.lose()
	} else if grid.CheckWin() {
		grid.win()
	}
	return true
}

// Reveal opens the square at (x, y). Flagged and already revealed squares are
// left alone; a zero square cascades to its neighbours.
func (grid *MineGrid) Reveal(x, y int) (RevealOutcome, error) {
	var outcome RevealOutcome

	square := grid.SquareAt(x, y)
	if square == nil {
		return outcome, outOfRange(x, y)
	}
	if !grid.canPlay() {
		return outcome, ErrGameOver
	}

	outcome = grid.reveal(square)

	Log.WithFields(logrus.Fields{
		"x":        x,
		"y":        y,
		"revealed": len(outcome.NewlyRevealed),
		"mineHit":  outcome.MineHit,
		"won":      outcome.Won,
	}).Debug("reveal")

	return outcome, nil
}

func (grid *MineGrid) reveal(square *Square) RevealOutcome {
	var outcome RevealOutcome

	if square.isFlagged || !grid.markRevealed(square) {
		return outcome
	}
	outcome.add(square)

	if !square.IsMine() && square.content == 0 {
		outcome.merge(grid.revealCascade(square))
	}

	outcome.MineHit = grid.state == Lost
	outcome.Won = grid.won
	return outcome
}

// ToggleFlag flips the flag of a hidden square and returns its new state
func (grid *MineGrid) ToggleFlag(x, y int) (bool, error) {
	square := grid.SquareAt(x, y)
	if square == nil {
		return false, outOfRange(x, y)
	}
	if !grid.canPlay() {
		return square.isFlagged, ErrGameOver
	}
	if square.isRevealed {
		return square.isFlagged, ErrSquareRevealed
	}

	if square.setFlag(!square.isFlagged) {
		grid.flagCount++
	} else {
		grid.flagCount--
	}
	return square.isFlagged, nil
}

// Chord reveals every unflagged neighbour of a revealed number once as many
// neighbours are flagged as the number says.
func (grid *MineGrid) Chord(x, y int) (RevealOutcome, error) {
	var outcome RevealOutcome

	square := grid.SquareAt(x, y)
	if square == nil {
		return outcome, outOfRange(x, y)
	}
	if !grid.canPlay() {
		return outcome, ErrGameOver
	}
	if !square.isRevealed || square.IsMine() || square.content == 0 {
		return outcome, nil
	}

	neighbors := grid.neighbors(square)
	numFlagged := 0
	for _, neighbor := range neighbors {
		if neighbor.isFlagged {
			numFlagged++
		}
	}
	if numFlagged != square.content {
		return outcome, nil
	}

	for _, neighbor := range neighbors {
		outcome.merge(grid.reveal(neighbor))
		if !grid.canPlay() {
			break
		}
	}
	return outcome, nil
}

func (grid *MineGrid) win() {
	grid.state = Won
	grid.won = true
	grid.endGame()
}

func (grid *MineGrid) lose() {
	grid.state = Lost
	grid.endGame()
}

func (grid *MineGrid) endGame() {
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"state":    grid.state,
			"revealed": grid.revealedCount,
			"flags":    grid.flagCount,
		}).Debugf("game over\n%s", grid.Snapshot().Serialize())
	}
}

// String dumps every square's value, one row per line
func (grid *MineGrid) String() string {
	var builder strings.Builder
	for _, row := range grid.squares {
		builder.WriteString("|")
		for _, square := range row {
			builder.WriteString(strconv.Itoa(square.content))
			builder.WriteString("|")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
