package constraint

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/they4kman/minegrid/director/random"
	"github.com/they4kman/minegrid/game"
	"github.com/they4kman/minegrid/util/collections"
)

// Director plays from what the revealed numbers prove, and guesses only when
// nothing can be proven.
type Director struct{}

// Observation states that numMines of cells are mines
type Observation struct {
	origin   game.Point
	numMines int
	cells    collections.Set[game.Point]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range sortedPoints(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", observation.origin, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func sortedPoints(points collections.Set[game.Point]) []game.Point {
	sorted := make([]game.Point, 0, len(points))
	for p := range points {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// observe builds one Observation per revealed number that still borders hidden squares
func observe(grid *game.MineGrid) []Observation {
	var observations []Observation

	for _, square := range grid.Squares() {
		if !square.IsRevealed() || square.IsMine() || square.Value() == 0 {
			continue
		}

		origin := game.Point{X: square.X(), Y: square.Y()}
		observation := Observation{
			origin:   origin,
			numMines: square.Value(),
			cells:    make(collections.Set[game.Point]),
		}
		for _, p := range origin.Neighbors() {
			neighbor := grid.SquareAt(p.X, p.Y)
			switch {
			case neighbor.IsFlagged():
				observation.numMines--
			case !neighbor.IsRevealed():
				observation.cells.Add(p)
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

func (director *Director) Act(grid *game.MineGrid) (game.CellAction, bool) {
	observations := observe(grid)

	actors := []func([]Observation) (game.CellAction, bool){
		actDeliberate,
		actSubset,
		func(observations []Observation) (game.CellAction, bool) {
			return actLowestProbability(grid, observations)
		},
	}
	for _, actor := range actors {
		if action, ok := actor(observations); ok {
			game.Log.WithField("action", action).Debug("director deduced move")
			return action, true
		}
	}

	return (&random.Director{}).Act(grid)
}

// actDeliberate handles numbers whose hidden neighbours are all mines, or all safe
func actDeliberate(observations []Observation) (game.CellAction, bool) {
	for _, observation := range observations {
		switch observation.numMines {
		case len(observation.cells):
			p := sortedPoints(observation.cells)[0]
			return game.CellAction{X: p.X, Y: p.Y, Type: game.RightClick}, true
		case 0:
			return game.CellAction{X: observation.origin.X, Y: observation.origin.Y, Type: game.MiddleClick}, true
		}
	}
	return game.CellAction{}, false
}

// actSubset compares pairs of numbers where one's hidden neighbours contain the other's
func actSubset(observations []Observation) (game.CellAction, bool) {
	for i, inner := range observations {
		for j, outer := range observations {
			if i == j {
				continue
			}
			if _, isSubset := inner.cells.IntersectionEx(outer.cells); !isSubset {
				continue
			}

			rest := outer.cells.Difference(inner.cells)
			if len(rest) == 0 {
				continue
			}

			switch outer.numMines - inner.numMines {
			case 0:
				p := sortedPoints(rest)[0]
				return game.CellAction{X: p.X, Y: p.Y, Type: game.Click}, true
			case len(rest):
				p := sortedPoints(rest)[0]
				return game.CellAction{X: p.X, Y: p.Y, Type: game.RightClick}, true
			}
		}
	}
	return game.CellAction{}, false
}

// actLowestProbability guesses the bordering square least likely to be a
// mine, unless an unbordered square is a better bet.
func actLowestProbability(grid *game.MineGrid, observations []Observation) (game.CellAction, bool) {
	cellProbabilities := make(map[game.Point]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, ok := cellProbabilities[cell]; !ok || probability > past {
				cellProbabilities[cell] = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return game.CellAction{}, false
	}

	numHidden := 0
	for _, square := range grid.Squares() {
		if !square.IsRevealed() && !square.IsFlagged() {
			numHidden++
		}
	}
	density := float64(grid.MinesRemaining()) / float64(numHidden)

	lowest := game.Point{}
	lowestProbability := math.Inf(1)
	candidates := make(collections.Set[game.Point])
	for cell := range cellProbabilities {
		candidates.Add(cell)
	}
	for _, cell := range sortedPoints(candidates) {
		if cellProbabilities[cell] < lowestProbability {
			lowest, lowestProbability = cell, cellProbabilities[cell]
		}
	}

	if lowestProbability > density && numHidden > len(cellProbabilities) {
		return game.CellAction{}, false
	}
	return game.CellAction{X: lowest.X, Y: lowest.Y, Type: game.Click}, true
}
