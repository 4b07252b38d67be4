package game

import (
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v2"
)

// Snapshot is a textual picture of a grid: one row of markers per grid row
type Snapshot struct {
	Seed  int64  `yaml:"seed"`
	Board string `yaml:"board"`
}

const (
	markLosingMine  = '*'
	markFlaggedMine = 'F'
	markMine        = 'O'
	markFlagged     = 'f'
	markRevealed    = '.'
	markHidden      = '#'
)

func (square *Square) serialize() byte {
	switch {
	case square.IsMine():
		switch {
		case square.isRevealed:
			return markLosingMine
		case square.isFlagged:
			return markFlaggedMine
		default:
			return markMine
		}
	case square.isFlagged:
		return markFlagged
	case square.isRevealed:
		return markRevealed
	default:
		return markHidden
	}
}

func (grid *MineGrid) Snapshot() *Snapshot {
	var builder strings.Builder
	for y, row := range grid.squares {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for _, square := range row {
			builder.WriteByte(square.serialize())
		}
	}
	return &Snapshot{
		Seed:  grid.seed,
		Board: builder.String(),
	}
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Grid rebuilds the grid the snapshot was taken of. When fresh is set, flags
// and reveals are dropped and only the mine layout is kept.
func (snapshot *Snapshot) Grid(fresh bool) (*MineGrid, error) {
	rows := strings.Split(strings.TrimRight(snapshot.Board, "\n"), "\n")
	if len(rows) != Height {
		return nil, fmt.Errorf("%w: snapshot has %d rows, want %d", ErrInvalidConfig, len(rows), Height)
	}

	var mines, flagged, revealed []Point
	for y, row := range rows {
		if len(row) != Width {
			return nil, fmt.Errorf("%w: snapshot row %d has %d columns, want %d", ErrInvalidConfig, y, len(row), Width)
		}
		for x := 0; x < len(row); x++ {
			p := Point{x, y}
			switch row[x] {
			case markLosingMine:
				mines = append(mines, p)
				revealed = append(revealed, p)
			case markFlaggedMine:
				mines = append(mines, p)
				flagged = append(flagged, p)
			case markMine:
				mines = append(mines, p)
			case markFlagged:
				flagged = append(flagged, p)
			case markRevealed:
				revealed = append(revealed, p)
			case markHidden:
			default:
				return nil, fmt.Errorf("%w: unknown snapshot marker %q at %v", ErrInvalidConfig, row[x], p)
			}
		}
	}

	layout, err := NewLayout(mines)
	if err != nil {
		return nil, err
	}

	var rnd *rand.Rand
	if snapshot.Seed != 0 {
		rnd = rand.New(rand.NewSource(snapshot.Seed))
	}
	grid, err := NewMineGridFromLayout(layout, rnd)
	if err != nil {
		return nil, err
	}
	if snapshot.Seed != 0 {
		grid.seed = snapshot.Seed
	}

	if !fresh {
		for _, p := range flagged {
			grid.squares[p.Y][p.X].setFlag(true)
			grid.flagCount++
		}
		for _, p := range revealed {
			grid.markRevealed(grid.squares[p.Y][p.X])
		}
	}

	return grid, nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
