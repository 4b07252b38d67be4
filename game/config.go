package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Difficulty Difficulty
	Presets    Presets
	// Overrides the difficulty preset when not negative
	NumMines int

	// Seed of the first grid's random source; 0 seeds from the clock
	Seed int64

	// Snapshot to load the grid layout from
	Snapshot *Snapshot
	// Whether to drop flags and reveals when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director
	// Delay between two director moves while it plays continuously
	DirectorInterval time.Duration
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Difficulty:        Easy,
		Presets:           DefaultPresets(),
		NumMines:          -1,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
		Director:          nil,
		DirectorInterval:  500 * time.Millisecond,
	}
}

func (config GameConfig) MineCount() (int, error) {
	if config.NumMines >= 0 {
		return config.NumMines, nil
	}
	return config.Presets.MineCount(config.Difficulty)
}

// CreateGrid builds the first grid. A Snapshot takes priority over the mine
// count and seed, which are then ignored.
func (config GameConfig) CreateGrid() (*MineGrid, error) {
	if config.Snapshot != nil {
		if config.NumMines >= 0 || config.Seed != 0 {
			Log.WithFields(logrus.Fields{
				"mines": config.NumMines,
				"seed":  config.Seed,
			}).Warn("loading a snapshot, ignoring the mine count and seed")
		}
		return config.Snapshot.Grid(config.LoadSnapshotFresh)
	}

	mineCount, err := config.MineCount()
	if err != nil {
		return nil, err
	}

	var rnd *rand.Rand
	if config.Seed != 0 {
		rnd = rand.New(rand.NewSource(config.Seed))
	}
	grid, err := NewMineGrid(mineCount, rnd)
	if err != nil {
		return nil, err
	}
	if config.Seed != 0 {
		grid.seed = config.Seed
	}
	return grid, nil
}
