package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/minegrid/director/constraint"
	"github.com/they4kman/minegrid/director/random"
	"github.com/they4kman/minegrid/game"
	"github.com/they4kman/minegrid/ui"
)

var (
	gameConfig   = game.NewGameConfig()
	directorName = "none"
	configPath   string
	snapshotPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "minegrid",
	Short: "Play Minesweeper on a 20x15 board",
	Long: `minegrid is a Minesweeper game on a fixed 20x15 board, with
easy, medium and hard mine counts.

Run with no arguments to play an easy game
	minegrid

Pick a difficulty, or an exact number of mines
	minegrid --difficulty hard
	minegrid --mines 80

Let the computer play (Space toggles it, Right Arrow makes one move)
	minegrid --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		if err := loadPresets(); err != nil {
			return err
		}
		if err := loadSnapshot(); err != nil {
			return err
		}
		if gameConfig.Snapshot != nil && cmd.Flags().Changed("difficulty") {
			game.Log.WithField("difficulty", gameConfig.Difficulty).
				Warn("loading a snapshot, ignoring the difficulty")
		}

		director, err := newDirector(directorName)
		if err != nil {
			return err
		}
		gameConfig.Director = director

		var runErr error
		pixelgl.Run(func() {
			runErr = ui.Run(gameConfig)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() {
	game.Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		game.Log.SetLevel(logrus.DebugLevel)
	}
}

func loadPresets() error {
	if configPath == "" {
		return nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	presets, err := game.LoadPresets(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", configPath, err)
	}
	gameConfig.Presets = presets
	return nil
}

func loadSnapshot() error {
	if snapshotPath == "" {
		return nil
	}

	in, err := os.ReadFile(snapshotPath)
	if err != nil {
		return err
	}

	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return fmt.Errorf("reading %s: %w", snapshotPath, err)
	}
	gameConfig.Snapshot = snapshot
	return nil
}

func newDirector(name string) (game.Director, error) {
	switch name {
	case "none", "":
		return nil, nil
	case "random":
		return &random.Director{}, nil
	case "constraint":
		return &constraint.Director{}, nil
	default:
		return nil, fmt.Errorf("invalid director %q (none, random or constraint)", name)
	}
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (difficultyVal *difficultyValue) String() string {
	return game.Difficulty(*difficultyVal).String()
}

func (difficultyVal *difficultyValue) Set(value string) error {
	difficulty, err := game.ParseDifficulty(value)
	if err != nil {
		return err
	}
	*difficultyVal = difficultyValue(difficulty)
	return nil
}

func (difficultyVal *difficultyValue) Type() string {
	return "game.Difficulty"
}

func init() {
	rootCmd.Flags().VarP(newDifficultyValue(game.Easy, &gameConfig.Difficulty), "difficulty", "d", "Difficulty preset: easy, medium or hard")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", -1, "Number of mines to place, overriding the difficulty preset")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 seeds from the clock)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file overriding the difficulty presets")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "YAML board snapshot to play instead of a random layout")
	rootCmd.Flags().BoolVar(&gameConfig.LoadSnapshotFresh, "snapshot-fresh", true, "Drop the snapshot's flags and reveals")
	rootCmd.Flags().StringVar(&directorName, "director", "none", "Computer player: none, random or constraint")
	rootCmd.Flags().DurationVar(&gameConfig.DirectorInterval, "director-interval", gameConfig.DirectorInterval, "Delay between computer moves")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
}
