package game

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Presets maps each difficulty to the number of mines on the board
type Presets map[Difficulty]int

func DefaultPresets() Presets {
	return Presets{
		Easy:   35,
		Medium: 45,
		Hard:   55,
	}
}

func (presets Presets) MineCount(difficulty Difficulty) (int, error) {
	mineCount, ok := presets[difficulty]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrInvalidChoice, difficulty)
	}
	return mineCount, nil
}

type presetsFile struct {
	Presets map[string]int `yaml:"presets"`
}

// LoadPresets reads mine counts from YAML and lays them over the defaults:
//
//	presets:
//	  easy: 30
//	  hard: 70
func LoadPresets(in io.Reader) (Presets, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	presets := DefaultPresets()
	for name, mineCount := range file.Presets {
		difficulty, err := ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		if mineCount < 0 || mineCount >= Width*Height {
			return nil, fmt.Errorf("%w: %d mines for %v", ErrInvalidConfig, mineCount, difficulty)
		}
		presets[difficulty] = mineCount
	}
	return presets, nil
}
