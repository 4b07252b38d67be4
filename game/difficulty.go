package game

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

func (difficulty Difficulty) String() string {
	if name, ok := difficultyNames[difficulty]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(difficulty))
}

func ParseDifficulty(name string) (Difficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for difficulty, difficultyName := range difficultyNames {
		if difficultyName == name {
			return difficulty, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, name)
}
