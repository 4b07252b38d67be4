package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name string
		want Difficulty
		err  error
	}{
		{name: "easy", want: Easy},
		{name: "Medium", want: Medium},
		{name: " HARD ", want: Hard},
		{name: "extreme", err: ErrInvalidChoice},
		{name: "", err: ErrInvalidChoice},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			difficulty, err := ParseDifficulty(test.name)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, difficulty)
		})
	}
}

func TestDifficultyString(t *testing.T) {
	for _, difficulty := range Difficulties {
		parsed, err := ParseDifficulty(difficulty.String())
		require.NoError(t, err)
		assert.Equal(t, difficulty, parsed)
	}
	assert.Equal(t, "Difficulty(7)", Difficulty(7).String())
}

func TestDefaultPresets(t *testing.T) {
	presets := DefaultPresets()

	for difficulty, want := range map[Difficulty]int{Easy: 35, Medium: 45, Hard: 55} {
		mineCount, err := presets.MineCount(difficulty)
		require.NoError(t, err)
		assert.Equal(t, want, mineCount)
	}

	_, err := presets.MineCount(Difficulty(7))
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets(strings.NewReader("presets:\n  easy: 30\n  Hard: 70\n"))
	require.NoError(t, err)
	assert.Equal(t, Presets{Easy: 30, Medium: 45, Hard: 70}, presets)

	presets, err = LoadPresets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPresets(), presets)
}

func TestLoadPresetsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "unknown difficulty", in: "presets:\n  extreme: 100\n", want: ErrInvalidChoice},
		{name: "too many mines", in: "presets:\n  hard: 300\n", want: ErrInvalidConfig},
		{name: "negative", in: "presets:\n  easy: -1\n", want: ErrInvalidConfig},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadPresets(strings.NewReader(test.in))
			assert.ErrorIs(t, err, test.want)
		})
	}

	_, err := LoadPresets(strings.NewReader("presets: [1, 2"))
	assert.Error(t, err)
}
