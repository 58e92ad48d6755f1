package config

import (
	_ "embed"
)

//go:embed defaults/puzzgame.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Cols: 12,
			Rows: 24,
		},
		Speed: SpeedConfig{
			DropMsStart:   700,
			SpeedStepMs:   70,
			FloorMs:       120,
			LinesPerLevel: 10,
		},
		Scoring: ScoringConfig{
			LinePoints: []int{10, 20, 30, 40},
		},
		Palette: []string{
			"bright_cyan",
			"orange",
			"bright_red",
			"magenta",
			"green",
			"bright_blue",
			"bright_magenta",
			"bright_green",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
