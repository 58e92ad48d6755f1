// Package config provides YAML-based game configuration loading and
// difficulty presets for puzzgame.
package config

import (
	"fmt"
	"strings"
)

// GameConfig contains all tunable parameters of a game.
type GameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Palette []string      `yaml:"palette"` // Color names, see core.ParseColor
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SpeedConfig defines the drop interval progression.
type SpeedConfig struct {
	DropMsStart   int `yaml:"drop_ms_start"`   // Interval at level 1
	SpeedStepMs   int `yaml:"speed_step_ms"`   // Reduction per level
	FloorMs       int `yaml:"floor_ms"`        // Fastest interval
	LinesPerLevel int `yaml:"lines_per_level"` // Lines needed per level
}

// ScoringConfig defines points per lock.
type ScoringConfig struct {
	LinePoints []int `yaml:"line_points"` // Points for 1, 2, 3, 4+ lines
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
