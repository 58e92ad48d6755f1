package config

import (
	"github.com/vovakirdan/puzzgame/internal/core"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

// Rules converts the configuration into engine rules. Unknown palette
// names are skipped; the engine clamps any remaining bad values.
func (c GameConfig) Rules() tetris.Rules {
	var palette []core.Color
	for _, name := range c.Palette {
		if col, ok := core.ParseColor(name); ok && col != tetris.Empty {
			palette = append(palette, col)
		}
	}

	return tetris.Rules{
		Cols:          c.Board.Cols,
		Rows:          c.Board.Rows,
		DropMsStart:   c.Speed.DropMsStart,
		SpeedStepMs:   c.Speed.SpeedStepMs,
		FloorMs:       c.Speed.FloorMs,
		LinesPerLevel: c.Speed.LinesPerLevel,
		LinePoints:    append([]int(nil), c.Scoring.LinePoints...),
		Palette:       palette,
	}.Normalize()
}

// Load is LoadGame followed by ApplyPreset and conversion to rules.
func Load(customPath string, preset DifficultyPreset) (tetris.Rules, error) {
	cfg, err := LoadGame(customPath)
	if err != nil {
		return tetris.Rules{}, err
	}
	ApplyPreset(&cfg, preset)
	return cfg.Rules(), nil
}
