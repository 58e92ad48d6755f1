package config

// presetSpeed holds the speed overrides of one preset.
type presetSpeed struct {
	dropMsStart int
	speedStepMs int
}

var presetSpeeds = map[DifficultyPreset]presetSpeed{
	DifficultyEasy: {dropMsStart: 900, speedStepMs: 50},
	DifficultyHard: {dropMsStart: 500, speedStepMs: 80},
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; fixed keeps the start interval and
// disables speed-up.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Speed.SpeedStepMs = 0
		return
	}
	if s, ok := presetSpeeds[preset]; ok {
		cfg.Speed.DropMsStart = s.dropMsStart
		cfg.Speed.SpeedStepMs = s.speedStepMs
	}
}
