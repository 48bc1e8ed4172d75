package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a flag value to a preset. Unknown values mean normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}

// StartLevelForPreset returns the level a fresh run begins on.
// Hard skips the logarithmic part of the obstacle curve.
func StartLevelForPreset(preset DifficultyPreset) int {
	if preset == DifficultyHard {
		return 16
	}
	return 1
}

// ApplyMousetrapPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyMousetrapPreset(cfg *MousetrapConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timer.Total = 400
		cfg.Timer.Warning = 100
		cfg.StartLevel = StartLevelForPreset(preset)
	case DifficultyHard:
		cfg.Timer.Total = 240
		cfg.Timer.Warning = 60
		cfg.StartLevel = StartLevelForPreset(preset)
	}
}
