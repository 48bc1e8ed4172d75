// Package config provides YAML-based game configuration loading and
// difficulty presets for Mousetrap.
package config

import (
	"errors"
	"fmt"
)

// MousetrapConfig contains all configuration for the Mousetrap game.
// Distances are logical units on the reference resolution, durations are ticks.
type MousetrapConfig struct {
	Field      FieldConfig             `yaml:"field"`
	Player     PlayerConfig            `yaml:"player"`
	Traps      TrapConfig              `yaml:"traps"`
	Cheese     CheeseConfig            `yaml:"cheese"`
	Timer      TimerConfig             `yaml:"timer"`
	Pan        PanConfig               `yaml:"pan"`
	Paw        PawConfig               `yaml:"paw"`
	Generation GenerationConfig        `yaml:"generation"`
	StartLevel int                     `yaml:"start_level"`
	Sprites    map[string]SpriteConfig `yaml:"sprites"`
}

// FieldConfig defines the logical play field and its trap grid.
type FieldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	SafeWidth float64 `yaml:"safe_width"` // entry/exit margin on both sides of the grid
}

// PlayerConfig defines the mouse.
type PlayerConfig struct {
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // units per tick on both axes
	Sprite string  `yaml:"sprite"`
}

// TrapConfig defines the obstacles.
type TrapConfig struct {
	Height float64 `yaml:"height"`
	Sprite string  `yaml:"sprite"`
}

// CheeseConfig defines the collectibles.
type CheeseConfig struct {
	Height    float64 `yaml:"height"`
	Clearance float64 `yaml:"clearance"`  // free margin around every other entity
	TimeValue int     `yaml:"time_value"` // ticks added to the timer when collected
	Sprite    string  `yaml:"sprite"`
}

// TimerConfig defines the countdown.
type TimerConfig struct {
	Enabled bool `yaml:"enabled"`
	Total   int  `yaml:"total"`
	Warning int  `yaml:"warning"`
}

// PanConfig defines the level-to-level camera pan.
type PanConfig struct {
	Speed float64 `yaml:"speed"`
}

// PawConfig defines the catch animation.
type PawConfig struct {
	Width      float64  `yaml:"width"`
	Speed      float64  `yaml:"speed"`
	Separation float64  `yaml:"separation"` // gap kept between paw and mouse at the catch point
	Variants   []string `yaml:"variants"`
}

// GenerationConfig bounds the level generator.
type GenerationConfig struct {
	MaxPathSteps      int     `yaml:"max_path_steps"`
	DenseThreshold    float64 `yaml:"dense_threshold"` // fraction of capacity that switches to fill-then-free
	MaxCarveAttempts  int     `yaml:"max_carve_attempts"`
	MaxPlaceAttempts  int     `yaml:"max_place_attempts"`
	MaxPickupAttempts int     `yaml:"max_pickup_attempts"`
}

// SpriteConfig describes one sprite: its aspect ratio and terminal glyphs.
type SpriteConfig struct {
	Width  float64           `yaml:"width"`
	Height float64           `yaml:"height"`
	Glyph  string            `yaml:"glyph"`
	Glyphs map[string]string `yaml:"glyphs"` // per orientation: up, down, left, right
	Color  string            `yaml:"color"`
}

// Validate reports every configuration value that cannot produce a playable game.
func (c MousetrapConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Field.Rows >= 3 && c.Field.Cols >= 2, "field: grid must be at least 3x2, got %dx%d", c.Field.Rows, c.Field.Cols)
	check(c.Field.SafeWidth >= 0 && 2*c.Field.SafeWidth < c.Field.Width, "field: safe_width %v does not fit width %v", c.Field.SafeWidth, c.Field.Width)
	check(c.Player.Height > 0 && c.Player.Speed > 0, "player: height and speed must be positive")
	check(c.Traps.Height > 0, "traps: height must be positive")
	check(c.Cheese.Height > 0 && c.Cheese.Clearance >= 0, "cheese: height must be positive and clearance non-negative")
	check(!c.Timer.Enabled || c.Timer.Total > 0, "timer: total must be positive")
	check(c.Pan.Speed > 0, "pan: speed must be positive")
	check(c.Paw.Width > 0 && c.Paw.Speed > 0, "paw: width and speed must be positive")
	check(c.Generation.MaxPathSteps > 0 && c.Generation.MaxPathSteps < c.Field.Rows*c.Field.Cols,
		"generation: max_path_steps %d out of range", c.Generation.MaxPathSteps)
	check(c.Generation.DenseThreshold > 0 && c.Generation.DenseThreshold <= 1, "generation: dense_threshold must be in (0, 1]")
	check(c.StartLevel >= 1, "start_level must be at least 1, got %d", c.StartLevel)

	return errors.Join(errs...)
}
