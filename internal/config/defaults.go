package config

import (
	_ "embed"
)

//go:embed defaults/mousetrap.yaml
var defaultMousetrapYAML []byte

// DefaultMousetrapConfig returns the default Mousetrap configuration.
func DefaultMousetrapConfig() MousetrapConfig {
	return MousetrapConfig{
		Field: FieldConfig{
			Width:     2560,
			Height:    1440,
			Rows:      6,
			Cols:      8,
			SafeWidth: 320,
		},
		Player: PlayerConfig{
			Height: 125,
			Speed:  60,
			Sprite: "mouse",
		},
		Traps: TrapConfig{
			Height: 120,
			Sprite: "trap",
		},
		Cheese: CheeseConfig{
			Height:    160,
			Clearance: 100,
			TimeValue: 150,
			Sprite:    "cheese",
		},
		Timer: TimerConfig{
			Enabled: true,
			Total:   300,
			Warning: 75,
		},
		Pan: PanConfig{
			Speed: 120,
		},
		Paw: PawConfig{
			Width:      640,
			Speed:      60,
			Separation: 240,
			Variants:   []string{"paw_1", "paw_2"},
		},
		Generation: GenerationConfig{
			MaxPathSteps:      20,
			DenseThreshold:    0.75,
			MaxCarveAttempts:  10000,
			MaxPlaceAttempts:  10000,
			MaxPickupAttempts: 10000,
		},
		StartLevel: 1,
		Sprites: map[string]SpriteConfig{
			"mouse": {
				Width: 1, Height: 1,
				Glyphs: map[string]string{"up": "▲", "down": "▼", "left": "◀", "right": "▶"},
				Color:  "bright_white",
			},
			"trap":       {Width: 1, Height: 1, Glyph: "#", Color: "red"},
			"cheese":     {Width: 1, Height: 1, Glyph: "◆", Color: "bright_yellow"},
			"paw_1":      {Width: 2, Height: 3, Glyphs: map[string]string{"up": "▓", "down": "▓"}, Color: "orange"},
			"paw_2":      {Width: 2, Height: 3, Glyphs: map[string]string{"up": "▒", "down": "▒"}, Color: "gray"},
			"background": {Width: 16, Height: 9, Glyph: "·", Color: "gray"},
		},
	}
}
