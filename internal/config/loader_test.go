package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := LoadMousetrap("")
	if err != nil {
		t.Fatalf("LoadMousetrap() error: %v", err)
	}
	want := DefaultMousetrapConfig()

	if cfg.Field != want.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, want.Field)
	}
	if cfg.Generation != want.Generation {
		t.Errorf("Generation = %+v, expected %+v", cfg.Generation, want.Generation)
	}
	if cfg.Timer != want.Timer || cfg.Pan != want.Pan {
		t.Errorf("Timer/Pan = %+v/%+v", cfg.Timer, cfg.Pan)
	}
	if len(cfg.Sprites) != len(want.Sprites) {
		t.Errorf("got %d sprites, expected %d", len(cfg.Sprites), len(want.Sprites))
	}
	if got := cfg.Sprites["mouse"].Glyphs["left"]; got != "◀" {
		t.Errorf("mouse left glyph = %q", got)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timer:\n  total: 500\npan:\n  speed: 80\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMousetrap(path)
	if err != nil {
		t.Fatalf("LoadMousetrap() error: %v", err)
	}
	if cfg.Timer.Total != 500 || cfg.Pan.Speed != 80 {
		t.Errorf("overrides not applied: timer=%d pan=%v", cfg.Timer.Total, cfg.Pan.Speed)
	}
	// Untouched keys keep their defaults.
	if cfg.Timer.Warning != 75 || cfg.Field.Cols != 8 || !cfg.Timer.Enabled {
		t.Errorf("defaults lost: %+v %+v", cfg.Timer, cfg.Field)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMousetrap(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMousetrap(bad); err == nil {
		t.Error("expected error for unparsable config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pan:\n  speed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMousetrap(invalid); err == nil {
		t.Error("expected validation error for zero pan speed")
	}
}

func TestLoadCustomErrorReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero-rows.yaml")
	if err := os.WriteFile(path, []byte("field:\n  rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMousetrap(path)
	if err == nil {
		t.Fatal("expected validation error for zero rows")
	}
	want := DefaultMousetrapConfig()
	if cfg.Field != want.Field || cfg.Generation != want.Generation {
		t.Errorf("got field %+v, want defaults %+v", cfg.Field, want.Field)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MousetrapConfig)
		wantErr bool
	}{
		{"defaults", func(*MousetrapConfig) {}, false},
		{"tiny grid", func(c *MousetrapConfig) { c.Field.Rows = 2 }, true},
		{"safe width too wide", func(c *MousetrapConfig) { c.Field.SafeWidth = 1300 }, true},
		{"path longer than grid", func(c *MousetrapConfig) { c.Generation.MaxPathSteps = 48 }, true},
		{"disabled timer ignores total", func(c *MousetrapConfig) { c.Timer.Enabled = false; c.Timer.Total = 0 }, false},
		{"start level zero", func(c *MousetrapConfig) { c.StartLevel = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMousetrapConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyMousetrapPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		timer      int
		startLevel int
	}{
		{DifficultyEasy, 400, 1},
		{DifficultyNormal, 300, 1},
		{DifficultyHard, 240, 16},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMousetrapConfig()
			ApplyMousetrapPreset(&cfg, tc.preset)
			if cfg.Timer.Total != tc.timer || cfg.StartLevel != tc.startLevel {
				t.Errorf("got timer=%d start=%d, expected %d/%d", cfg.Timer.Total, cfg.StartLevel, tc.timer, tc.startLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset(" Hard ") != DifficultyHard {
		t.Error("ParsePreset should be case and space insensitive")
	}
	if ParsePreset("nightmare") != DifficultyNormal {
		t.Error("unknown presets fall back to normal")
	}
}
