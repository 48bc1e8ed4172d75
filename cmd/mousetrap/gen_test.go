package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func genOutput(t *testing.T, level, count int, seed int64) string {
	t.Helper()
	flagGenLevel, flagGenCount, flagSeed, flagConfig = level, count, seed, ""
	t.Cleanup(func() { flagGenLevel, flagGenCount, flagSeed = 1, 1, 0 })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runGen(cmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	return buf.String()
}

func TestGenPrintsConsecutiveLevels(t *testing.T) {
	out := genOutput(t, 4, 3, 42)

	for _, want := range []string{"seed 42", "level 4:", "level 5:", "level 6:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "level 7:") {
		t.Error("generated one level too many")
	}
}

func TestGenSeedIsReproducible(t *testing.T) {
	if genOutput(t, 10, 2, 7) != genOutput(t, 10, 2, 7) {
		t.Error("same seed produced different layouts")
	}
}

func TestGenRejectsBadRange(t *testing.T) {
	flagGenLevel, flagGenCount = 0, 1
	t.Cleanup(func() { flagGenLevel = 1 })
	if err := runGen(&cobra.Command{}, nil); err == nil {
		t.Error("level 0 should be rejected")
	}
}

func TestGenFallsBackToDefaultsOnInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero-rows.yaml")
	if err := os.WriteFile(path, []byte("field:\n  rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagGenLevel, flagGenCount, flagSeed, flagConfig = 3, 2, 11, path
	t.Cleanup(func() { flagGenLevel, flagGenCount, flagSeed, flagConfig = 1, 1, 0, "" })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runGen(cmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "grid 6x8") || !strings.Contains(out, "level 4:") {
		t.Errorf("expected default 6x8 layouts:\n%s", out)
	}
}
