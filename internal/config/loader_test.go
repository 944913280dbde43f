package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := LoadBulbs("")
	if err != nil {
		t.Fatalf("LoadBulbs: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default invalid: %v", err)
	}
	if cfg != DefaultBulbsConfig() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultBulbsConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulbs.yaml")
	data := []byte("board:\n  rows: 7\n  cols: 7\n  palette: 4\nruns:\n  min_run: 3\n  line_clear_run: 4\n  area_clear_run: 5\nscoring:\n  base_score: 10\n  extra_score: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadBulbs(path)
	if err != nil {
		t.Fatalf("LoadBulbs: %v", err)
	}
	if cfg.Board.Rows != 7 || cfg.Board.Palette != 4 || cfg.Scoring.BaseScore != 10 {
		t.Errorf("loaded config = %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := LoadBulbs(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing explicit config must error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		palette int
	}{
		{DifficultyEasy, 4},
		{DifficultyNormal, 5},
		{DifficultyHard, 6},
	}
	for _, tc := range tests {
		cfg := DefaultBulbsConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Board.Palette != tc.palette {
			t.Errorf("%s: palette = %d, want %d", tc.preset, cfg.Board.Palette, tc.palette)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: preset produced invalid config: %v", tc.preset, err)
		}
	}

	// Fixed leaves everything alone.
	cfg := DefaultBulbsConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg != DefaultBulbsConfig() {
		t.Error("fixed preset must not modify the config")
	}
}

func TestValidPreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if !ValidPreset(name) {
			t.Errorf("ValidPreset(%q) = false", name)
		}
	}
	if ValidPreset("extreme") {
		t.Error("unknown preset accepted")
	}
}
