package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseAstro(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAstroConfig()) {
		t.Errorf("embedded YAML and DefaultAstroConfig() differ:\n%+v\n%+v", cfg, DefaultAstroConfig())
	}
}

func TestLoadAstroCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  flight_speed: 9\nrounds:\n  start_gems: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAstro(path)
	if err != nil {
		t.Fatalf("LoadAstro() failed: %v", err)
	}
	if cfg.Player.FlightSpeed != 9 {
		t.Errorf("FlightSpeed = %f, expected 9", cfg.Player.FlightSpeed)
	}
	if cfg.Rounds.StartGems != 5 {
		t.Errorf("StartGems = %d, expected 5", cfg.Rounds.StartGems)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Player.OrbitRadius != 65 {
		t.Errorf("OrbitRadius = %f, expected default 65", cfg.Player.OrbitRadius)
	}
}

func TestLoadAstroMissingCustomPath(t *testing.T) {
	_, err := LoadAstro(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadAstroInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad yaml", "world: [1, 2", false},
		{"zero width", "world:\n  width: 0\n", true},
		{"negative decay", "particles:\n  decay: -1\n", true},
		{"zero dust scale", "particles:\n  dust_min_scale: 0\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadAstro(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyAstroPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		level      float64
		startGems  int
		meteorsPer int
	}{
		{"", false, 0.0, 3, 1},
		{DifficultyEasy, true, 0.0, 2, 1},
		{DifficultyNormal, true, 0.3, 3, 1},
		{DifficultyHard, true, 0.7, 3, 2},
		{DifficultyFixed, false, 0.0, 3, 1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultAstroConfig()
			ApplyAstroPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Rounds.StartGems != tc.startGems {
				t.Errorf("StartGems = %d, expected %d", cfg.Rounds.StartGems, tc.startGems)
			}
			if cfg.Rounds.MeteorsPerRound != tc.meteorsPer {
				t.Errorf("MeteorsPerRound = %d, expected %d", cfg.Rounds.MeteorsPerRound, tc.meteorsPer)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}
