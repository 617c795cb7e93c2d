package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config file checked after the user config.
const LocalConfigPath = "configs/astrohop.yaml"

// LoadAstro loads Astro Hop configuration.
// Search order: customPath -> ~/.astrohop/configs/astrohop.yaml -> ./configs/astrohop.yaml -> embedded default
//
// Files are decoded on top of DefaultAstroConfig, so a file only needs the keys it changes.
func LoadAstro(customPath string) (AstroConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AstroConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseAstro(data)
		if err != nil {
			return AstroConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("astrohop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAstro(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := parseAstro(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseAstro(defaultAstroYAML)
	if err != nil {
		return DefaultAstroConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAstro decodes YAML over the defaults and validates the result.
func parseAstro(data []byte) (AstroConfig, error) {
	cfg := DefaultAstroConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AstroConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AstroConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astrohop", "configs", filename)
}

// ApplyAstroPreset modifies the config based on a difficulty preset.
func ApplyAstroPreset(cfg *AstroConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the opening round based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rounds.StartGems = 2
		cfg.Player.TurnStep = 0.1
	case DifficultyHard:
		cfg.Rounds.MeteorsPerRound = 2
	}
}
