package config

import (
	_ "embed"
)

//go:embed defaults/astrohop.yaml
var defaultAstroYAML []byte

// DefaultAstroConfig returns the default Astro Hop configuration.
// It matches defaults/astrohop.yaml.
func DefaultAstroConfig() AstroConfig {
	return AstroConfig{
		World: AstroWorld{
			Width:      1280,
			Height:     720,
			Scale:      1,
			WrapMargin: 50,
			SpawnInset: 10,
		},
		Player: AstroPlayer{
			Radius:       50,
			OrbitRadius:  65,
			LaunchOffset: 120,
			TurnStep:     0.08,
			FlightSpeed:  6,
			AnimSpeed:    0.25,
			DeadAnim:     0.2,
		},
		Bodies: AstroBodies{
			AsteroidRadius: 45,
			MeteorRadius:   40,
			GemRadius:      30,
			PieceRadius:    10,
			DriftSpeed:     2,
			PieceSpeed:     4,
			AnimSpeed:      0.2,
		},
		Rounds: AstroRounds{
			StartGems:       3,
			GemsPerRound:    2.5,
			MeteorsPerRound: 1,
		},
		Particles: AstroParticles{
			Radius:       20,
			Decay:        0.05,
			MinScale:     0.8,
			DustMinScale: 1,
			TrailOffset:  2,
		},
		Destroyed: AstroDestroyed{
			AnimSpeed: 0.2,
			MaxFrame:  10,
		},
		Audio: AudioConfig{
			Enabled:       true,
			SampleRate:    44100,
			MasterVolume:  0.6,
			MusicVolume:   0.35,
			EffectsVolume: 0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraMeteors:    4,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAstroYAML
}
