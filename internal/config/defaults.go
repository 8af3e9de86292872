package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rabduction.yaml
var defaultRabductionYAML []byte

// DefaultRabductionConfig returns the built-in configuration.
// It mirrors defaults/rabduction.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRabductionConfig() RabductionConfig {
	return RabductionConfig{
		Window: WindowConfig{
			Title:  "Rabduction!",
			Width:  500,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:        0.5,
			BounceVelocity: 12,
			MoveSpeed:      3,
			MaxSpeed:       3,
			DeathLine:      -400,
		},
		Player: PlayerConfig{
			Width:          20,
			Height:         20,
			SpawnX:         0,
			SpawnY:         -350,
			LaunchVelocity: 25,
			Glyph:          "●",
			Color:          "white",
		},
		Platforms: PlatformsConfig{
			SpawnInterval: 1500 * time.Millisecond,
			SpawnLine:     250,
			SpawnRange:    150,
			ScrollStep:    1,
			CleanupLine:   -450,
			Catalog: []ArchetypeConfig{
				{Name: "brick", Width: 60, Height: 20, Glyph: "▀", Color: "red"},
				{Name: "plank", Width: 90, Height: 14, Glyph: "▔", Color: "orange"},
				{Name: "stone", Width: 40, Height: 24, Glyph: "█", Color: "gray"},
			},
		},
		Scoring: ScoringConfig{
			Interval: 100 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:     false,
			Volume:      0.4,
			SampleRate:  44100,
			BounceClips: []string{"bounce-low", "bounce-mid", "bounce-high"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRabductionYAML
}
