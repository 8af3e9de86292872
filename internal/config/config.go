// Package config provides YAML-based game configuration loading and
// difficulty presets for Rabduction.
package config

import "time"

// RabductionConfig contains all configuration for a Rabduction run.
type RabductionConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Audio     AudioConfig     `yaml:"audio"`
}

// WindowConfig describes the play field in world units.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the per-tick physics constants.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Velocity lost per tick
	BounceVelocity float64 `yaml:"bounce_velocity"` // Velocity after landing
	MoveSpeed      float64 `yaml:"move_speed"`      // Horizontal units per tick for a held key
	MaxSpeed       float64 `yaml:"max_speed"`       // Clamp for horizontal units per tick
	DeathLine      float64 `yaml:"death_line"`      // Player dies below this Y
}

// PlayerConfig defines the player archetype.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnX         float64 `yaml:"spawn_x"`
	SpawnY         float64 `yaml:"spawn_y"`
	LaunchVelocity float64 `yaml:"launch_velocity"`
	Glyph          string  `yaml:"glyph"`
	Color          string  `yaml:"color"`
}

// PlatformsConfig defines spawning, scrolling and the archetype catalog.
type PlatformsConfig struct {
	SpawnInterval time.Duration     `yaml:"spawn_interval"`
	SpawnLine     float64           `yaml:"spawn_line"`
	SpawnRange    float64           `yaml:"spawn_range"` // Spawn X is drawn from [-range, range]
	ScrollStep    float64           `yaml:"scroll_step"`
	CleanupLine   float64           `yaml:"cleanup_line"`
	Catalog       []ArchetypeConfig `yaml:"catalog"`
}

// ArchetypeConfig is one platform variant. Glyph and Color are its visual asset.
type ArchetypeConfig struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// ScoringConfig defines the score cadence.
type ScoringConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// AudioConfig defines bounce sound playback.
type AudioConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Volume      float64  `yaml:"volume"` // 0.0 - 1.0
	SampleRate  int      `yaml:"sample_rate"`
	BounceClips []string `yaml:"bounce_clips"`
}

// DifficultyPreset represents a named difficulty level.
// Presets are applied once at load time; nothing changes during a run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
