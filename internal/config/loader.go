package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// userConfigRelPath is the config file location relative to the XDG config dirs.
const userConfigRelPath = "rabduction/rabduction.yaml"

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/rabduction.yaml"

// Load loads the Rabduction configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/rabduction/rabduction.yaml ->
// ./configs/rabduction.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (RabductionConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files here are skipped rather than fatal.
	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if Validate(candidate) == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is unusable.
func embeddedDefault() RabductionConfig {
	var cfg RabductionConfig
	if err := yaml.Unmarshal(defaultRabductionYAML, &cfg); err != nil || Validate(cfg) != nil {
		return DefaultRabductionConfig()
	}
	return cfg
}

// userConfigPath returns the path of an existing user config file, or empty.
func userConfigPath() string {
	path, err := xdg.SearchConfigFile(userConfigRelPath)
	if err != nil {
		return ""
	}
	return path
}

// Marshal renders cfg as YAML.
func Marshal(cfg RabductionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ParsePreset converts a CLI string to a DifficultyPreset.
// An empty string means "use the config as-is" and returns "" with no error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset scales the spawn cadence and scroll speed for a preset.
// Easy spawns platforms more often and scrolls slower; hard does the opposite.
func ApplyPreset(cfg *RabductionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.SpawnInterval = cfg.Platforms.SpawnInterval * 4 / 5
		cfg.Platforms.ScrollStep *= 0.75
	case DifficultyHard:
		cfg.Platforms.SpawnInterval = cfg.Platforms.SpawnInterval * 13 / 10
		cfg.Platforms.ScrollStep *= 1.5
	}
}

// Validate checks that cfg describes a playable field.
func Validate(cfg RabductionConfig) error {
	var errs []error

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, errors.New("window size must be positive"))
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if cfg.Physics.MaxSpeed < 0 {
		errs = append(errs, errors.New("physics.max_speed must not be negative"))
	}
	if cfg.Platforms.SpawnInterval <= 0 {
		errs = append(errs, errors.New("platforms.spawn_interval must be positive"))
	}
	if cfg.Scoring.Interval <= 0 {
		errs = append(errs, errors.New("scoring.interval must be positive"))
	}
	if cfg.Platforms.SpawnRange < 0 {
		errs = append(errs, errors.New("platforms.spawn_range must not be negative"))
	}
	if cfg.Platforms.CleanupLine >= cfg.Physics.DeathLine {
		errs = append(errs, errors.New("platforms.cleanup_line must be below physics.death_line"))
	}
	if len(cfg.Platforms.Catalog) == 0 {
		errs = append(errs, errors.New("platforms.catalog must not be empty"))
	}
	for i, a := range cfg.Platforms.Catalog {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("platforms.catalog[%d]: name is required", i))
		}
		if a.Width <= 0 || a.Height <= 0 {
			errs = append(errs, fmt.Errorf("platforms.catalog[%d] %q: size must be positive", i, a.Name))
		}
	}

	return errors.Join(errs...)
}
