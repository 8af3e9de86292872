package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	got := embeddedDefault()
	want := DefaultRabductionConfig()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded YAML and DefaultRabductionConfig differ:\n got  %+v\n want %+v", got, want)
	}
	if err := Validate(want); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
physics:
  gravity: 0.8
platforms:
  spawn_interval: 2s
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Platforms.SpawnInterval != 2*time.Second {
		t.Errorf("SpawnInterval = %v, expected 2s", cfg.Platforms.SpawnInterval)
	}
	// Untouched values keep defaults
	if cfg.Physics.BounceVelocity != 12 {
		t.Errorf("BounceVelocity = %v, expected default 12", cfg.Physics.BounceVelocity)
	}
	if len(cfg.Platforms.Catalog) != 3 {
		t.Errorf("Catalog length = %d, expected default 3", len(cfg.Platforms.Catalog))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("scoring:\n  interval: 0s\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "scoring.interval") {
		t.Errorf("expected scoring.interval validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RabductionConfig)
		substr string
	}{
		{"empty catalog", func(c *RabductionConfig) { c.Platforms.Catalog = nil }, "catalog must not be empty"},
		{"zero spawn interval", func(c *RabductionConfig) { c.Platforms.SpawnInterval = 0 }, "spawn_interval"},
		{"cleanup above death", func(c *RabductionConfig) { c.Platforms.CleanupLine = -100 }, "cleanup_line"},
		{"bad archetype size", func(c *RabductionConfig) { c.Platforms.Catalog[0].Width = 0 }, "size must be positive"},
		{"unnamed archetype", func(c *RabductionConfig) { c.Platforms.Catalog[1].Name = "" }, "name is required"},
		{"zero player", func(c *RabductionConfig) { c.Player.Height = 0 }, "player size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRabductionConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil || !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.substr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "Normal", " hard "} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultRabductionConfig()

	easy := DefaultRabductionConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Platforms.SpawnInterval != 1200*time.Millisecond {
		t.Errorf("easy SpawnInterval = %v, expected 1.2s", easy.Platforms.SpawnInterval)
	}
	if easy.Platforms.ScrollStep != 0.75 {
		t.Errorf("easy ScrollStep = %v, expected 0.75", easy.Platforms.ScrollStep)
	}

	hard := DefaultRabductionConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Platforms.SpawnInterval != 1950*time.Millisecond {
		t.Errorf("hard SpawnInterval = %v, expected 1.95s", hard.Platforms.SpawnInterval)
	}
	if hard.Platforms.ScrollStep != 1.5 {
		t.Errorf("hard ScrollStep = %v, expected 1.5", hard.Platforms.ScrollStep)
	}

	normal := DefaultRabductionConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}
}

func TestMarshalRoundTripKeepsDurations(t *testing.T) {
	data, err := Marshal(DefaultRabductionConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval: 1.5s") {
		t.Errorf("expected human readable duration in YAML, got:\n%s", data)
	}
}
