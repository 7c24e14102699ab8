package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultPresentsConfig() {
		t.Errorf("embedded YAML and DefaultPresentsConfig differ:\n%+v\n%+v", cfg, DefaultPresentsConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultPresentsConfig()

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"screen width", cfg.Screen.Width, 800},
		{"screen height", cfg.Screen.Height, 600},
		{"gravity", cfg.Physics.Gravity, 0.5},
		{"jump force", cfg.Physics.JumpForce, 10},
		{"max health", float64(cfg.Player.MaxHealth), 6},
		{"snow nudge", cfg.Surfaces.SnowNudge, 3},
		{"ice nudge", cfg.Surfaces.IceNudge, 5},
		{"parent damage", float64(cfg.Damage.Parent), 1},
		{"ceo damage", float64(cfg.Damage.CEO), 2},
		{"projectile speed", cfg.Projectile.Speed, 5},
		{"patrol speed", cfg.Enemies.PatrolSpeed, 2},
		{"fire interval", float64(cfg.Enemies.FireInterval), 60},
		{"frame rate", float64(cfg.FrameRate), 60},
	}

	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.expected)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.25\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("gravity = %v, expected override 0.25", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpForce != 10 {
		t.Errorf("jump force = %v, expected default 10", cfg.Physics.JumpForce)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero health", "player:\n  max_health: 0\n"},
		{"negative width", "player:\n  width: -5\n"},
		{"no fire interval", "enemies:\n  fire_interval: 0\n"},
		{"negative damage", "damage:\n  ceo: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := Parse([]byte("physics: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadPresentsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("surfaces:\n  ice_nudge: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPresents(path)
	if err != nil {
		t.Fatalf("LoadPresents failed: %v", err)
	}
	if cfg.Surfaces.IceNudge != 7 {
		t.Errorf("ice nudge = %v, expected 7", cfg.Surfaces.IceNudge)
	}

	if _, err := LoadPresents(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestLoadPresentsFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPresents("")
	if err != nil {
		t.Fatalf("LoadPresents failed: %v", err)
	}
	if cfg != DefaultPresentsConfig() {
		t.Error("expected embedded defaults when no config files exist")
	}
}
