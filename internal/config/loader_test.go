package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultBattleConfig() {
		t.Errorf("embedded defaults differ from DefaultBattleConfig():\n got %+v\nwant %+v", cfg, DefaultBattleConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultBattleConfig()

	if cfg.Arena.Width != 1280 || cfg.Arena.Height != 720 {
		t.Errorf("arena = %dx%d, expected 1280x720", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Player.AttackDamage != 20 || cfg.Player.AttackCooldown != 0.5 {
		t.Errorf("attack = %d/%g, expected 20/0.5", cfg.Player.AttackDamage, cfg.Player.AttackCooldown)
	}
	if cfg.Monster.ContactDPS != 30 {
		t.Errorf("contact dps = %g, expected 30", cfg.Monster.ContactDPS)
	}
	if cfg.Timing.MaxFrameTime != 0 {
		t.Errorf("frame time should be unclamped by default, got %g", cfg.Timing.MaxFrameTime)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("monster:\n  speed: 150\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Monster.Speed != 150 {
		t.Errorf("monster speed = %g, expected 150", cfg.Monster.Speed)
	}
	if cfg.Monster.Health != 100 || cfg.Player.Speed != 300 {
		t.Error("unset values should keep their defaults")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero arena", "arena:\n  width: 0\n"},
		{"negative footprint", "player:\n  width: -1\n"},
		{"zero health", "monster:\n  health: 0\n"},
		{"negative speed", "player:\n  speed: -5\n"},
		{"zero player speed", "player:\n  speed: 0\n"},
		{"zero monster speed", "monster:\n  speed: 0\n"},
		{"negative cooldown", "player:\n  attack_cooldown: -0.1\n"},
		{"zero fps", "timing:\n  fps: 0\n"},
		{"negative clamp", "timing:\n  max_frame_time: -1\n"},
		{"loud volume", "audio:\n  volume: 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("arena: [unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("syntax errors should not be reported as validation errors")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.yaml")
	if err := os.WriteFile(path, []byte("player:\n  health: 150\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Health != 150 {
		t.Errorf("player health = %d, expected 150", cfg.Player.Health)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected not-exist", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultBattleConfig() {
		t.Error("Load without any file should return defaults")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "battle.yaml"), []byte("monster:\n  health: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Monster.Health != 60 {
		t.Errorf("monster health = %d, expected 60 from ./configs", cfg.Monster.Health)
	}
}
