package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// configFile is the file name looked up in the user and local config dirs.
const configFile = "battle.yaml"

// Load loads the battle configuration.
// Search order: customPath -> ~/.monster-battle/configs/battle.yaml ->
// ./configs/battle.yaml -> embedded default.
//
// Values missing from a file keep their defaults. A custom path that cannot
// be read or parsed is an error; the other locations are skipped silently.
func Load(customPath string) (BattleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BattleConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BattleConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBattleYAML)
	if err != nil {
		return DefaultBattleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (BattleConfig, error) {
	cfg := DefaultBattleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BattleConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BattleConfig{}, err
	}
	return cfg, nil
}

// Validate checks that all values are usable by the simulation.
func (c BattleConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena size must be positive, got %dx%d", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player footprint must be positive", ErrInvalid)
	case c.Monster.Width <= 0 || c.Monster.Height <= 0:
		return fmt.Errorf("%w: monster footprint must be positive", ErrInvalid)
	case c.Player.Health <= 0 || c.Monster.Health <= 0:
		return fmt.Errorf("%w: initial health must be positive", ErrInvalid)
	case c.Player.Speed <= 0 || c.Monster.Speed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case c.Player.AttackDamage < 0 || c.Player.AttackCooldown < 0 || c.Monster.ContactDPS < 0:
		return fmt.Errorf("%w: combat values must not be negative", ErrInvalid)
	case c.Timing.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Timing.FPS)
	case c.Timing.MaxFrameTime < 0:
		return fmt.Errorf("%w: max_frame_time must not be negative", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume must be within [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".monster-battle", "configs", filename)
}
