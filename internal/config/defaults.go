package config

import (
	_ "embed"
)

//go:embed defaults/battle.yaml
var defaultBattleYAML []byte

// DefaultBattleConfig returns the built-in Monster Battle configuration.
func DefaultBattleConfig() BattleConfig {
	return BattleConfig{
		Arena: ArenaConfig{
			Width:  1280,
			Height: 720,
			Title:  "Monster Battle",
		},
		Player: PlayerConfig{
			StartX:         100,
			StartY:         360,
			Health:         100,
			Speed:          300,
			Width:          64,
			Height:         64,
			AttackDamage:   20,
			AttackCooldown: 0.5,
		},
		Monster: MonsterConfig{
			StartX:     900,
			StartY:     360,
			Health:     100,
			Speed:      100,
			Width:      80,
			Height:     80,
			ContactDPS: 30,
		},
		Timing: TimingConfig{
			FPS:          60,
			MaxFrameTime: 0,
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      0.8,
			AttackSound: "resources/attack.wav",
			Music:       "resources/music.wav",
		},
		Assets: AssetsConfig{
			Dir:        "resources",
			Player:     "player.png",
			Monster:    "monster.png",
			Background: "background.png",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBattleYAML
}
