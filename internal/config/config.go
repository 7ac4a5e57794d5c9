// Package config provides YAML-based configuration loading for the battle
// and its platforms.
package config

// BattleConfig contains all configuration for Monster Battle.
type BattleConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Monster MonsterConfig `yaml:"monster"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// ArenaConfig defines the logical play surface.
type ArenaConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig defines the player's initial state and combat parameters.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`           // Units per second
	Width          float64 `yaml:"width"`           // Footprint, overridden by a loaded sprite
	Height         float64 `yaml:"height"`          // Footprint, overridden by a loaded sprite
	AttackDamage   int     `yaml:"attack_damage"`   // Damage per successful attack
	AttackCooldown float64 `yaml:"attack_cooldown"` // Seconds between attacks
}

// MonsterConfig defines the monster's initial state and combat parameters.
type MonsterConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Health     int     `yaml:"health"`
	Speed      float64 `yaml:"speed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	ContactDPS float64 `yaml:"contact_dps"` // Player health lost per second of contact
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FPS int `yaml:"fps"`
	// MaxFrameTime caps the elapsed time fed into a single update, in
	// seconds. Zero leaves frame time unclamped.
	MaxFrameTime float64 `yaml:"max_frame_time"`
}

// AudioConfig defines sound settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`       // 0.0 - 1.0
	AttackSound string  `yaml:"attack_sound"` // Optional WAV file, synthesized if empty or missing
	Music       string  `yaml:"music"`        // Optional WAV file, synthesized if empty or missing
}

// AssetsConfig defines sprite locations for the window platform.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Player     string `yaml:"player"`
	Monster    string `yaml:"monster"`
	Background string `yaml:"background"`
}
