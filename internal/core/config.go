package core

// RuntimeConfig describes the surface a platform renders into.
// The battle itself always simulates in logical arena units; the platform
// uses these values to scale and pace it.
type RuntimeConfig struct {
	ScreenW  int // Surface width (pixels for the window, cells for the terminal)
	ScreenH  int // Surface height
	TickRate int // Target frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
