package core

// RuntimeConfig contains runtime values passed to states at initialization.
// States use this to adapt to surface size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int   // Surface width in characters
	ScreenH    int   // Surface height in characters
	TickRate   int   // Frames per second (default 60)
	Fullscreen bool  // Whether the surface tracks the terminal size
	Seed       int64 // RNG seed for deterministic behavior
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
