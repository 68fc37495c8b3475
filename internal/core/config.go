package core

// RuntimeConfig contains process-level settings passed down at boot.
type RuntimeConfig struct {
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed for obstacle placement; 0 means time based
	Muted    bool  // Disable the sound device
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
