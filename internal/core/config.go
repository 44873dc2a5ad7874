package core

// RuntimeConfig contains configuration passed to a game mode at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal driver)
	ScreenH  int   // Screen height in characters (terminal driver)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the coarse status a driver needs every frame.
type GameState struct {
	Score    int
	GameOver bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
