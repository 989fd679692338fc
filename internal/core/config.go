package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// RunStats are the end-of-run figures a platform may persist or display.
type RunStats struct {
	Score           int `json:"score"`
	MaxHeight       int `json:"max_height"`
	PlatformsLanded int `json:"platforms_landed"`
	BoostsUsed      int `json:"boosts_used"`
	ElapsedSeconds  int `json:"elapsed_seconds"`
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Current score
	GameOver bool     // Whether the current run has ended
	InMenu   bool     // Whether the game is showing its own menu
	Stats    RunStats // Figures of the current or last run
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
