package core

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock

	ConfigPath string // Optional game config file, empty for the search path
	Preset     string // Optional named preset applied on top of the config
	GridW      int    // Optional grid override, 0 keeps the configured width
	GridH      int    // Optional grid override, 0 keeps the configured height
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// RoundSummary describes a finished round for the score store.
type RoundSummary struct {
	Width       int // grid columns
	Height      int // grid rows
	Squares     int
	Connections int
}

// Summarizer is implemented by games that can describe their round in more
// detail than a bare score.
type Summarizer interface {
	Summary() RoundSummary
}
