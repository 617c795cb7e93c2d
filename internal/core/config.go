package core

// RuntimeConfig is what the platform tells a game when a run starts.
type RuntimeConfig struct {
	ScreenW, ScreenH int   // terminal size in cells
	TickRate         int   // simulation ticks per second
	Seed             int64 // 0 lets the platform pick a time-based seed
	Debug            bool  // start with the debug overlay on
}

// DefaultConfig returns an 80x24, 60 tick runtime with no fixed seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int // gems collected this run
	Round    int // 1-based
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
