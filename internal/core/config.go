package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// TicksFor converts a wall-clock duration in milliseconds into simulation
// ticks at the given tick rate. Always at least 1 for positive input, so
// short windows never vanish at low tick rates.
func TicksFor(ms, tickRate int) int {
	if ms <= 0 {
		return 0
	}
	ticks := ms * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// TicksFor converts a wall-clock duration in milliseconds into simulation
// ticks at this config's tick rate.
func (c RuntimeConfig) TicksFor(ms int) int {
	return TicksFor(ms, c.TickRate)
}

// DeltaMs returns the wall-clock milliseconds represented by one tick.
func (c RuntimeConfig) DeltaMs() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the session is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
