package core

// GameState is the externally visible summary of a session.
// Returned inside StepResult so frontends can show a status line.
type GameState struct {
	Lives       int  // Remaining lives (never decremented by the simulation)
	Score       int  // Current score
	BricksAlive int  // Bricks not yet destroyed
	Docked      bool // Ball is waiting for launch
}

// StepResult is returned by the simulation after each tick.
type StepResult struct {
	State           GameState
	BricksDestroyed int  // Bricks destroyed during this tick
	Respawned       bool // Ball fell past the bottom and was re-docked this tick
}
