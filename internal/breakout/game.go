package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Options configures a new game.
type Options struct {
	Seed   int64     // RNG seed for launch speeds
	Launch LaunchSet // Zero value means DefaultLaunchSet
}

// Game is a single Breakout session: the brick grid, the paddle and the
// ball, plus the RNG used for launches.
type Game struct {
	session Session
	paddle  Paddle
	ball    Ball

	launch LaunchSet
	rng    *SimpleRNG
	seed   int64
	tick   uint64
}

// New creates a game with a full grid, a centred paddle and a docked ball.
func New(opts Options) (*Game, error) {
	launch := opts.Launch
	if launch.IsZero() {
		launch = DefaultLaunchSet()
	}
	if err := launch.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	return &Game{
		session: NewSession(),
		paddle:  NewPaddle(),
		ball:    NewBall(),
		launch:  launch,
		rng:     NewSimpleRNG(opts.Seed),
		seed:    opts.Seed,
	}, nil
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Bricks returns a copy of the brick grid.
func (g *Game) Bricks() BrickGrid {
	return g.session.Bricks
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.session.Lives
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.session.Score
}

// Seed returns the seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Launch returns the launch table in use.
func (g *Game) Launch() LaunchSet {
	return g.launch
}

// Tick returns the number of updates applied so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lives:       g.session.Lives,
		Score:       g.session.Score,
		BricksAlive: g.session.Bricks.CountAlive(),
		Docked:      g.ball.Docked(),
	}
}
