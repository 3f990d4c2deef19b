package breakout

import (
	"errors"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Launch set validation errors.
var (
	ErrEmptyLaunchSet  = errors.New("launch set must have at least one speed per axis")
	ErrZeroLaunchSpeed = errors.New("launch speeds must be non-zero")
)

// LaunchSet holds the speeds a launch draws from, one table per axis.
// Each axis is drawn uniformly and independently.
type LaunchSet struct {
	X []int `yaml:"velocity_x"`
	Y []int `yaml:"velocity_y"`
}

// DefaultLaunchSet returns the stock table of {±200, ±300, ±400, ±500}
// on both axes.
func DefaultLaunchSet() LaunchSet {
	return LaunchSet{
		X: slices.Clone(defaultLaunchX[:]),
		Y: slices.Clone(defaultLaunchY[:]),
	}
}

// IsZero reports whether neither axis has been configured.
func (s LaunchSet) IsZero() bool {
	return len(s.X) == 0 && len(s.Y) == 0
}

// Validate checks that both axes are usable.
// A zero speed is rejected because it would make a launched ball
// indistinguishable from a docked one.
func (s LaunchSet) Validate() error {
	if len(s.X) == 0 || len(s.Y) == 0 {
		return ErrEmptyLaunchSet
	}
	if slices.Contains(s.X, 0) || slices.Contains(s.Y, 0) {
		return ErrZeroLaunchSpeed
	}
	return nil
}

// MovePaddle sets the paddle moving in the direction of key.
// A paddle already at the matching edge is snapped onto it and stopped so
// the next update cannot overshoot. Other keys are ignored.
func MovePaddle(p *Paddle, key core.Key) {
	switch key {
	case core.KeyLeft:
		p.Velocity = Velocity{X: -PaddleSpeed}
		if p.Position.X <= 0 {
			p.Velocity.X = 0
			p.Position.X = 0
			p.syncRect()
		}
	case core.KeyRight:
		p.Velocity = Velocity{X: PaddleSpeed}
		if p.Position.X+PaddleWidth >= ScreenWidth {
			p.Velocity.X = 0
			p.Position.X = paddleMaxX
			p.syncRect()
		}
	}
}

// StopPaddle zeroes the paddle's horizontal velocity.
func StopPaddle(p *Paddle) {
	p.Velocity.X = 0
}

// LaunchBall launches a docked ball when key is space.
// Speeds are drawn from set using rng, then flipped away from any edge
// the ball already touches. Returns true if the ball was launched.
func LaunchBall(b *Ball, key core.Key, set LaunchSet, rng *SimpleRNG) bool {
	if key != core.KeySpace || !b.Docked() {
		return false
	}

	b.Velocity.X = set.X[rng.Intn(len(set.X))]
	b.Velocity.Y = set.Y[rng.Intn(len(set.Y))]

	if b.Position.X <= 0 || b.Position.X+BallSize >= ScreenWidth {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Position.Y <= 0 || b.Position.Y+BallSize >= ScreenHeight {
		b.Velocity.Y = -b.Velocity.Y
	}
	return true
}

// HandleEvent applies one input event.
// Any key-up stops the paddle no matter which key was released.
// Quit events are left to the frame loop.
func (g *Game) HandleEvent(e core.Event) {
	switch e.Kind {
	case core.EventKeyDown:
		MovePaddle(&g.paddle, e.Key)
		LaunchBall(&g.ball, e.Key, g.launch, g.rng)
	case core.EventKeyUp:
		StopPaddle(&g.paddle)
	}
}
