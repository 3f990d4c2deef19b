package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// advance moves a coordinate by vel*dt, truncating toward zero.
func advance(pos, vel int, dt float64) int {
	return int(float64(pos) + float64(vel)*dt)
}

// UpdatePaddle moves the paddle by one tick of velocity and clamps it to
// [0, ScreenWidth-PaddleWidth].
func UpdatePaddle(p *Paddle) {
	p.Position.X = core.Clamp(p.Position.X+p.Velocity.X, 0, paddleMaxX)
	p.syncRect()
}

// UpdateBall advances the ball by dt seconds and resolves wall and paddle
// contacts. Wall bounces flip velocity without correcting position, so the
// ball may sit slightly outside the playfield for a tick.
// Returns true if the ball fell past the bottom edge and was re-docked.
func UpdateBall(b *Ball, paddle *Paddle, dt float64) (respawned bool) {
	b.Position.X = advance(b.Position.X, b.Velocity.X, dt)
	b.Position.Y = advance(b.Position.Y, b.Velocity.Y, dt)
	b.syncRect()

	if b.Position.X <= 0 || b.Position.X+BallSize >= ScreenWidth {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Position.Y <= 0 {
		b.Velocity.Y = -b.Velocity.Y
	}
	if b.Position.Y >= ScreenHeight {
		b.dock()
		respawned = true
	}
	if b.Rect.Intersects(paddle.Rect) {
		b.Velocity.Y = -b.Velocity.Y
	}
	return respawned
}

// CollideBricks sweeps the grid in row-major order and destroys every live
// brick the ball overlaps. Each hit nudges the ball down and flips its
// vertical velocity, so two hits in one sweep cancel out. All hits test
// against the ball's hitbox as it was when the sweep started.
// Returns the number of bricks destroyed.
func CollideBricks(b *Ball, grid *BrickGrid) int {
	hitbox := b.Rect
	hits := 0
	for i := range grid {
		for j := range grid[i] {
			brick := &grid[i][j]
			if !brick.Alive || !hitbox.Intersects(brick.Rect) {
				continue
			}
			b.Position.Y += brickNudge
			b.Velocity.Y = -b.Velocity.Y
			brick.Alive = false
			hits++
		}
	}
	if hits > 0 {
		b.syncRect()
	}
	return hits
}

// Update advances the simulation by dt seconds: paddle, then ball against
// walls and paddle, then the brick sweep.
func (g *Game) Update(dt float64) core.StepResult {
	g.tick++

	UpdatePaddle(&g.paddle)
	respawned := UpdateBall(&g.ball, &g.paddle, dt)
	hits := CollideBricks(&g.ball, &g.session.Bricks)

	return core.StepResult{
		State:           g.State(),
		BricksDestroyed: hits,
		Respawned:       respawned,
	}
}
