package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// DrawPaddle fills the paddle rect.
func DrawPaddle(s core.Surface, p Paddle) {
	s.FillRect(p.Rect)
}

// DrawBall fills the ball rect.
func DrawBall(s core.Surface, b Ball) {
	s.FillRect(b.Rect)
}

// DrawBricks fills every live brick in grid order.
func DrawBricks(s core.Surface, grid *BrickGrid) {
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j].Alive {
				s.FillRect(grid[i][j].Rect)
			}
		}
	}
}

// Draw renders the paddle, the ball and the bricks, in that order.
// Clearing and presenting the frame is up to the caller.
func (g *Game) Draw(s core.Surface) {
	DrawPaddle(s, g.paddle)
	DrawBall(s, g.ball)
	DrawBricks(s, &g.session.Bricks)
}
