// Package breakout implements the Breakout simulation: a paddle, a single
// ball and a fixed grid of bricks advanced one tick at a time.
//
// The package is pure logic. It reads input as core.Event values, advances
// state with Update and draws through a core.Surface. It never touches a
// terminal, a window or the wall clock.
package breakout

// Playfield dimensions in pixels.
const (
	ScreenWidth  = 960
	ScreenHeight = 640
)

// Paddle parameters.
const (
	PaddleWidth  = 50
	PaddleHeight = 10
	PaddleSpeed  = 10 // pixels per tick, not scaled by delta time
)

// BallSize is the edge length of the square ball.
const BallSize = 10

// Brick grid parameters. Rows counts bricks along the x axis and Columns
// along the y axis, so the grid is 16 bricks wide and 6 bricks tall.
const (
	BrickWidth  = 55
	BrickHeight = 15
	BrickGap    = 5
	Rows        = 16
	Columns     = 6
	BrickCount  = Rows * Columns
)

// Session parameters.
const (
	StartingLives = 3
	TargetFPS     = 60 // nominal pacing target; presentation paces the loop
)

// brickNudge is how far a brick hit pushes the ball down to keep it from
// sticking inside the grid.
const brickNudge = 2

// Derived positions.
const (
	paddleMaxX   = ScreenWidth - PaddleWidth
	paddleStartX = ScreenWidth/2 - PaddleWidth/2
	paddleStartY = ScreenHeight - 2*PaddleHeight
	ballStartX   = ScreenWidth/2 - BallSize/2
	ballStartY   = ScreenHeight/2 + BallSize/2
)

// Default launch speeds in pixels per second, one table per axis.
var (
	defaultLaunchX = [...]int{-200, 200, -300, 300, -400, 400, -500, 500}
	defaultLaunchY = [...]int{-200, 200, -300, 300, -400, 400, -500, 500}
)
