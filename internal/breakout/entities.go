package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Position is an integer playfield coordinate.
type Position struct {
	X, Y int
}

// Velocity is a signed integer speed. Paddle velocity is in pixels per tick,
// ball velocity in pixels per second.
type Velocity struct {
	X, Y int
}

// Paddle is the player-controlled bar at the bottom of the playfield.
// Position is authoritative; Rect is a cache re-derived after every move.
type Paddle struct {
	Rect     core.Rect
	Position Position
	Velocity Velocity
}

// NewPaddle returns a paddle centred horizontally near the bottom edge.
func NewPaddle() Paddle {
	p := Paddle{
		Rect:     core.NewRect(0, 0, PaddleWidth, PaddleHeight),
		Position: Position{X: paddleStartX, Y: paddleStartY},
	}
	p.syncRect()
	return p
}

func (p *Paddle) syncRect() {
	p.Rect.X = p.Position.X
	p.Rect.Y = p.Position.Y
}

// Ball is the single ball in play.
type Ball struct {
	Rect     core.Rect
	Position Position
	Velocity Velocity
}

// NewBall returns a docked ball at the centre of the playfield.
func NewBall() Ball {
	b := Ball{Rect: core.NewRect(0, 0, BallSize, BallSize)}
	b.dock()
	return b
}

// Docked reports whether the ball is waiting for a launch.
func (b Ball) Docked() bool {
	return b.Velocity.X == 0 && b.Velocity.Y == 0
}

// dock returns the ball to the centre with zero velocity.
func (b *Ball) dock() {
	b.Position = Position{X: ballStartX, Y: ballStartY}
	b.Velocity = Velocity{}
	b.syncRect()
}

func (b *Ball) syncRect() {
	b.Rect.X = b.Position.X
	b.Rect.Y = b.Position.Y
}

// Brick is one cell of the grid. Alive only ever goes from true to false.
type Brick struct {
	Rect  core.Rect
	Alive bool
}

// BrickGrid holds every brick, indexed [row][column] where the row index
// runs along the x axis.
type BrickGrid [Rows][Columns]Brick

// NewBrickGrid lays out a full grid of live bricks.
func NewBrickGrid() BrickGrid {
	var grid BrickGrid
	for i := range Rows {
		for j := range Columns {
			grid[i][j] = Brick{
				Rect: core.NewRect(
					BrickGap/2+i*(BrickWidth+BrickGap),
					BrickGap/2+j*(BrickHeight+BrickGap),
					BrickWidth,
					BrickHeight,
				),
				Alive: true,
			}
		}
	}
	return grid
}

// CountAlive returns the number of bricks not yet destroyed.
func (g *BrickGrid) CountAlive() int {
	n := 0
	for i := range g {
		for j := range g[i] {
			if g[i][j].Alive {
				n++
			}
		}
	}
	return n
}

// Session is the per-game state that outlives individual balls.
type Session struct {
	Bricks BrickGrid
	Lives  int
	Score  int
}

// NewSession returns a fresh session with a full grid.
func NewSession() Session {
	return Session{
		Bricks: NewBrickGrid(),
		Lives:  StartingLives,
		Score:  0,
	}
}
