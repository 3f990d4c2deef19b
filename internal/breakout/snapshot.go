package breakout

// Snapshot contains the complete game state for replay verification.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	PaddleX     int
	PaddleVX    int
	BallX       int
	BallY       int
	BallVX      int
	BallVY      int
	Lives       int
	Score       int
	BricksAlive int

	// Brick alive flags, flattened row-major (row*Columns + column)
	BrickData []int

	// RNG state for launches
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, BrickCount)
	for i := range g.session.Bricks {
		for j := range g.session.Bricks[i] {
			alive := 0
			if g.session.Bricks[i][j].Alive {
				alive = 1
			}
			brickData = append(brickData, alive)
		}
	}

	return Snapshot{
		Tick:        g.tick,
		PaddleX:     g.paddle.Position.X,
		PaddleVX:    g.paddle.Velocity.X,
		BallX:       g.ball.Position.X,
		BallY:       g.ball.Position.Y,
		BallVX:      g.ball.Velocity.X,
		BallVY:      g.ball.Velocity.Y,
		Lives:       g.session.Lives,
		Score:       g.session.Score,
		BricksAlive: g.session.Bricks.CountAlive(),
		BrickData:   brickData,
		RNGState:    g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleVX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksAlive) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
