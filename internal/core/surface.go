package core

// Surface is the draw target the frame loop renders into once per tick.
//
// The loop calls Clear exactly once, then FillRect for every visible entity,
// then Present exactly once. Every rect is filled in the single foreground
// colour on a black background; colour choice belongs to the surface.
type Surface interface {
	// Clear resets the frame to the background colour.
	Clear()

	// FillRect fills r, given in playfield pixels.
	FillRect(r Rect)

	// Present publishes the frame. Surfaces backed by a display may block
	// here for vsync; this is the loop's only pacing point.
	Present()

	// Close releases any resources held by the surface.
	Close() error
}
