package engine

import "github.com/vovakirdan/tui-breakout/internal/core"

// NullSurface discards everything drawn to it.
type NullSurface struct{}

func (NullSurface) Clear()             {}
func (NullSurface) FillRect(core.Rect) {}
func (NullSurface) Present()           {}
func (NullSurface) Close() error       { return nil }

// FrameRecorder is a Surface that keeps the last presented frame as a
// display list. Frontends that draw on their own schedule (a window's draw
// callback, a terminal view) read the list back with Frame.
// Not safe for concurrent use.
type FrameRecorder struct {
	pending  []core.Rect
	frame    []core.Rect
	presents int
	closed   bool
}

// NewFrameRecorder creates an empty recorder.
func NewFrameRecorder() *FrameRecorder {
	return &FrameRecorder{}
}

// Clear starts a new frame.
func (r *FrameRecorder) Clear() {
	r.pending = r.pending[:0]
}

// FillRect appends a rect to the frame being built.
func (r *FrameRecorder) FillRect(rect core.Rect) {
	r.pending = append(r.pending, rect)
}

// Present publishes the frame being built.
func (r *FrameRecorder) Present() {
	r.frame = append(r.frame[:0], r.pending...)
	r.presents++
}

// Close marks the recorder closed. The last frame stays readable.
func (r *FrameRecorder) Close() error {
	r.closed = true
	return nil
}

// Frame returns a copy of the last presented frame.
func (r *FrameRecorder) Frame() []core.Rect {
	out := make([]core.Rect, len(r.frame))
	copy(out, r.frame)
	return out
}

// Presents returns how many frames have been presented.
func (r *FrameRecorder) Presents() int {
	return r.presents
}

// Closed reports whether Close has been called.
func (r *FrameRecorder) Closed() bool {
	return r.closed
}
