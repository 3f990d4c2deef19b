// Package replay records the input and timing of a session and plays it back
// through the same frame loop to reproduce the exact final state.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// ErrHashMismatch is returned when a replay does not reproduce the
// recorded final state.
var ErrHashMismatch = errors.New("replay: final state hash mismatch")

// Frame is the input and elapsed time of one tick.
type Frame struct {
	DeltaMillis int64
	Events      []core.Event
}

// Recording is everything needed to reproduce a session.
type Recording struct {
	ID          int64
	Seed        int64
	Launch      breakout.LaunchSet
	Frames      []Frame
	FinalHash   uint64
	BricksAlive int
	CreatedAt   time.Time
}

// Recorder captures ticks from a running loop. Attach it as the loop's
// engine.Observer.
type Recorder struct {
	seed   int64
	launch breakout.LaunchSet
	frames []Frame
}

// NewRecorder creates a recorder for g. Call before the first tick.
func NewRecorder(g *breakout.Game) *Recorder {
	return &Recorder{
		seed:   g.Seed(),
		launch: g.Launch(),
		frames: make([]Frame, 0, 1024),
	}
}

// ObserveTick stores the tick's events and delta.
func (r *Recorder) ObserveTick(t engine.Tick) {
	var events []core.Event
	if len(t.Events) > 0 {
		events = make([]core.Event, len(t.Events))
		copy(events, t.Events)
	}
	r.frames = append(r.frames, Frame{DeltaMillis: t.DeltaMillis, Events: events})
}

// Len returns the number of ticks recorded so far.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Finish seals the recording with g's final state.
func (r *Recorder) Finish(g *breakout.Game) Recording {
	snap := g.Snapshot()
	return Recording{
		Seed:        r.seed,
		Launch:      r.launch,
		Frames:      r.frames,
		FinalHash:   snap.Hash(),
		BricksAlive: snap.BricksAlive,
		CreatedAt:   time.Now(),
	}
}

// Source feeds recorded events back one frame per Poll.
type Source struct {
	frames []Frame
	next   int
}

// NewSource creates a source over frames.
func NewSource(frames []Frame) *Source {
	return &Source{frames: frames}
}

// Poll returns the next frame's events.
func (s *Source) Poll() []core.Event {
	if s.next >= len(s.frames) {
		return nil
	}
	events := s.frames[s.next].Events
	s.next++
	return events
}

// Remaining returns how many frames have not been polled yet.
func (s *Source) Remaining() int {
	return len(s.frames) - s.next
}

// Clock replays recorded deltas. The first reading is the base time (taken
// by engine.NewLoop); every later reading advances by the next frame's delta.
type Clock struct {
	now    time.Time
	frames []Frame
	reads  int
}

// NewClock creates a replay clock starting at base.
func NewClock(base time.Time, frames []Frame) *Clock {
	return &Clock{now: base, frames: frames}
}

// Now returns the replayed time.
func (c *Clock) Now() time.Time {
	if c.reads > 0 && c.reads <= len(c.frames) {
		c.now = c.now.Add(time.Duration(c.frames[c.reads-1].DeltaMillis) * time.Millisecond)
	}
	c.reads++
	return c.now
}

// Play re-runs rec headlessly and checks the final state against
// rec.FinalHash. The returned game is valid even on a hash mismatch.
func Play(rec Recording, logger *log.Logger) (*breakout.Game, error) {
	g, err := breakout.New(breakout.Options{Seed: rec.Seed, Launch: rec.Launch})
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	src := NewSource(rec.Frames)
	loop, err := engine.NewLoop(g, engine.Options{
		Input:   src,
		Surface: engine.NullSurface{},
		Clock:   NewClock(time.Unix(0, 0), rec.Frames),
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	for src.Remaining() > 0 && loop.Step() {
	}
	if err := loop.Close(); err != nil {
		return g, fmt.Errorf("replay: %w", err)
	}

	snap := g.Snapshot()
	if got := snap.Hash(); got != rec.FinalHash {
		return g, fmt.Errorf("%w: recording %d: got %016x, want %016x",
			ErrHashMismatch, rec.ID, got, rec.FinalHash)
	}
	return g, nil
}
