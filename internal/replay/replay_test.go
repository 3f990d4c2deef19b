package replay

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// recordSession plays a scripted session with uneven frame times and
// returns the finished recording.
func recordSession(t *testing.T, seed int64) Recording {
	t.Helper()

	g, err := breakout.New(breakout.Options{Seed: seed})
	if err != nil {
		t.Fatalf("breakout.New() error: %v", err)
	}
	rec := NewRecorder(g)
	input := engine.NewQueueSource()
	clock := engine.NewManualClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	loop, err := engine.NewLoop(g, engine.Options{
		Input:    input,
		Surface:  engine.NullSurface{},
		Clock:    clock,
		Observer: rec,
	})
	if err != nil {
		t.Fatalf("NewLoop() error: %v", err)
	}

	deltas := []time.Duration{16 * time.Millisecond, 17 * time.Millisecond, 33 * time.Millisecond}
	for i := range 900 {
		switch {
		case i == 5:
			input.Push(core.KeyDown(core.KeySpace))
		case i%50 == 10:
			input.Push(core.KeyDown(core.KeyLeft))
		case i%50 == 30:
			input.Push(core.KeyUp(core.KeyLeft), core.KeyDown(core.KeyRight), core.KeyDown(core.KeySpace))
		case i%50 == 45:
			input.Push(core.KeyUp(core.KeyRight))
		}
		if i == 899 {
			input.Push(core.Quit())
		}
		clock.Advance(deltas[i%len(deltas)])
		loop.Step()
	}
	if loop.Running() {
		t.Fatal("loop should have stopped on quit")
	}
	return rec.Finish(g)
}

func TestReplayReproducesSession(t *testing.T) {
	rec := recordSession(t, 2024)

	if len(rec.Frames) != 900 {
		t.Fatalf("recorded %d frames, want 900", len(rec.Frames))
	}
	if rec.Frames[1].DeltaMillis != 17 {
		t.Errorf("frame 1 delta = %d, want 17", rec.Frames[1].DeltaMillis)
	}
	if rec.Seed != 2024 {
		t.Errorf("Seed = %d, want 2024", rec.Seed)
	}

	g, err := Play(rec, nil)
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	snap := g.Snapshot()
	if snap.Hash() != rec.FinalHash {
		t.Errorf("replayed hash %016x, want %016x", snap.Hash(), rec.FinalHash)
	}
	if snap.BricksAlive != rec.BricksAlive {
		t.Errorf("BricksAlive = %d, want %d", snap.BricksAlive, rec.BricksAlive)
	}
	if g.Tick() != 900 {
		t.Errorf("replayed %d ticks, want 900", g.Tick())
	}
}

func TestReplayDetectsTampering(t *testing.T) {
	rec := recordSession(t, 7)
	rec.FinalHash++

	_, err := Play(rec, nil)
	if !errors.Is(err, ErrHashMismatch) {
		t.Errorf("Play() error = %v, want ErrHashMismatch", err)
	}
}

func TestReplayRejectsBadLaunchSet(t *testing.T) {
	rec := Recording{Launch: breakout.LaunchSet{X: []int{0}, Y: []int{100}}}
	if _, err := Play(rec, nil); !errors.Is(err, breakout.ErrZeroLaunchSpeed) {
		t.Errorf("Play() error = %v, want ErrZeroLaunchSpeed", err)
	}
}

func TestRecorderCopiesEvents(t *testing.T) {
	g, err := breakout.New(breakout.Options{})
	if err != nil {
		t.Fatalf("breakout.New() error: %v", err)
	}
	rec := NewRecorder(g)

	events := []core.Event{core.KeyDown(core.KeyLeft)}
	rec.ObserveTick(engine.Tick{Events: events, DeltaMillis: 16})
	events[0] = core.Quit()

	got := rec.Finish(g)
	if got.Frames[0].Events[0] != core.KeyDown(core.KeyLeft) {
		t.Error("recorder should copy events, not alias the loop's slice")
	}
	if rec.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rec.Len())
	}
}

func TestClockReplaysDeltas(t *testing.T) {
	base := time.Unix(100, 0)
	frames := []Frame{{DeltaMillis: 16}, {DeltaMillis: 40}}
	c := NewClock(base, frames)

	want := []time.Time{
		base,
		base.Add(16 * time.Millisecond),
		base.Add(56 * time.Millisecond),
		base.Add(56 * time.Millisecond), // past the end the clock stops
	}
	for i, w := range want {
		if got := c.Now(); !got.Equal(w) {
			t.Errorf("read %d = %v, want %v", i, got, w)
		}
	}
}

func TestSourcePollsOneFramePerCall(t *testing.T) {
	s := NewSource([]Frame{
		{Events: []core.Event{core.KeyDown(core.KeySpace)}},
		{},
	})
	if got := s.Poll(); len(got) != 1 {
		t.Errorf("first Poll() = %v, want one event", got)
	}
	if got := s.Poll(); len(got) != 0 {
		t.Errorf("second Poll() = %v, want none", got)
	}
	if s.Remaining() != 0 || s.Poll() != nil {
		t.Error("exhausted source should poll nil")
	}
}
