package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// fakeSim records every call the loop makes.
type fakeSim struct {
	calls  []string
	events []core.Event
	dts    []float64
}

func (s *fakeSim) HandleEvent(e core.Event) {
	s.calls = append(s.calls, "event")
	s.events = append(s.events, e)
}

func (s *fakeSim) Update(dt float64) core.StepResult {
	s.calls = append(s.calls, "update")
	s.dts = append(s.dts, dt)
	return core.StepResult{State: core.GameState{Docked: true}}
}

func (s *fakeSim) Draw(surface core.Surface) {
	s.calls = append(s.calls, "draw")
	surface.FillRect(core.NewRect(1, 2, 3, 4))
}

// countingSurface counts Clear/Present/Close calls.
type countingSurface struct {
	clears, fills, presents, closes int
	closeErr                        error
}

func (s *countingSurface) Clear()             { s.clears++ }
func (s *countingSurface) FillRect(core.Rect) { s.fills++ }
func (s *countingSurface) Present()           { s.presents++ }
func (s *countingSurface) Close() error {
	s.closes++
	return s.closeErr
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestLoop(t *testing.T, sim Simulation, surface core.Surface) (*Loop, *QueueSource, *ManualClock) {
	t.Helper()
	input := NewQueueSource()
	clock := NewManualClock(epoch)
	l, err := NewLoop(sim, Options{Input: input, Surface: surface, Clock: clock})
	if err != nil {
		t.Fatalf("NewLoop() error: %v", err)
	}
	return l, input, clock
}

func TestNewLoopRequiresCollaborators(t *testing.T) {
	sim := &fakeSim{}
	tests := []struct {
		name string
		sim  Simulation
		opts Options
		want error
	}{
		{"no simulation", nil, Options{Input: NewQueueSource(), Surface: NullSurface{}}, ErrNoSimulation},
		{"no input", sim, Options{Surface: NullSurface{}}, ErrNoInput},
		{"no surface", sim, Options{Input: NewQueueSource()}, ErrNoSurface},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoop(tc.sim, tc.opts)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewLoop() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestStepOrder(t *testing.T) {
	sim := &fakeSim{}
	surface := &countingSurface{}
	l, input, _ := newTestLoop(t, sim, surface)

	input.Push(core.KeyDown(core.KeyLeft), core.KeyUp(core.KeyLeft))
	if !l.Step() {
		t.Fatal("Step() = false, want true")
	}

	want := []string{"event", "event", "update", "draw"}
	if len(sim.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", sim.calls, want)
	}
	for i := range want {
		if sim.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, sim.calls[i], want[i])
		}
	}
	if surface.clears != 1 || surface.presents != 1 || surface.fills != 1 {
		t.Errorf("surface clears=%d fills=%d presents=%d, want 1 each",
			surface.clears, surface.fills, surface.presents)
	}
	if input.Len() != 0 {
		t.Errorf("input not drained, %d events left", input.Len())
	}
}

func TestDeltaTime(t *testing.T) {
	sim := &fakeSim{}
	l, _, clock := newTestLoop(t, sim, NullSurface{})

	// First delta is measured from construction.
	clock.Advance(100 * time.Millisecond)
	l.Step()
	clock.Advance(16*time.Millisecond + 900*time.Microsecond)
	l.Step()
	l.Step()

	want := []float64{0.1, 0.016, 0}
	for i, dt := range sim.dts {
		if dt != want[i] {
			t.Errorf("tick %d dt = %v, want %v", i, dt, want[i])
		}
	}
}

func TestDeltaTimeNeverNegative(t *testing.T) {
	sim := &fakeSim{}
	l, _, clock := newTestLoop(t, sim, NullSurface{})

	clock.Set(epoch.Add(-time.Second))
	l.Step()
	if sim.dts[0] != 0 {
		t.Errorf("dt after clock moved backwards = %v, want 0", sim.dts[0])
	}
}

func TestQuitFinishesTick(t *testing.T) {
	sim := &fakeSim{}
	surface := &countingSurface{}
	l, input, _ := newTestLoop(t, sim, surface)

	input.Push(core.Quit(), core.KeyDown(core.KeyRight))
	if l.Step() {
		t.Fatal("Step() = true after quit, want false")
	}
	if len(sim.events) != 1 || sim.events[0] != core.KeyDown(core.KeyRight) {
		t.Errorf("events handled = %v, want only the key-down", sim.events)
	}
	if len(sim.dts) != 1 || surface.presents != 1 {
		t.Error("quit tick should still update and render")
	}

	input.Push(core.KeyDown(core.KeyLeft))
	if l.Step() {
		t.Error("Step() after quit should be a no-op")
	}
	if len(sim.dts) != 1 || input.Len() != 1 {
		t.Error("stopped loop should not poll or update")
	}
	if l.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", l.Ticks())
	}
}

func TestRunStopsOnQuitAndCloses(t *testing.T) {
	sim := &fakeSim{}
	surface := &countingSurface{}
	input := NewQueueSource()
	ticks := 0
	l, err := NewLoop(sim, Options{
		Input:   input,
		Surface: surface,
		Clock:   NewManualClock(epoch),
		Observer: ObserverFunc(func(tk Tick) {
			ticks++
			if tk.Index == 4 {
				input.Push(core.Quit())
			}
		}),
	})
	if err != nil {
		t.Fatalf("NewLoop() error: %v", err)
	}

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if ticks != 6 {
		t.Errorf("ran %d ticks, want 6", ticks)
	}
	if surface.closes != 1 {
		t.Errorf("surface closed %d times, want 1", surface.closes)
	}
	if err := l.Close(); err != nil || surface.closes != 1 {
		t.Error("second Close should be a no-op")
	}
}

func TestRunCancelled(t *testing.T) {
	sim := &fakeSim{}
	surface := &countingSurface{closeErr: errors.New("boom")}
	l, _, _ := newTestLoop(t, sim, surface)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Run(ctx)
	if err == nil || err.Error() != "boom" {
		t.Errorf("Run() error = %v, want close error", err)
	}
	if len(sim.dts) != 0 {
		t.Errorf("cancelled loop ran %d ticks, want 0", len(sim.dts))
	}
	if l.Running() {
		t.Error("Running() = true after cancel")
	}
}

func TestStopSkipsFurtherTicks(t *testing.T) {
	sim := &fakeSim{}
	surface := &countingSurface{}
	l, input, _ := newTestLoop(t, sim, surface)

	if !l.Step() {
		t.Fatal("first Step() = false, want true")
	}
	l.Stop()
	input.Push(core.KeyDown(core.KeyLeft))

	if l.Step() {
		t.Error("Step() after Stop = true, want false")
	}
	if l.Running() {
		t.Error("Running() = true after Stop")
	}
	if got := l.Ticks(); got != 1 {
		t.Errorf("Ticks() = %d, want 1", got)
	}
	if len(sim.events) != 0 {
		t.Errorf("stopped loop handled %d events, want 0", len(sim.events))
	}
	if surface.presents != 1 {
		t.Errorf("presents = %d, want 1", surface.presents)
	}
	if surface.closes != 0 {
		t.Error("Stop must leave closing to Close")
	}
}

func TestObserverSeesTicks(t *testing.T) {
	sim := &fakeSim{}
	var seen []Tick
	input := NewQueueSource()
	clock := NewManualClock(epoch)
	l, err := NewLoop(sim, Options{
		Input:    input,
		Surface:  NullSurface{},
		Clock:    clock,
		Observer: ObserverFunc(func(tk Tick) { seen = append(seen, tk) }),
	})
	if err != nil {
		t.Fatalf("NewLoop() error: %v", err)
	}

	input.Push(core.KeyDown(core.KeySpace))
	clock.Advance(20 * time.Millisecond)
	l.Step()
	clock.Advance(15 * time.Millisecond)
	l.Step()

	if len(seen) != 2 {
		t.Fatalf("observer saw %d ticks, want 2", len(seen))
	}
	if seen[0].Index != 0 || seen[1].Index != 1 {
		t.Errorf("indexes = %d,%d, want 0,1", seen[0].Index, seen[1].Index)
	}
	if len(seen[0].Events) != 1 || len(seen[1].Events) != 0 {
		t.Errorf("events = %v / %v", seen[0].Events, seen[1].Events)
	}
	if seen[0].DeltaMillis != 20 || seen[1].DeltaMillis != 15 {
		t.Errorf("deltas = %d,%d, want 20,15", seen[0].DeltaMillis, seen[1].DeltaMillis)
	}
}

func TestFrameRecorder(t *testing.T) {
	r := NewFrameRecorder()
	r.Clear()
	r.FillRect(core.NewRect(0, 0, 1, 1))
	r.FillRect(core.NewRect(2, 2, 1, 1))

	if len(r.Frame()) != 0 {
		t.Error("frame should stay empty until Present")
	}

	r.Present()
	if len(r.Frame()) != 2 || r.Presents() != 1 {
		t.Errorf("frame has %d rects after %d presents, want 2 after 1", len(r.Frame()), r.Presents())
	}

	r.Clear()
	r.FillRect(core.NewRect(5, 5, 1, 1))
	if len(r.Frame()) != 2 {
		t.Error("building a new frame should not disturb the presented one")
	}
	r.Present()
	if f := r.Frame(); len(f) != 1 || f[0] != core.NewRect(5, 5, 1, 1) {
		t.Errorf("frame = %v, want the single new rect", f)
	}

	if err := r.Close(); err != nil || !r.Closed() {
		t.Error("Close should mark the recorder closed")
	}
}

func TestQueueSourceDrains(t *testing.T) {
	q := NewQueueSource()
	if q.Poll() != nil {
		t.Error("empty queue should poll nil")
	}
	q.Push(core.KeyDown(core.KeyLeft))
	q.Push(core.KeyUp(core.KeyLeft), core.Quit())

	got := q.Poll()
	if len(got) != 3 || got[2].Kind != core.EventQuit {
		t.Errorf("Poll() = %v, want 3 events ending in quit", got)
	}
	if q.Len() != 0 || q.Poll() != nil {
		t.Error("Poll should drain the queue")
	}
}

func TestLoopDrivesBreakout(t *testing.T) {
	g, err := breakout.New(breakout.Options{Seed: 3})
	if err != nil {
		t.Fatalf("breakout.New() error: %v", err)
	}
	frames := NewFrameRecorder()
	l, input, clock := newTestLoop(t, g, frames)

	l.Step()
	if n := len(frames.Frame()); n != 2+breakout.BrickCount {
		t.Fatalf("first frame has %d rects, want %d", n, 2+breakout.BrickCount)
	}

	input.Push(core.KeyDown(core.KeySpace))
	clock.Advance(16 * time.Millisecond)
	l.Step()
	if l.LastResult().State.Docked {
		t.Fatal("ball should be launched")
	}

	input.Push(core.KeyDown(core.KeyRight))
	for range 10 {
		clock.Advance(16 * time.Millisecond)
		l.Step()
	}
	if x := g.Paddle().Position.X; x != 455+10*breakout.PaddleSpeed {
		t.Errorf("paddle x = %d, want %d", x, 455+10*breakout.PaddleSpeed)
	}

	input.Push(core.KeyUp(core.KeySpace))
	clock.Advance(16 * time.Millisecond)
	l.Step()
	if g.Paddle().Velocity.X != 0 {
		t.Error("any key-up should stop the paddle")
	}
	if frames.Presents() != 13 {
		t.Errorf("Presents() = %d, want 13", frames.Presents())
	}
}
