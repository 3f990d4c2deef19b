// Package engine runs a simulation one tick at a time: drain input, measure
// delta time, update, render. Frontends either call Run or drive Step from
// their own callbacks.
package engine

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Simulation is the game driven by the loop.
type Simulation interface {
	HandleEvent(e core.Event)
	Update(dt float64) core.StepResult
	Draw(s core.Surface)
}

// Tick describes one completed loop iteration.
type Tick struct {
	Index       uint64       // Zero-based tick number
	Events      []core.Event // Events drained this tick, quit included
	DeltaMillis int64        // Elapsed clock time fed to Update
	Result      core.StepResult
}

// Observer is notified after every tick. Recorders hook in here.
type Observer interface {
	ObserveTick(t Tick)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(t Tick)

// ObserveTick calls f(t).
func (f ObserverFunc) ObserveTick(t Tick) {
	f(t)
}

// Options holds the loop's collaborators.
type Options struct {
	Input    InputSource  // Required
	Surface  core.Surface // Required
	Clock    Clock        // Defaults to SystemClock
	Observer Observer     // Optional
	Logger   *log.Logger  // Defaults to a discarding logger
}

// Errors returned by NewLoop.
var (
	ErrNoSimulation = errors.New("engine: simulation is required")
	ErrNoInput      = errors.New("engine: input source is required")
	ErrNoSurface    = errors.New("engine: surface is required")
)

// Loop owns the per-session timing state and the running flag.
// It is single-threaded: Step, Run and Close must be called from one goroutine.
type Loop struct {
	sim      Simulation
	input    InputSource
	surface  core.Surface
	clock    Clock
	observer Observer
	logger   *log.Logger

	lastFrame  time.Time
	running    bool
	closed     bool
	ticks      uint64
	lastResult core.StepResult
}

// NewLoop creates a loop for sim. The clock is read once here so the first
// tick's delta covers the time since construction.
func NewLoop(sim Simulation, opts Options) (*Loop, error) {
	if sim == nil {
		return nil, ErrNoSimulation
	}
	if opts.Input == nil {
		return nil, ErrNoInput
	}
	if opts.Surface == nil {
		return nil, ErrNoSurface
	}

	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &Loop{
		sim:      sim,
		input:    opts.Input,
		surface:  opts.Surface,
		clock:    clock,
		observer: opts.Observer,
		logger:   logger,
		running:  true,
	}
	l.lastFrame = l.clock.Now()
	l.lastResult.State.Docked = true
	return l, nil
}

// Step runs one tick: drain input, update with the elapsed time, render,
// notify the observer. A quit event stops the loop after the current tick
// completes. Returns false once the loop has stopped.
func (l *Loop) Step() bool {
	if !l.running {
		return false
	}

	events := l.input.Poll()
	for _, e := range events {
		if e.Kind == core.EventQuit {
			l.logger.Info("quit requested", "tick", l.ticks)
			l.running = false
			continue
		}
		l.sim.HandleEvent(e)
	}

	now := l.clock.Now()
	elapsed := max(now.Sub(l.lastFrame).Milliseconds(), 0)
	l.lastFrame = now

	result := l.sim.Update(float64(elapsed) / 1000)

	l.surface.Clear()
	l.sim.Draw(l.surface)
	l.surface.Present()

	l.logTransitions(result)

	if l.observer != nil {
		l.observer.ObserveTick(Tick{
			Index:       l.ticks,
			Events:      events,
			DeltaMillis: elapsed,
			Result:      result,
		})
	}

	l.ticks++
	l.lastResult = result
	return l.running
}

func (l *Loop) logTransitions(result core.StepResult) {
	prev := l.lastResult.State
	if prev.Docked && !result.State.Docked {
		l.logger.Debug("ball launched", "tick", l.ticks)
	}
	if result.Respawned {
		l.logger.Info("ball lost, respawning", "tick", l.ticks, "lives", result.State.Lives)
	}
	if result.BricksDestroyed > 0 {
		l.logger.Debug("bricks destroyed",
			"tick", l.ticks,
			"count", result.BricksDestroyed,
			"alive", result.State.BricksAlive,
		)
		if result.State.BricksAlive == 0 {
			l.logger.Info("all bricks cleared", "tick", l.ticks)
		}
	}
}

// Run steps the loop until a quit event arrives or ctx is cancelled, then
// closes the surface. Cancellation is checked between ticks only.
func (l *Loop) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := l.Close(); err == nil {
			err = cerr
		}
	}()

	l.logger.Debug("loop started")
	for l.running {
		if ctx.Err() != nil {
			l.logger.Info("loop cancelled", "tick", l.ticks)
			l.Stop()
			break
		}
		l.Step()
	}
	l.logger.Info("loop stopped", "ticks", l.ticks)
	return nil
}

// Stop makes the next Step a no-op without running another tick.
// Frontends use it when their context is cancelled.
func (l *Loop) Stop() {
	l.running = false
}

// Close stops the loop and releases the surface. Safe to call twice.
func (l *Loop) Close() error {
	l.running = false
	if l.closed {
		return nil
	}
	l.closed = true
	return l.surface.Close()
}

// Running reports whether the loop will accept another Step.
func (l *Loop) Running() bool {
	return l.running
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// LastResult returns the result of the most recent tick.
func (l *Loop) LastResult() core.StepResult {
	return l.lastResult
}
