// Package window hosts a breakout session in a native window with Ebitengine.
package window

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

const windowTitle = "Breakout"

func init() {
	registry.Register("window", func() registry.Frontend { return &Frontend{} })
}

// Frontend runs sessions in a desktop window paced by vsync.
type Frontend struct{}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return "window" }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Desktop window" }

// Run implements registry.Frontend. It blocks until the window is closed,
// Escape is pressed or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	frames := engine.NewFrameRecorder()
	input := &windowInput{}

	loop, err := engine.NewLoop(opts.Simulation, engine.Options{
		Input:    input,
		Surface:  frames,
		Observer: opts.Observer,
		Logger:   opts.Logger,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(breakout.ScreenWidth, breakout.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err = ebiten.RunGame(&game{
		ctx:    ctx,
		loop:   loop,
		input:  input,
		frames: frames,
	})
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return errors.Join(err, loop.Close())
}

// game implements ebiten.Game. Every Update runs one loop step; Draw
// paints the frame that step presented.
type game struct {
	ctx      context.Context
	loop     *engine.Loop
	input    *windowInput
	frames   *engine.FrameRecorder
	pressed  []ebiten.Key
	released []ebiten.Key
}

func (g *game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	if g.ctx.Err() != nil {
		g.loop.Stop()
		return ebiten.Termination
	}

	g.input.set(translate(g.pressed, g.released, ebiten.IsWindowBeingClosed()))
	if !g.loop.Step() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, r := range g.frames.Frame() {
		fillRect(screen, r)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return breakout.ScreenWidth, breakout.ScreenHeight
}

func fillRect(dst *ebiten.Image, r core.Rect) {
	vector.DrawFilledRect(dst,
		float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		color.White, false)
}
