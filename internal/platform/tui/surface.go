package tui

import (
	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Playfield aspect in terminal cells. Half-block pixels are roughly square,
// so a 3:2 playfield needs three columns per row.
const colsPerRow = breakout.ScreenWidth * 2 / breakout.ScreenHeight

// cellSurface is a core.Surface that scales the playfield onto a half-block
// screen buffer. Present snapshots the buffer as text for View.
type cellSurface struct {
	screen *core.Screen
	frame  string
}

func newCellSurface(cols, rows int) *cellSurface {
	s := &cellSurface{screen: core.NewScreen(0, 0)}
	s.Fit(cols, rows)
	return s
}

// Fit sizes the buffer to the largest 3:2 area inside cols x rows cells.
func (s *cellSurface) Fit(cols, rows int) {
	rows = max(min(rows, cols/colsPerRow), 1)
	s.screen.Resize(rows*colsPerRow, rows)
	s.frame = s.screen.String()
}

// Size returns the buffer size in cells.
func (s *cellSurface) Size() (cols, rows int) {
	return s.screen.Width(), s.screen.Height()
}

func (s *cellSurface) Clear() {
	s.screen.Clear()
}

func (s *cellSurface) FillRect(r core.Rect) {
	s.screen.FillPixels(scaleRect(r, s.screen.Width(), s.screen.PixelHeight()))
}

func (s *cellSurface) Present() {
	s.frame = s.screen.String()
}

func (s *cellSurface) Close() error {
	return nil
}

// Frame returns the last presented frame.
func (s *cellSurface) Frame() string {
	return s.frame
}

// scaleRect maps a playfield rect onto a pw x ph pixel buffer. Edges are
// rounded so gaps between bricks survive downscaling where they can, and
// anything visible keeps at least one pixel.
func scaleRect(r core.Rect, pw, ph int) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0 := roundDiv(r.X*pw, breakout.ScreenWidth)
	x1 := roundDiv(r.Right()*pw, breakout.ScreenWidth)
	y0 := roundDiv(r.Y*ph, breakout.ScreenHeight)
	y1 := roundDiv(r.Bottom()*ph, breakout.ScreenHeight)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// roundDiv divides n by a positive d, rounding half up, correct for negative n.
func roundDiv(n, d int) int {
	return floorDiv(2*n+d, 2*d)
}

func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
