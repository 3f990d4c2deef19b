package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestScaleRect(t *testing.T) {
	tests := []struct {
		name   string
		r      core.Rect
		pw, ph int
		want   core.Rect
	}{
		{"first brick", core.NewRect(2, 2, 55, 15), 300, 200, core.NewRect(1, 1, 17, 4)},
		{"full field", core.NewRect(0, 0, 960, 640), 300, 200, core.NewRect(0, 0, 300, 200)},
		{"identity", core.NewRect(455, 620, 50, 10), 960, 640, core.NewRect(455, 620, 50, 10)},
		{"keeps one pixel", core.NewRect(0, 0, 10, 10), 3, 2, core.NewRect(0, 0, 1, 1)},
		{"empty", core.Rect{}, 300, 200, core.Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleRect(tt.r, tt.pw, tt.ph); got != tt.want {
				t.Errorf("scaleRect(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		n, d, want int
	}{
		{0, 10, 0},
		{4, 10, 0},
		{5, 10, 1},
		{15, 10, 2},
		{-4, 10, 0},
		{-5, 10, 0},
		{-6, 10, -1},
	}

	for _, tt := range tests {
		if got := roundDiv(tt.n, tt.d); got != tt.want {
			t.Errorf("roundDiv(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestCellSurfaceFit(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantW      int
		wantH      int
	}{
		{"height bound", 78, 20, 60, 20},
		{"width bound", 30, 20, 30, 10},
		{"tiny", 0, 0, 3, 1},
		{"negative", -5, -5, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newCellSurface(tt.cols, tt.rows)
			w, h := s.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCellSurfacePresent(t *testing.T) {
	s := newCellSurface(30, 10)

	s.Clear()
	s.FillRect(core.NewRect(0, 0, 960, 640))
	if strings.Contains(s.Frame(), "█") {
		t.Fatal("Frame() changed before Present")
	}

	s.Present()
	lines := strings.Split(s.Frame(), "\n")
	if len(lines) != 10 {
		t.Fatalf("frame has %d lines, want 10", len(lines))
	}
	if lines[0] != strings.Repeat("█", 30) {
		t.Errorf("line 0 = %q, want full row", lines[0])
	}

	s.Clear()
	s.Present()
	if strings.Contains(s.Frame(), "█") {
		t.Error("cleared frame should be blank")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
