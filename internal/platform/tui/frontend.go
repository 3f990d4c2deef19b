package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Fallback terminal size when stdout is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func init() {
	registry.Register("tui", func() registry.Frontend { return &Frontend{} })
}

// Frontend runs sessions in the terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return "tui" }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Terminal" }

// Run implements registry.Frontend. Cancelling ctx ends the session
// without an error.
func (f *Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	w, h := fallbackWidth, fallbackHeight
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}

	m, err := NewModel(opts, w, h)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	return errors.Join(err, m.Loop().Close())
}
