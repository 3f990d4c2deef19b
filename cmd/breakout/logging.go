package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// newLogger builds the command logger. With quiet set and no log file the
// output is discarded, which keeps a full-screen terminal UI intact.
// The returned func closes the log file, if any.
func newLogger(cfg config.LogConfig, quiet bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		cleanup = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           cfg.ParsedLevel(),
	})
	return logger, cleanup, nil
}
