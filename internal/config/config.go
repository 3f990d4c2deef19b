// Package config provides YAML-based configuration loading for the
// breakout command.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config contains all runtime configuration.
// Playfield geometry is fixed in the breakout package and not configurable.
type Config struct {
	Frontend   string             `yaml:"frontend"`
	TickRate   int                `yaml:"tick_rate"`
	Launch     breakout.LaunchSet `yaml:"launch"`
	TUI        TUIConfig          `yaml:"tui"`
	Recordings RecordingsConfig   `yaml:"recordings"`
	Log        LogConfig          `yaml:"log"`
}

// TUIConfig defines terminal frontend parameters.
type TUIConfig struct {
	ReleaseAfterMs int `yaml:"release_after_ms"`
	RepeatDelayMs  int `yaml:"repeat_delay_ms"`
}

// ReleaseAfter returns the key-release window as a duration.
func (c TUIConfig) ReleaseAfter() time.Duration {
	return time.Duration(c.ReleaseAfterMs) * time.Millisecond
}

// RepeatDelay returns the release window for a key that has not
// auto-repeated yet.
func (c TUIConfig) RepeatDelay() time.Duration {
	return time.Duration(c.RepeatDelayMs) * time.Millisecond
}

// RecordingsConfig defines where session recordings are stored.
type RecordingsConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ParsedLevel returns the configured level, or info if it does not parse.
func (c LogConfig) ParsedLevel() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Frontend == "" {
		return fmt.Errorf("%w: frontend must be set", ErrInvalid)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if err := c.Launch.Validate(); err != nil {
		return fmt.Errorf("%w: launch: %w", ErrInvalid, err)
	}
	if c.TUI.ReleaseAfterMs < 0 {
		return fmt.Errorf("%w: tui.release_after_ms must not be negative, got %d", ErrInvalid, c.TUI.ReleaseAfterMs)
	}
	if c.TUI.RepeatDelayMs < 0 {
		return fmt.Errorf("%w: tui.repeat_delay_ms must not be negative, got %d", ErrInvalid, c.TUI.RepeatDelayMs)
	}
	if c.Recordings.DBPath == "" {
		return fmt.Errorf("%w: recordings.db_path must be set", ErrInvalid)
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}
