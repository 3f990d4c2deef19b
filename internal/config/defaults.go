package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, identical to the embedded
// defaults/breakout.yaml.
func Default() Config {
	return Config{
		Frontend: "tui",
		TickRate: breakout.TargetFPS,
		Launch:   breakout.DefaultLaunchSet(),
		TUI: TUIConfig{
			ReleaseAfterMs: 180,
			RepeatDelayMs:  600,
		},
		Recordings: RecordingsConfig{
			DBPath: "~/.breakout/recordings.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
