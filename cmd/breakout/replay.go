package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recording and verify its final state",
	Long: `Replays a stored recording headlessly with its recorded seed, input and
frame timing, then compares the final state against the one recorded.
A mismatch is reported as an error.

Examples:
  breakout replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recording id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(cfg.Recordings.DBPath)
	if err != nil {
		return err
	}
	//nolint:errcheck // Read-only use
	defer store.Close()

	rec, err := store.Recording(id)
	if err != nil {
		return err
	}

	logger.Debug("replaying", "id", id, "seed", rec.Seed, "ticks", len(rec.Frames))
	game, err := replay.Play(rec, logger)
	if err != nil {
		return err
	}

	state := game.State()
	fmt.Printf("Recording %d verified: %d ticks, %d bricks alive, hash %016x.\n",
		id, game.Tick(), state.BricksAlive, rec.FinalHash)
	return nil
}
