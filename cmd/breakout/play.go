package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagFrontend string
	flagRecord   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session on the configured frontend.

Controls:
  Left/Right  - Move the paddle
  Space       - Launch the ball
  Q/Esc       - Quit (closing the window also quits)

With --record the session's input and timing are stored in the recordings
database when it ends, for later verification with 'breakout replay'.

Examples:
  breakout play
  breakout play --frontend window
  breakout play --seed 42 --record`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend to use (overrides config)")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session for replay")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	frontendID := cfg.Frontend
	if flagFrontend != "" {
		frontendID = flagFrontend
	}
	frontend, err := registry.Create(frontendID)
	if err != nil {
		return fmt.Errorf("%w (run 'breakout frontends' to see available frontends)", err)
	}

	logger, closeLog, err := newLogger(cfg.Log, frontendID == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := breakout.New(breakout.Options{Seed: seed, Launch: cfg.Launch})
	if err != nil {
		return err
	}

	var recorder *replay.Recorder
	var observer engine.Observer
	if flagRecord {
		recorder = replay.NewRecorder(game)
		observer = recorder
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("session starting", "frontend", frontendID, "seed", seed, "record", flagRecord)
	err = frontend.Run(ctx, registry.RunOptions{
		Simulation:   game,
		Observer:     observer,
		Logger:       logger,
		TickRate:     cfg.TickRate,
		ReleaseAfter: cfg.TUI.ReleaseAfter(),
		RepeatDelay:  cfg.TUI.RepeatDelay(),
	})
	if err != nil {
		return fmt.Errorf("running %s frontend: %w", frontendID, err)
	}

	state := game.State()
	logger.Info("session ended", "ticks", game.Tick(), "bricks_alive", state.BricksAlive, "score", state.Score)

	if recorder == nil {
		return nil
	}
	return saveRecording(cfg.Recordings.DBPath, recorder.Finish(game))
}

func saveRecording(dbPath string, rec replay.Recording) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	//nolint:errcheck // Read-only use after the save
	defer store.Close()

	id, err := store.SaveRecording(rec)
	if err != nil {
		return err
	}
	fmt.Printf("Saved recording %d (%d ticks, seed %d).\n", id, len(rec.Frames), rec.Seed)
	return nil
}
