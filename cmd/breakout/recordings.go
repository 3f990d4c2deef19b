package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLimit  int
	flagDelete int64
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "List stored session recordings",
	Long: `Display the most recent recordings, newest first, or delete one.

Examples:
  breakout recordings
  breakout recordings --limit 50
  breakout recordings --delete 3`,
	Args: cobra.NoArgs,
	RunE: runRecordings,
}

func init() {
	recordingsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of recordings to list")
	recordingsCmd.Flags().Int64Var(&flagDelete, "delete", 0, "Delete the recording with this ID")
}

func runRecordings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Recordings.DBPath)
	if err != nil {
		return err
	}
	//nolint:errcheck // Read-only use
	defer store.Close()

	if flagDelete != 0 {
		if err := store.DeleteRecording(flagDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted recording %d.\n", flagDelete)
		return nil
	}

	infos, err := store.ListRecordings(flagLimit)
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Run 'breakout play --record' to record a session.")
		return nil
	}

	fmt.Printf("  %-5s  %-20s  %-7s  %-6s  %-16s  %s\n", "ID", "Seed", "Ticks", "Bricks", "Hash", "Date")
	fmt.Printf("  %-5s  %-20s  %-7s  %-6s  %-16s  %s\n", "--", "----", "-----", "------", "----", "----")
	for _, info := range infos {
		fmt.Printf("  %-5d  %-20d  %-7d  %-6d  %016x  %s\n",
			info.ID, info.Seed, info.Ticks, info.BricksAlive, info.FinalHash,
			info.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
