package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appletreecy/job-match-task/internal/config"
	"github.com/appletreecy/job-match-task/internal/database"
	"github.com/appletreecy/job-match-task/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	Long:  `Display row counts, distinct skill tokens and the last recorded import.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := db.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	return output.Output(outputFmt, stats)
}
