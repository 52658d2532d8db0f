package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appletreecy/job-match-task/internal/config"
	"github.com/appletreecy/job-match-task/internal/database"
	"github.com/appletreecy/job-match-task/internal/output"
)

var seekersCmd = &cobra.Command{
	Use:   "seekers",
	Short: "List stored jobseekers",
	RunE:  runSeekers,
}

func init() {
	rootCmd.AddCommand(seekersCmd)
}

func runSeekers(cmd *cobra.Command, args []string) error {
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

	seekers, err := db.ListJobseekers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobseekers: %w", err)
	}

	return output.Output(outputFmt, seekers)
}
