package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appletreecy/job-match-task/internal/config"
	"github.com/appletreecy/job-match-task/internal/database"
	"github.com/appletreecy/job-match-task/internal/output"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List stored jobs",
	RunE:  runJobs,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
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

	jobs, err := db.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	return output.Output(outputFmt, jobs)
}
