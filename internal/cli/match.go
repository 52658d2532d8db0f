package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appletreecy/job-match-task/internal/config"
	"github.com/appletreecy/job-match-task/internal/database"
	"github.com/appletreecy/job-match-task/internal/match"
	"github.com/appletreecy/job-match-task/internal/output"
	"github.com/appletreecy/job-match-task/internal/report"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compute and print ranked job recommendations",
	Long: `Score every jobseeker against every job and print the ranked report.

Rows are ordered by jobseeker id, then by matching skill percent from
highest to lowest, then by job id.

Examples:
  jobmatch match                     # parallel, one worker per CPU
  jobmatch match --workers=4         # cap the worker pool
  jobmatch match --sequential        # single-threaded fallback
  jobmatch match -o json             # machine-readable output`,
	RunE: runMatch,
}

var (
	matchWorkers    int
	matchSequential bool
)

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 0, "worker goroutines (0 = one per CPU)")
	matchCmd.Flags().BoolVar(&matchSequential, "sequential", false, "disable parallel scoring")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	workers := cfg.Match.Workers
	if cmd.Flags().Changed("workers") {
		workers = matchWorkers
	}
	sequential := cfg.Match.Sequential || matchSequential

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
	jobs, err := db.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	var recs []match.Recommendation
	if sequential {
		recs, err = match.DispatchSequential(seekers, jobs)
	} else {
		recs, err = match.Dispatch(ctx, seekers, jobs, workers)
	}
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	ranked := match.Rank(recs)

	switch outputFmt {
	case "text", "":
		return report.Write(os.Stdout, ranked)
	default:
		return output.Output(outputFmt, ranked)
	}
}
