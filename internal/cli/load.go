package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appletreecy/job-match-task/internal/config"
	"github.com/appletreecy/job-match-task/internal/database"
	"github.com/appletreecy/job-match-task/internal/ingest"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load jobseeker and job CSVs into the store",
	Long: `Read both CSV files, replace the store contents and record the import.

Examples:
  jobmatch load                                        # paths from config
  jobmatch load --seekers=people.csv --jobs=roles.csv  # explicit paths`,
	RunE: runLoad,
}

var (
	loadSeekersCSV string
	loadJobsCSV    string
)

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadSeekersCSV, "seekers", "", "jobseeker CSV path (overrides config)")
	loadCmd.Flags().StringVar(&loadJobsCSV, "jobs", "", "job CSV path (overrides config)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	seekersCSV := cfg.Ingest.SeekersCSV
	if loadSeekersCSV != "" {
		seekersCSV = loadSeekersCSV
	}
	jobsCSV := cfg.Ingest.JobsCSV
	if loadJobsCSV != "" {
		jobsCSV = loadJobsCSV
	}

	// Parse both files before touching the store
	seekers, err := ingest.ReadJobseekers(seekersCSV)
	if err != nil {
		return fmt.Errorf("failed to read jobseekers: %w", err)
	}
	jobs, err := ingest.ReadJobs(jobsCSV)
	if err != nil {
		return fmt.Errorf("failed to read jobs: %w", err)
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceJobseekers(ctx, seekers); err != nil {
		return fmt.Errorf("failed to store jobseekers: %w", err)
	}
	if err := db.ReplaceJobs(ctx, jobs); err != nil {
		return fmt.Errorf("failed to store jobs: %w", err)
	}

	run := &database.ImportRun{
		SeekerCount: len(seekers),
		JobCount:    len(jobs),
		SeekersFile: seekersCSV,
		JobsFile:    jobsCSV,
	}
	if err := db.RecordImportRun(ctx, run); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	fmt.Printf("Loaded %d jobseekers and %d jobs (import %s)\n", len(seekers), len(jobs), run.ID)
	return nil
}
