package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/appletreecy/job-match-task/internal/database"
	"github.com/appletreecy/job-match-task/internal/match"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []match.Jobseeker:
		return jobseekersTable(w, v)
	case []match.Job:
		return jobsTable(w, v)
	case []match.Recommendation:
		return recommendationsTable(w, v)
	case *database.Stats:
		return statsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func jobseekersTable(w io.Writer, seekers []match.Jobseeker) error {
	if len(seekers) == 0 {
		fmt.Fprintln(w, "No jobseekers found.")
		return nil
	}

	t := tablewriter.NewTable(w)
	t.Header([]string{"ID", "NAME", "SKILLS"})

	for _, s := range seekers {
		row := []string{
			fmt.Sprintf("%d", s.ID),
			s.Name,
			truncate(strings.Join(s.Skills.Sorted(), ", "), 60),
		}
		if err := t.Append(row); err != nil {
			return err
		}
	}

	return t.Render()
}

func jobsTable(w io.Writer, jobs []match.Job) error {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found.")
		return nil
	}

	t := tablewriter.NewTable(w)
	t.Header([]string{"ID", "TITLE", "REQUIRED SKILLS"})

	for _, j := range jobs {
		row := []string{
			fmt.Sprintf("%d", j.ID),
			j.Title,
			truncate(strings.Join(j.RequiredSkills.Sorted(), ", "), 60),
		}
		if err := t.Append(row); err != nil {
			return err
		}
	}

	return t.Render()
}

func recommendationsTable(w io.Writer, recs []match.Recommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}

	t := tablewriter.NewTable(w)
	t.Header([]string{"SEEKER ID", "SEEKER", "JOB ID", "JOB", "MATCHES", "PERCENT"})

	for _, r := range recs {
		row := []string{
			fmt.Sprintf("%d", r.JobseekerID),
			r.JobseekerName,
			fmt.Sprintf("%d", r.JobID),
			r.JobTitle,
			fmt.Sprintf("%d", r.MatchingSkillCount),
			fmt.Sprintf("%.2f", r.MatchingSkillPercent),
		}
		if err := t.Append(row); err != nil {
			return err
		}
	}

	return t.Render()
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "Store Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Jobseekers:       %d\n", s.Jobseekers)
	fmt.Fprintf(w, "Jobs:             %d\n", s.Jobs)
	fmt.Fprintf(w, "Distinct skills:  %d\n", s.DistinctSkills)

	if s.LastImport != nil {
		fmt.Fprintf(w, "Last import:      %s (%d seekers, %d jobs)\n",
			s.LastImport.ImportedAt.Format("Jan 02, 2006 15:04"),
			s.LastImport.SeekerCount, s.LastImport.JobCount)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
