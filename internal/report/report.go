package report

import (
	"fmt"
	"io"

	"github.com/appletreecy/job-match-task/internal/match"
)

// Header is the fixed first line of the report.
const Header = "jobseeker_id, jobseeker_name, job_id, job_title, matching_skill_count, matching_skill_percent"

// Write renders ranked recommendations as the fixed-column text report: the
// header line, then one comma-space separated row per recommendation with the
// percent to two decimals. Consumers parse these exact bytes, so no alignment,
// padding, or truncation.
func Write(w io.Writer, recs []match.Recommendation) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, rec := range recs {
		_, err := fmt.Fprintf(w, "%d, %s, %d, %s, %d, %.2f\n",
			rec.JobseekerID, rec.JobseekerName, rec.JobID, rec.JobTitle,
			rec.MatchingSkillCount, rec.MatchingSkillPercent)
		if err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	return nil
}
