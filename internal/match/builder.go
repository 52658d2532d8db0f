package match

import (
	"errors"
	"fmt"
)

// ErrMalformedSkills reports an entity whose skill set was never normalized
// (nil instead of a constructed set).
var ErrMalformedSkills = errors.New("malformed skill data")

// BuildRecommendations scores one seeker against every job and emits exactly
// one Recommendation per job, in input order. Zero-match jobs are kept; the
// ranker decides what surfaces first. A nil skill set on either side fails the
// whole build.
func BuildRecommendations(seeker Jobseeker, jobs []Job) ([]Recommendation, error) {
	if seeker.Skills == nil {
		return nil, fmt.Errorf("jobseeker %d %q: %w", seeker.ID, seeker.Name, ErrMalformedSkills)
	}

	recs := make([]Recommendation, 0, len(jobs))
	for _, job := range jobs {
		if job.RequiredSkills == nil {
			return nil, fmt.Errorf("job %d %q: %w", job.ID, job.Title, ErrMalformedSkills)
		}
		count, percent := Score(seeker.Skills, job.RequiredSkills)
		recs = append(recs, Recommendation{
			JobseekerID:          seeker.ID,
			JobseekerName:        seeker.Name,
			JobID:                job.ID,
			JobTitle:             job.Title,
			MatchingSkillCount:   count,
			MatchingSkillPercent: percent,
		})
	}
	return recs, nil
}
