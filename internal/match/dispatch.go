package match

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Dispatch fans BuildRecommendations out across seekers, one unit of work per
// seeker, each unit scoring against the full job slice. The job slice is
// shared read-only; units write only their own slot of the result table, so
// no locking is needed. workers <= 0 uses the machine's CPU count; the pool
// never exceeds the seeker count.
//
// The call blocks until every unit has joined. If any unit fails, the group
// context is cancelled, remaining units are skipped, and the whole dispatch
// returns the first error with no partial result. The merged slice carries no
// ordering contract between seekers; Rank owns ordering.
func Dispatch(ctx context.Context, seekers []Jobseeker, jobs []Job, workers int) ([]Recommendation, error) {
	if len(seekers) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(seekers) {
		workers = len(seekers)
	}

	perSeeker := make([][]Recommendation, len(seekers))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seeker := range seekers {
		i, seeker := i, seeker
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			recs, err := BuildRecommendations(seeker, jobs)
			if err != nil {
				return err
			}
			perSeeker[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]Recommendation, 0, len(seekers)*len(jobs))
	for _, recs := range perSeeker {
		merged = append(merged, recs...)
	}
	return merged, nil
}

// DispatchSequential is the no-pool fallback for small inputs. After ranking,
// its output is identical to the parallel path.
func DispatchSequential(seekers []Jobseeker, jobs []Job) ([]Recommendation, error) {
	merged := make([]Recommendation, 0, len(seekers)*len(jobs))
	for _, seeker := range seekers {
		recs, err := BuildRecommendations(seeker, jobs)
		if err != nil {
			return nil, err
		}
		merged = append(merged, recs...)
	}
	return merged, nil
}
