package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecommendations_OneRecordPerJob(t *testing.T) {
	seeker := NewJobseeker(1, "Alice", "ruby, sql")
	jobs := []Job{
		NewJob(1, "Ruby Developer", "ruby, sql"),
		NewJob(2, "Go Developer", "go"),
		NewJob(3, "DBA", "sql, postgres"),
	}

	recs, err := BuildRecommendations(seeker, jobs)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Zero-match jobs are kept; ranking decides later.
	assert.Equal(t, 0, recs[1].MatchingSkillCount)

	// Input order preserved at this stage.
	assert.Equal(t, 1, recs[0].JobID)
	assert.Equal(t, 2, recs[1].JobID)
	assert.Equal(t, 3, recs[2].JobID)
}

func TestBuildRecommendations_FieldsPopulated(t *testing.T) {
	seeker := NewJobseeker(1, "Alice", "Ruby, SQL, Problem Solving")
	jobs := []Job{NewJob(1, "Ruby Developer", "Ruby, SQL, Problem Solving")}

	recs, err := BuildRecommendations(seeker, jobs)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, 1, rec.JobseekerID)
	assert.Equal(t, "Alice", rec.JobseekerName)
	assert.Equal(t, 1, rec.JobID)
	assert.Equal(t, "Ruby Developer", rec.JobTitle)
	assert.Equal(t, 3, rec.MatchingSkillCount)
	assert.Equal(t, 100.0, rec.MatchingSkillPercent)
}

func TestBuildRecommendations_NoJobs(t *testing.T) {
	recs, err := BuildRecommendations(NewJobseeker(1, "Alice", "ruby"), nil)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestBuildRecommendations_NilSeekerSkills(t *testing.T) {
	seeker := Jobseeker{ID: 7, Name: "Ghost"}
	jobs := []Job{NewJob(1, "Ruby Developer", "ruby")}

	recs, err := BuildRecommendations(seeker, jobs)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedSkills)
	assert.Contains(t, err.Error(), "jobseeker 7")
	assert.Nil(t, recs)
}

func TestBuildRecommendations_NilJobSkills(t *testing.T) {
	seeker := NewJobseeker(1, "Alice", "ruby")
	jobs := []Job{
		NewJob(1, "Ruby Developer", "ruby"),
		{ID: 2, Title: "Broken"},
	}

	recs, err := BuildRecommendations(seeker, jobs)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedSkills)
	assert.Contains(t, err.Error(), "job 2")
	assert.Nil(t, recs)
}
