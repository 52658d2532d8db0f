package match

import "sort"

// Rank returns a sorted copy of recs ordered by jobseeker id ascending, then
// matching percent descending, then job id ascending. Job ids are unique, so
// the key fully discriminates and the output is identical across runs no
// matter how dispatch interleaved the work. The input slice is left untouched.
func Rank(recs []Recommendation) []Recommendation {
	ranked := make([]Recommendation, len(recs))
	copy(ranked, recs)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.JobseekerID != b.JobseekerID {
			return a.JobseekerID < b.JobseekerID
		}
		if a.MatchingSkillPercent != b.MatchingSkillPercent {
			return a.MatchingSkillPercent > b.MatchingSkillPercent
		}
		return a.JobID < b.JobID
	})
	return ranked
}
