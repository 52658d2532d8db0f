package match

// Score computes the overlap between a seeker's skills and a job's required
// skills. count is the intersection size; percent is the share of required
// skills matched. An empty required set scores (0, 0) rather than dividing by
// zero. Pure and deterministic.
func Score(seekerSkills, requiredSkills SkillSet) (count int, percent float64) {
	if len(requiredSkills) == 0 {
		return 0, 0
	}

	// Iterate the smaller set, probe the larger.
	small, large := seekerSkills, requiredSkills
	if len(large) < len(small) {
		small, large = large, small
	}
	for token := range small {
		if _, ok := large[token]; ok {
			count++
		}
	}

	return count, 100 * float64(count) / float64(len(requiredSkills))
}
