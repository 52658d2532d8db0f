package match

// Jobseeker is a candidate with a canonical skill set. Built once at load
// time, never mutated afterwards.
type Jobseeker struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Skills SkillSet `json:"skills"`
}

// Job is an opening with a canonical required-skill set. Same lifecycle as
// Jobseeker.
type Job struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	RequiredSkills SkillSet `json:"required_skills"`
}

// Recommendation is one scored (jobseeker, job) pair. Derived fresh every run
// and consumed by the ranker; never persisted, never mutated after creation.
type Recommendation struct {
	JobseekerID          int     `json:"jobseeker_id"`
	JobseekerName        string  `json:"jobseeker_name"`
	JobID                int     `json:"job_id"`
	JobTitle             string  `json:"job_title"`
	MatchingSkillCount   int     `json:"matching_skill_count"`
	MatchingSkillPercent float64 `json:"matching_skill_percent"`
}

// NewJobseeker builds a Jobseeker from raw CSV fields, normalizing the skill
// string.
func NewJobseeker(id int, name, rawSkills string) Jobseeker {
	return Jobseeker{ID: id, Name: name, Skills: NormalizeSkills(rawSkills)}
}

// NewJob builds a Job from raw CSV fields, normalizing the required-skill
// string.
func NewJob(id int, title, rawSkills string) Job {
	return Job{ID: id, Title: title, RequiredSkills: NormalizeSkills(rawSkills)}
}
