package database

import "time"

// ImportRun records one CSV load into the store: when it ran, what it read,
// and how many rows landed. The computed recommendations themselves are never
// persisted.
type ImportRun struct {
	ID          string    `json:"id"`
	ImportedAt  time.Time `json:"imported_at"`
	SeekerCount int       `json:"seeker_count"`
	JobCount    int       `json:"job_count"`
	SeekersFile string    `json:"seekers_file"`
	JobsFile    string    `json:"jobs_file"`
}

// Stats represents aggregate statistics over the store
type Stats struct {
	Jobseekers     int        `json:"jobseekers"`
	Jobs           int        `json:"jobs"`
	DistinctSkills int        `json:"distinct_skills"`
	LastImport     *ImportRun `json:"last_import,omitempty"`
}
