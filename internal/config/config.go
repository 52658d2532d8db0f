package config

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Ingest   IngestConfig   `toml:"ingest"`
	Match    MatchConfig    `toml:"match"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	// Path is the sqlite file location; ":memory:" opens a throwaway store.
	Path string `toml:"path"`
}

// IngestConfig contains the default CSV source locations
type IngestConfig struct {
	SeekersCSV string `toml:"seekers_csv"`
	JobsCSV    string `toml:"jobs_csv"`
}

// MatchConfig contains matching engine settings
type MatchConfig struct {
	// Workers bounds the dispatch pool; 0 means one worker per CPU.
	Workers int `toml:"workers"`
	// Sequential disables the pool entirely. Output is identical either way.
	Sequential bool `toml:"sequential"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/jobmatch/jobmatch.db",
		},
		Ingest: IngestConfig{
			SeekersCSV: "jobseekers.csv",
			JobsCSV:    "jobs.csv",
		},
		Match: MatchConfig{
			Workers:    0,
			Sequential: false,
		},
	}
}
