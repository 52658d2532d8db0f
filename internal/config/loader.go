package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. A missing file is not an
// error; the defaults apply so the tool works without a config. The
// JOBMATCH_DB environment variable overrides the database path either way.
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		// Parse TOML over the defaults
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if db := os.Getenv("JOBMATCH_DB"); db != "" {
		cfg.Database.Path = db
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	if c.Database.Path != ":memory:" {
		c.Database.Path, err = expandPath(c.Database.Path)
		if err != nil {
			return err
		}
	}

	c.Ingest.SeekersCSV, err = expandPath(c.Ingest.SeekersCSV)
	if err != nil {
		return err
	}

	c.Ingest.JobsCSV, err = expandPath(c.Ingest.JobsCSV)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Ingest validation
	if c.Ingest.SeekersCSV == "" {
		errs = append(errs, errors.New("ingest.seekers_csv is required"))
	}
	if c.Ingest.JobsCSV == "" {
		errs = append(errs, errors.New("ingest.jobs_csv is required"))
	}

	// Match validation
	if c.Match.Workers < 0 {
		errs = append(errs, errors.New("match.workers must be zero or positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
