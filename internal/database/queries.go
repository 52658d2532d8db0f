package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appletreecy/job-match-task/internal/match"
)

// ReplaceJobseekers swaps the jobseekers table contents for the given slice
// in one transaction. Skill sets are stored as their canonical comma-joined
// string.
func (db *DB) ReplaceJobseekers(ctx context.Context, seekers []match.Jobseeker) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM jobseekers`); err != nil {
			return fmt.Errorf("failed to clear jobseekers: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO jobseekers (id, name, skills) VALUES (?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare jobseeker insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range seekers {
			if _, err := stmt.ExecContext(ctx, s.ID, s.Name, s.Skills.Canonical()); err != nil {
				return fmt.Errorf("failed to insert jobseeker %d: %w", s.ID, err)
			}
		}
		return nil
	})
}

// ReplaceJobs swaps the jobs table contents for the given slice in one
// transaction.
func (db *DB) ReplaceJobs(ctx context.Context, jobs []match.Job) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
			return fmt.Errorf("failed to clear jobs: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO jobs (id, title, required_skills) VALUES (?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare job insert: %w", err)
		}
		defer stmt.Close()

		for _, j := range jobs {
			if _, err := stmt.ExecContext(ctx, j.ID, j.Title, j.RequiredSkills.Canonical()); err != nil {
				return fmt.Errorf("failed to insert job %d: %w", j.ID, err)
			}
		}
		return nil
	})
}

// ListJobseekers retrieves all jobseekers ordered by id, skill sets rebuilt
// from their canonical stored form.
func (db *DB) ListJobseekers(ctx context.Context) ([]match.Jobseeker, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, skills FROM jobseekers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seekers []match.Jobseeker
	for rows.Next() {
		var (
			id     int
			name   string
			skills string
		)
		if err := rows.Scan(&id, &name, &skills); err != nil {
			return nil, err
		}
		seekers = append(seekers, match.Jobseeker{ID: id, Name: name, Skills: match.SplitCanonical(skills)})
	}

	return seekers, rows.Err()
}

// ListJobs retrieves all jobs ordered by id.
func (db *DB) ListJobs(ctx context.Context) ([]match.Job, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title, required_skills FROM jobs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []match.Job
	for rows.Next() {
		var (
			id     int
			title  string
			skills string
		)
		if err := rows.Scan(&id, &title, &skills); err != nil {
			return nil, err
		}
		jobs = append(jobs, match.Job{ID: id, Title: title, RequiredSkills: match.SplitCanonical(skills)})
	}

	return jobs, rows.Err()
}

// CountJobseekers returns the number of stored jobseekers.
func (db *DB) CountJobseekers(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobseekers`).Scan(&n)
	return n, err
}

// CountJobs returns the number of stored jobs.
func (db *DB) CountJobs(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n)
	return n, err
}

// RecordImportRun inserts a new import run record
func (db *DB) RecordImportRun(ctx context.Context, run *ImportRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.ImportedAt.IsZero() {
		run.ImportedAt = time.Now()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO import_runs (id, imported_at, seeker_count, job_count, seekers_file, jobs_file)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.ImportedAt, run.SeekerCount, run.JobCount, run.SeekersFile, run.JobsFile)
	return err
}

// LastImportRun retrieves the most recent import run, or nil when nothing has
// been loaded yet.
func (db *DB) LastImportRun(ctx context.Context) (*ImportRun, error) {
	run := &ImportRun{}

	err := db.QueryRowContext(ctx, `
		SELECT id, imported_at, seeker_count, job_count, seekers_file, jobs_file
		FROM import_runs ORDER BY imported_at DESC LIMIT 1
	`).Scan(
		&run.ID, &run.ImportedAt, &run.SeekerCount, &run.JobCount,
		&run.SeekersFile, &run.JobsFile,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return run, nil
}

// GetStats retrieves aggregate statistics
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.Jobseekers, err = db.CountJobseekers(ctx); err != nil {
		return nil, err
	}
	if stats.Jobs, err = db.CountJobs(ctx); err != nil {
		return nil, err
	}
	if stats.DistinctSkills, err = db.countDistinctSkills(ctx); err != nil {
		return nil, err
	}
	if stats.LastImport, err = db.LastImportRun(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// countDistinctSkills unions the skill tokens of both tables.
func (db *DB) countDistinctSkills(ctx context.Context) (int, error) {
	seen := make(match.SkillSet)

	for _, query := range []string{
		`SELECT skills FROM jobseekers`,
		`SELECT required_skills FROM jobs`,
	} {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return 0, err
		}
		for rows.Next() {
			var skills string
			if err := rows.Scan(&skills); err != nil {
				rows.Close()
				return 0, err
			}
			for token := range match.SplitCanonical(skills) {
				seen[token] = struct{}{}
			}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return 0, err
		}
		rows.Close()
	}

	return len(seen), nil
}
