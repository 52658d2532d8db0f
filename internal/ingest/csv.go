package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/appletreecy/job-match-task/internal/match"
)

var (
	seekerColumns = []string{"id", "name", "skills"}
	jobColumns    = []string{"id", "title", "required_skills"}
)

// ReadJobseekers parses a jobseeker CSV (columns id, name, skills) into
// normalized entities. Malformed rows fail the whole read; the matching core
// never sees them.
func ReadJobseekers(path string) ([]match.Jobseeker, error) {
	records, err := readRecords(path, seekerColumns)
	if err != nil {
		return nil, err
	}

	seekers := make([]match.Jobseeker, 0, len(records))
	for _, rec := range records {
		id, err := parseID(path, rec, "id")
		if err != nil {
			return nil, err
		}
		seekers = append(seekers, match.NewJobseeker(id, rec.fields["name"], rec.fields["skills"]))
	}
	return seekers, nil
}

// ReadJobs parses a job CSV (columns id, title, required_skills).
func ReadJobs(path string) ([]match.Job, error) {
	records, err := readRecords(path, jobColumns)
	if err != nil {
		return nil, err
	}

	jobs := make([]match.Job, 0, len(records))
	for _, rec := range records {
		id, err := parseID(path, rec, "id")
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, match.NewJob(id, rec.fields["title"], rec.fields["required_skills"]))
	}
	return jobs, nil
}

// record is one data row mapped by header name.
type record struct {
	row    int
	fields map[string]string
}

func parseID(path string, rec record, column string) (int, error) {
	raw := rec.fields[column]
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s row %d: invalid %s %q: %w", path, rec.row, column, raw, err)
	}
	return id, nil
}

// readRecords maps each data row by the header, dict-reader style: column
// order is free, extra columns are ignored, missing required columns fail up
// front.
func readRecords(path string, required []string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file, expected header %s", path, strings.Join(required, ","))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Strip a UTF-8 BOM from the first header cell
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", path, name)
		}
	}

	var records []record
	row := 1
	for {
		raw, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		row++

		fields := make(map[string]string, len(required))
		for _, name := range required {
			i := index[name]
			if i >= len(raw) {
				return nil, fmt.Errorf("%s row %d: missing %q value", path, row, name)
			}
			fields[name] = raw[i]
		}
		records = append(records, record{row: row, fields: fields})
	}

	return records, nil
}
