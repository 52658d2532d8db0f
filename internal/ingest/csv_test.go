package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestReadJobseekers(t *testing.T) {
	path := writeCSV(t, "jobseekers.csv", `id,name,skills
1,Alice,"Ruby, SQL, Problem Solving"
2,Bob,"JavaScript, HTML, CSS"
`)

	seekers, err := ReadJobseekers(path)
	if err != nil {
		t.Fatalf("ReadJobseekers failed: %v", err)
	}
	if len(seekers) != 2 {
		t.Fatalf("expected 2 jobseekers, got %d", len(seekers))
	}

	if seekers[0].ID != 1 || seekers[0].Name != "Alice" {
		t.Errorf("expected (1, Alice), got (%d, %s)", seekers[0].ID, seekers[0].Name)
	}

	// Skills normalized at construction
	if !seekers[0].Skills.Contains("problem solving") {
		t.Errorf("expected normalized skill 'problem solving', got %v", seekers[0].Skills.Sorted())
	}
	if seekers[1].Skills.Canonical() != "css,html,javascript" {
		t.Errorf("expected canonical 'css,html,javascript', got %q", seekers[1].Skills.Canonical())
	}
}

func TestReadJobs(t *testing.T) {
	path := writeCSV(t, "jobs.csv", `id,title,required_skills
1,Ruby Developer,"Ruby, SQL, Problem Solving"
2,Frontend Developer,"JavaScript, HTML"
`)

	jobs, err := ReadJobs(path)
	if err != nil {
		t.Fatalf("ReadJobs failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Title != "Ruby Developer" {
		t.Errorf("expected Title='Ruby Developer', got %s", jobs[0].Title)
	}
	if len(jobs[1].RequiredSkills) != 2 {
		t.Errorf("expected 2 required skills, got %d", len(jobs[1].RequiredSkills))
	}
}

func TestReadJobseekers_ColumnOrderFree(t *testing.T) {
	// Extra columns ignored, order irrelevant
	path := writeCSV(t, "jobseekers.csv", `name,location,skills,id
Alice,Berlin,"ruby, sql",7
`)

	seekers, err := ReadJobseekers(path)
	if err != nil {
		t.Fatalf("ReadJobseekers failed: %v", err)
	}
	if len(seekers) != 1 {
		t.Fatalf("expected 1 jobseeker, got %d", len(seekers))
	}
	if seekers[0].ID != 7 || seekers[0].Name != "Alice" {
		t.Errorf("expected (7, Alice), got (%d, %s)", seekers[0].ID, seekers[0].Name)
	}
}

func TestReadJobseekers_BOMHeader(t *testing.T) {
	path := writeCSV(t, "jobseekers.csv", "\ufeffid,name,skills\n1,Alice,ruby\n")

	seekers, err := ReadJobseekers(path)
	if err != nil {
		t.Fatalf("ReadJobseekers failed: %v", err)
	}
	if len(seekers) != 1 {
		t.Fatalf("expected 1 jobseeker, got %d", len(seekers))
	}
}

func TestReadJobseekers_PaddedID(t *testing.T) {
	path := writeCSV(t, "jobseekers.csv", "id,name,skills\n 3 ,Alice,ruby\n")

	seekers, err := ReadJobseekers(path)
	if err != nil {
		t.Fatalf("ReadJobseekers failed: %v", err)
	}
	if seekers[0].ID != 3 {
		t.Errorf("expected ID=3, got %d", seekers[0].ID)
	}
}

func TestReadJobseekers_InvalidID(t *testing.T) {
	path := writeCSV(t, "jobseekers.csv", "id,name,skills\nabc,Alice,ruby\n")

	_, err := ReadJobseekers(path)
	if err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if !strings.Contains(err.Error(), "invalid id") {
		t.Errorf("expected invalid id error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("expected row number in error, got: %v", err)
	}
}

func TestReadJobseekers_MissingColumn(t *testing.T) {
	path := writeCSV(t, "jobseekers.csv", "id,name\n1,Alice\n")

	_, err := ReadJobseekers(path)
	if err == nil {
		t.Fatal("expected error for missing skills column")
	}
	if !strings.Contains(err.Error(), `"skills"`) {
		t.Errorf("expected missing column error, got: %v", err)
	}
}

func TestReadJobseekers_BlankSkills(t *testing.T) {
	path := writeCSV(t, "jobseekers.csv", "id,name,skills\n1,Alice,\n")

	seekers, err := ReadJobseekers(path)
	if err != nil {
		t.Fatalf("ReadJobseekers failed: %v", err)
	}

	// Blank field normalizes to the one-empty-token set
	if len(seekers[0].Skills) != 1 || !seekers[0].Skills.Contains("") {
		t.Errorf("expected blank skills to normalize to {\"\"}, got %v", seekers[0].Skills.Sorted())
	}
}

func TestReadJobseekers_MissingFile(t *testing.T) {
	_, err := ReadJobseekers(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadJobs_EmptyFile(t *testing.T) {
	path := writeCSV(t, "jobs.csv", "")

	_, err := ReadJobs(path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}
