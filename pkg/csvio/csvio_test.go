package csvio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

func memStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", path, err)
		}
	}
	return NewStore(fs)
}

func TestLoadReviewers_FirstColumnRaw(t *testing.T) {
	store := memStore(t, map[string]string{
		"reviewers.csv": "101,Dr. Adams\n102,Dr. Brown\nnot-an-id,notes\n103\n",
	})

	values, err := store.LoadReviewers(context.Background(), "reviewers.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 4 {
		t.Fatalf("expected 4 raw values, got %d", len(values))
	}
	// Raw values pass through untouched; normalization is the engine's job.
	if values[2] != "not-an-id" {
		t.Errorf("expected raw value preserved, got %v", values[2])
	}
}

func TestLoadReviewers_MissingFile(t *testing.T) {
	store := memStore(t, nil)
	if _, err := store.LoadReviewers(context.Background(), "absent.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadApplications_PreservesOrder(t *testing.T) {
	store := memStore(t, map[string]string{
		"apps.csv": "Application ID,Reviewer 1,Notes\nAPP-3,101,late\nAPP-1,,\nAPP-2,102,\n",
	})

	table, err := store.LoadApplications(context.Background(), "apps.csv", "Application ID")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	wantIDs := []string{"APP-3", "APP-1", "APP-2"}
	for i, want := range wantIDs {
		if table.Rows[i].ID != want {
			t.Errorf("row %d: expected id %s, got %s", i, want, table.Rows[i].ID)
		}
	}
	if table.Rows[0].Record["Reviewer 1"] != "101" {
		t.Errorf("expected Reviewer 1 value 101, got %q", table.Rows[0].Record["Reviewer 1"])
	}
	if table.Columns[0] != "Application ID" || len(table.Columns) != 3 {
		t.Errorf("unexpected columns: %v", table.Columns)
	}
}

func TestLoadApplications_RaggedRows(t *testing.T) {
	store := memStore(t, map[string]string{
		"apps.csv": "Application ID,Reviewer 1\nAPP-1\n",
	})

	table, err := store.LoadApplications(context.Background(), "apps.csv", "Application ID")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := table.Rows[0].Record["Reviewer 1"]; ok {
		t.Error("expected absent cell to stay absent, not become empty string")
	}
}

func TestLoadApplications_MissingIDColumn(t *testing.T) {
	store := memStore(t, map[string]string{
		"apps.csv": "Name,Reviewer 1\nAlice,101\n",
	})

	_, err := store.LoadApplications(context.Background(), "apps.csv", "Application ID")
	if !errors.Is(err, ErrMissingIDColumn) {
		t.Errorf("expected ErrMissingIDColumn, got %v", err)
	}
}

func TestWriteAssignments_OutputShape(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs)

	result := &types.Result{
		Assignments: []types.Assignment{
			{ApplicationID: "APP-1", Reviewers: []types.ReviewerID{7, 9, 11}, ExcludedCount: 1, EligibleCount: 4},
			{ApplicationID: "APP-2", Reviewers: []types.ReviewerID{5}, ExcludedCount: 0, EligibleCount: 1, Underfilled: true},
		},
	}
	if err := store.WriteAssignments("out.csv", result, 3, "Application ID"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := afero.ReadFile(fs, "out.csv")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	wantHeader := "Application ID,Assigned Reviewer 1,Assigned Reviewer 2,Assigned Reviewer 3,Excluded Count,Eligible Pool Size,Used Fallback"
	if lines[0] != wantHeader {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "APP-1,7,9,11,1,4,false" {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if lines[2] != "APP-2,5,,,0,1,true" {
		t.Errorf("expected empty slots for under-filled row, got: %s", lines[2])
	}
}
