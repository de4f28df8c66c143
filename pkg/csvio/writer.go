package csvio

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

// WriteAssignments writes one output row per processed application: the
// application id, k assigned-reviewer slots (empty where under-filled),
// excluded count, eligible pool size at selection time, and the
// under-fill flag. Written in one shot; a failed run leaves no output.
func (s *Store) WriteAssignments(path string, result *types.Result, k int, idColumn string) error {
	file, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer := csv.NewWriter(file)

	header := make([]string, 0, k+4)
	header = append(header, idColumn)
	for i := range k {
		header = append(header, fmt.Sprintf("Assigned Reviewer %d", i+1))
	}
	header = append(header, "Excluded Count", "Eligible Pool Size", "Used Fallback")
	if err := writer.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	for _, asg := range result.Assignments {
		row := make([]string, 0, len(header))
		row = append(row, asg.ApplicationID)
		for i := range k {
			if i < len(asg.Reviewers) {
				row = append(row, strconv.Itoa(int(asg.Reviewers[i])))
			} else {
				row = append(row, "")
			}
		}
		row = append(row,
			strconv.Itoa(asg.ExcludedCount),
			strconv.Itoa(asg.EligibleCount),
			strconv.FormatBool(asg.Underfilled))
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
