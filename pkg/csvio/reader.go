// Package csvio reads the reviewer and applicant tables and writes the
// allocation result. It is the boundary between flat files and the
// engine: the engine consumes normalized rows and opaque scalars and
// never sees raw file content.
package csvio

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

// ErrMissingIDColumn indicates the applicant table lacks the required
// application identifier column. This is a configuration error, fatal
// for the run.
var ErrMissingIDColumn = errors.New("application id column not found")

// Store reads and writes allocation tables on a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store backed by fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// LoadReviewers reads the reviewer roster: one candidate identifier per
// record, first column, returned raw. Validity is the normalizer's call,
// not ours.
func (s *Store) LoadReviewers(ctx context.Context, path string) ([]any, error) {
	data, err := s.readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var values []any
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if len(record) == 0 {
			continue
		}
		values = append(values, record[0])
	}
	return values, nil
}

// LoadApplications reads the applicant table, mapping each row by the
// header. Row order and header order are preserved. The idColumn must be
// present in the header; its cell value is carried through unchanged as
// the opaque application label.
func (s *Store) LoadApplications(ctx context.Context, path, idColumn string) (*types.ApplicationTable, error) {
	data, err := s.readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	idIndex := -1
	for i, col := range header {
		if col == idColumn {
			idIndex = i
			break
		}
	}
	if idIndex < 0 {
		return nil, fmt.Errorf("%s: column %q: %w", path, idColumn, ErrMissingIDColumn)
	}

	table := &types.ApplicationTable{Columns: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		var id string
		if idIndex < len(record) {
			id = record[idIndex]
		}
		table.Rows = append(table.Rows, types.Application{ID: id, Record: row})
	}
	return table, nil
}

// readFile fetches the whole file, retrying transient faults. Parsing
// happens on the in-memory copy so a retry never re-parses a partial read.
func (s *Store) readFile(ctx context.Context, path string) ([]byte, error) {
	var data []byte
	err := readWithRetry(ctx, "read "+path, func() error {
		b, err := afero.ReadFile(s.fs, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		data = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
