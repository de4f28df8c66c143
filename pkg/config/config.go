// Package config carries the configuration surface for an allocation run:
// input/output paths, the per-application target, the load band, the seed,
// and the conflict-of-interest columns.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the values the review process has historically used.
const (
	DefaultPerApplication = 3
	DefaultMinLoad        = 3
	DefaultMaxLoad        = 5
	DefaultSeed           = 42
	DefaultIDColumn       = "Application ID"
	DefaultOutput         = "allocation.csv"
)

// DefaultExclusionColumns returns the applicant-table columns checked for
// conflict-of-interest reviewer identifiers.
func DefaultExclusionColumns() []string {
	return []string{"Reviewer 1", "Reviewer 2", "Reviewer 3"}
}

// Config is one run's full configuration.
type Config struct {
	Applicants       string   `yaml:"applicants"`
	Reviewers        string   `yaml:"reviewers"`
	Output           string   `yaml:"output"`
	IDColumn         string   `yaml:"id_column"`
	ExclusionColumns []string `yaml:"exclusion_columns"`
	PerApplication   int      `yaml:"assignments_per_application"`
	MinLoad          int      `yaml:"min_load"`
	MaxLoad          int      `yaml:"max_load"`
	Seed             int64    `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:           DefaultOutput,
		IDColumn:         DefaultIDColumn,
		ExclusionColumns: DefaultExclusionColumns(),
		PerApplication:   DefaultPerApplication,
		MinLoad:          DefaultMinLoad,
		MaxLoad:          DefaultMaxLoad,
		Seed:             DefaultSeed,
	}
}

// LoadFile overlays settings from a YAML file onto c. Fields absent from
// the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration before any I/O happens.
func (c *Config) Validate() error {
	if c.Applicants == "" {
		return errors.New("applicants file is required")
	}
	if c.Reviewers == "" {
		return errors.New("reviewers file is required")
	}
	if c.Output == "" {
		return errors.New("output path is required")
	}
	if c.IDColumn == "" {
		return errors.New("application id column name is required")
	}
	if c.PerApplication < 1 {
		return fmt.Errorf("assignments per application must be at least 1, got %d", c.PerApplication)
	}
	if c.MinLoad > 0 && c.MaxLoad > 0 && c.MinLoad > c.MaxLoad {
		return fmt.Errorf("min load %d exceeds max load %d", c.MinLoad, c.MaxLoad)
	}
	return nil
}

// SplitColumns parses a comma-separated column list, trimming whitespace
// and dropping empty entries.
func SplitColumns(s string) []string {
	var cols []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			cols = append(cols, trimmed)
		}
	}
	return cols
}
