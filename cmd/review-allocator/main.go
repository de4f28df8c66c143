// Command review-allocator assigns reviewers to applications from a
// shared pool: k reviewers per application, excluded (conflict-of-
// interest) reviewers never assigned, and every reviewer's total load
// kept inside the configured band. Same seed, same inputs, same output.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/codeGROOVE-dev/review-allocator/pkg/allocator"
	"github.com/codeGROOVE-dev/review-allocator/pkg/config"
	"github.com/codeGROOVE-dev/review-allocator/pkg/csvio"
)

var (
	// Input/output flags
	applicants = flag.String("applicants", "", "Applicants CSV (required; must contain the application id column)")
	reviewers  = flag.String("reviewers", "", "Reviewer roster CSV (required; one identifier per row, first column)")
	output     = flag.String("output", config.DefaultOutput, "Output CSV path")
	configFile = flag.String("config", "", "Optional YAML config file; flags override its values")

	// Allocation flags
	perApp        = flag.Int("k", config.DefaultPerApplication, "Reviewers assigned per application")
	minLoad       = flag.Int("min-load", config.DefaultMinLoad, "Soft minimum assignments per reviewer (0 disables)")
	maxLoad       = flag.Int("max-load", config.DefaultMaxLoad, "Hard maximum assignments per reviewer (0 disables)")
	seed          = flag.Int64("seed", config.DefaultSeed, "Random seed; identical seed and inputs reproduce the run")
	idColumn      = flag.String("id-column", config.DefaultIDColumn, "Application identifier column name")
	exclusionCols = flag.String("exclusion-columns", "", "Comma-separated conflict-of-interest columns (default \"Reviewer 1,Reviewer 2,Reviewer 3\")")
)

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("Allocation failed: %v", err)
	}
}

// buildConfig merges defaults, the optional YAML file, and explicitly set
// flags, in increasing precedence.
func buildConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			return cfg, err
		}
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["applicants"] || cfg.Applicants == "" {
		cfg.Applicants = *applicants
	}
	if set["reviewers"] || cfg.Reviewers == "" {
		cfg.Reviewers = *reviewers
	}
	if set["output"] {
		cfg.Output = *output
	}
	if set["k"] {
		cfg.PerApplication = *perApp
	}
	if set["min-load"] {
		cfg.MinLoad = *minLoad
	}
	if set["max-load"] {
		cfg.MaxLoad = *maxLoad
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["id-column"] {
		cfg.IDColumn = *idColumn
	}
	if set["exclusion-columns"] {
		cfg.ExclusionColumns = config.SplitColumns(*exclusionCols)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	store := csvio.NewStore(afero.NewOsFs())

	raw, err := store.LoadReviewers(ctx, cfg.Reviewers)
	if err != nil {
		return err
	}
	pool, err := allocator.BuildPool(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Reviewers, err)
	}

	apps, err := store.LoadApplications(ctx, cfg.Applicants, cfg.IDColumn)
	if err != nil {
		return err
	}
	slog.Info("Loaded inputs", "reviewers", len(pool), "applications", len(apps.Rows))

	alloc := allocator.New(allocator.Config{
		ExclusionColumns: cfg.ExclusionColumns,
		PerApplication:   cfg.PerApplication,
		MinLoad:          cfg.MinLoad,
		MaxLoad:          cfg.MaxLoad,
		Seed:             cfg.Seed,
	}, pool)

	result, err := alloc.Run(apps)
	if err != nil {
		return err
	}

	if err := store.WriteAssignments(cfg.Output, result, cfg.PerApplication, cfg.IDColumn); err != nil {
		return err
	}
	slog.Info("Allocation complete", "applications", len(result.Assignments), "warnings", len(result.Warnings))

	printReport(os.Stdout, result, cfg.Output)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -applicants <csv> -reviewers <csv> [flags]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Assigns reviewers to applications under exclusion and load constraints.\n\n")
	flag.PrintDefaults()
}

func init() {
	flag.Usage = usage
}
