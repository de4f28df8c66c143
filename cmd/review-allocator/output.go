package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

type reviewerLoad struct {
	id   types.ReviewerID
	load int
}

// sortedLoads orders the load table by load descending, then id
// ascending so the report is stable between runs.
func sortedLoads(loads map[types.ReviewerID]int) []reviewerLoad {
	result := make([]reviewerLoad, 0, len(loads))
	for id, load := range loads {
		result = append(result, reviewerLoad{id: id, load: load})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].load != result[j].load {
			return result[i].load > result[j].load
		}
		return result[i].id < result[j].id
	})
	return result
}

// printReport writes the human-readable run summary: reviewer load
// distribution, under-fill warnings, and advisories.
func printReport(out io.Writer, result *types.Result, outputPath string) {
	fmt.Fprintln(out, "\nReviewer Load Distribution:")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Reviewer", "Assignments"})
	for _, rl := range sortedLoads(result.Loads) {
		table.Append([]string{strconv.Itoa(int(rl.id)), strconv.Itoa(rl.load)})
	}
	table.Render()

	if len(result.Advisories) > 0 {
		fmt.Fprintln(out, "\nAdvisories:")
		for _, a := range result.Advisories {
			fmt.Fprintf(out, " - %s\n", a)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, " - %s\n", w)
		}
	}

	fmt.Fprintf(out, "\nOutput file: %s\n", outputPath)
}
