package cmd

import (
	"fmt"

	"biao/pkg/label"
)

// printLabel renders one label in the fixed field layout.
func printLabel(l *label.Label) {
	fmt.Printf("  Name:        %s\n", l.Name)
	fmt.Printf("  Color:       ■ #%s\n", l.Color)
	if l.Description != "" {
		fmt.Printf("  Description: %s\n", l.Description)
	}
	if l.URL != "" {
		fmt.Printf("  URL:         %s\n", l.URL)
	}
	fmt.Println()
}

// displaySummary renders per-item results and the aggregate counts. The
// engine never prints; all presentation happens here.
func displaySummary(summary *label.Summary) {
	for _, result := range summary.Results {
		switch result.Status {
		case label.StatusCreated, label.StatusUpdated, label.StatusDeleted:
			fmt.Printf("  ✓ %s: OK\n", result.Action)
		case label.StatusDryRun:
			fmt.Printf("  • %s: [DRY RUN]\n", result.Action)
		case label.StatusSkipped:
			fmt.Printf("  - %s: SKIPPED (%s)\n", result.Action, result.Reason)
		case label.StatusFailed:
			fmt.Printf("  ✗ %s: FAILED: %v\n", result.Action, result.Err)
		}
	}

	fmt.Println("\n=== Summary ===")
	fmt.Printf("  Success: %d\n", summary.Succeeded)
	if summary.Skipped > 0 {
		fmt.Printf("  Skipped: %d\n", summary.Skipped)
	}
	if summary.Failed > 0 {
		fmt.Printf("  Failed:  %d\n", summary.Failed)
	}

	if summary.DryRun {
		fmt.Println("\nThis was a dry run. No actual changes were made.")
	}
}
