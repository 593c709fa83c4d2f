package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// boxStyle for the completion summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// printSummary renders the per-file outcomes and batch totals.
func printSummary(w io.Writer, results []fileResult, elapsed time.Duration) {
	ok, failed, entries := 0, 0, 0

	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "%s %s %s\n",
				errorStyle.Render("✗"), r.name, dimStyle.Render(r.err.Error()))
			continue
		}
		ok++
		entries += r.entries
		detail := fmt.Sprintf("%d entries, %s", r.entries, r.elapsed.Round(time.Millisecond))
		if r.warnings > 0 {
			detail += fmt.Sprintf(", %d warnings", r.warnings)
		}
		fmt.Fprintf(w, "%s %s %s\n",
			successStyle.Render("✓"), r.name, dimStyle.Render(detail))
	}

	summary := fmt.Sprintf("%d processed, %d failed, %d outline entries in %s",
		ok, failed, entries, elapsed.Round(time.Millisecond))
	fmt.Fprintln(w, boxStyle.Render(summary))
}
