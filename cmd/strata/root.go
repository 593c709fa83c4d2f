package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tsawler/strata/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Extract structured outlines from PDF files",
	Long: `Strata extracts a document title and a flat list of headings (H1-H4)
from PDF files using typographic and geometric heuristics only. It needs no
bookmarks, no table of contents, and no network access.

Each input PDF produces one JSON file with the same basename:

  {"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}, ...]}`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("strata %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
