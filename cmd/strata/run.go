package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/strata"
	"github.com/tsawler/strata/classify"
	"github.com/tsawler/strata/model"
)

var inputDir string
var outputDir string
var workers int
var configFile string
var noLang bool
var verbose bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process a directory of PDFs into outline JSON files",
	Long: `Run processes every PDF in the input directory and writes one JSON
outline per file to the output directory, using the same basename. Files are
processed concurrently; one file's failure never affects the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		classifyCfg := classify.DefaultConfig()
		if configFile != "" {
			cfg, err := classify.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			classifyCfg = cfg
		}

		if workers <= 0 {
			workers = runtime.NumCPU()
		}

		return runBatch(batchConfig{
			inputDir:   inputDir,
			outputDir:  outputDir,
			workers:    workers,
			classify:   classifyCfg,
			detectLang: !noLang,
			verbose:    verbose,
			out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	runCmd.Flags().StringVarP(&inputDir, "input", "i", ".", "Directory containing the input PDFs")
	runCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory the JSON outlines are written to")
	runCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent files processed (0 = number of CPUs)")
	runCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML file overriding classification weights")
	runCmd.Flags().BoolVar(&noLang, "no-lang", false, "Disable language detection")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
}

type batchConfig struct {
	inputDir   string
	outputDir  string
	workers    int
	classify   classify.Config
	detectLang bool
	verbose    bool
	out        io.Writer
}

// fileResult records the outcome of one PDF.
type fileResult struct {
	name     string
	entries  int
	warnings int
	elapsed  time.Duration
	err      error
}

func runBatch(cfg batchConfig) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	files, err := findPDFs(cfg.inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", cfg.inputDir)
	}

	if err := os.MkdirAll(cfg.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger.Info("starting batch", "files", len(files), "workers", cfg.workers)
	start := time.Now()

	results := make([]fileResult, len(files))
	var g errgroup.Group
	g.SetLimit(cfg.workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			results[i] = processFile(cfg, logger, file)
			// A per-file failure is a result, not a batch error.
			return nil
		})
	}
	// Workers report per-file failures through results and never return
	// an error, so there is nothing to propagate here.
	_ = g.Wait()

	printSummary(cfg.out, results, time.Since(start))

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return fmt.Errorf("all %d files failed", failed)
	}
	return nil
}

// processFile extracts one PDF's outline and writes it next to the others.
func processFile(cfg batchConfig, logger *slog.Logger, path string) fileResult {
	name := filepath.Base(path)
	start := time.Now()
	log := logger.With("file", name)
	log.Debug("processing")

	out, warnings, err := strata.Open(path).
		DetectLanguage(cfg.detectLang).
		WithClassifyConfig(cfg.classify).
		Outline()
	if err != nil {
		log.Error("extraction failed", "error", err)
		return fileResult{name: name, elapsed: time.Since(start), err: err}
	}
	for _, w := range warnings {
		log.Warn("recovered", "warning", w.String())
	}

	if err := writeOutline(cfg.outputDir, name, out); err != nil {
		log.Error("write failed", "error", err)
		return fileResult{name: name, elapsed: time.Since(start), err: err}
	}

	elapsed := time.Since(start)
	log.Info("done", "entries", len(out.Entries), "elapsed", elapsed)
	return fileResult{
		name:     name,
		entries:  len(out.Entries),
		warnings: len(warnings),
		elapsed:  elapsed,
	}
}

func writeOutline(dir, pdfName string, out model.Outline) error {
	base := strings.TrimSuffix(pdfName, filepath.Ext(pdfName)) + ".json"
	path := filepath.Join(dir, base)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := out.WriteJSON(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
