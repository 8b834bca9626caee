package cli

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/adapter/fs"
	"tfidf/internal/adapter/metrics"
	"tfidf/internal/adapter/report"
	"tfidf/internal/adapter/store"
	"tfidf/internal/domain"
	"tfidf/internal/logger"
	"tfidf/internal/usecase"
)

var (
	computeNoSeed    bool
	computeFormat    string
	computeTopN      int
	computeStopWords string
	computeProgress  bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute TF-IDF weights for every catalog document",
	Long: `Compute reads every document registered in the catalog, removes stop words
and non-lexical tokens, and prints the TF-IDF weight of each term per document.
An empty catalog is seeded with the default documents unless --no-seed is given.

Examples:
  tfidf compute
  tfidf compute --format yaml --top-n 5
  tfidf compute --stop-words ./french.txt`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().BoolVar(&computeNoSeed, "no-seed", false, "do not seed an empty catalog with default documents")
	computeCmd.Flags().StringVarP(&computeFormat, "format", "f", "", "output format: text, json or yaml (default from config)")
	computeCmd.Flags().IntVarP(&computeTopN, "top-n", "n", -1, "terms per document, 0 for all (default from config)")
	computeCmd.Flags().StringVar(&computeStopWords, "stop-words", "", "stop-word file (default from config)")
	computeCmd.Flags().BoolVar(&computeProgress, "progress", false, "show a progress bar while reading documents")
}

func runCompute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := GetConfig()
	root := GetRootDir()

	catalog, err := openCatalog(ctx, cfg, root)
	if err != nil {
		return err
	}
	defer catalog.Close()

	if cfg.Catalog.SeedDefaults && !computeNoSeed {
		if _, err := store.Seed(ctx, catalog, cfg.Catalog.DefaultPaths); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	stopPath := cfg.StopWordsPath(root)
	if computeStopWords != "" {
		stopPath = computeStopWords
	}
	stopwords := analyzer.LoadStopWords(stopPath)

	recorder := metrics.New()
	computeUC := usecase.NewComputeUseCase(
		catalog,
		fs.NewFileSource(cfg.DocumentBaseDir(root)),
		analyzer.NewTokenizer(),
		cfg.Corpus.Workers,
	).WithMetrics(recorder)

	var progress usecase.ProgressFunc
	if computeProgress {
		progress = newProgress()
	}

	result, runErr := computeUC.Run(ctx, stopwords, progress)

	if cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.WithComponent("cli").Warn("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		}
	}
	if runErr != nil {
		if errors.Is(runErr, domain.ErrEmptyCorpus) {
			return fmt.Errorf("no documents to score: %w", runErr)
		}
		return fmt.Errorf("compute failed: %w", runErr)
	}

	opts := report.Options{
		Format:    cfg.Report.Format,
		TopN:      cfg.Report.TopN,
		Precision: cfg.Report.Precision,
	}
	if computeFormat != "" {
		opts.Format = computeFormat
	}
	if computeTopN >= 0 {
		opts.TopN = computeTopN
	}

	results := report.Build(result.Documents, result.TFIDF, opts.TopN)
	if err := report.Write(cmd.OutOrStdout(), results, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if len(result.ReadFailures) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nWarnings:\n")
		for _, f := range result.ReadFailures {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - failed to read document %d (%s): %v\n", f.Document.ID, f.Document.Path, f.Err)
		}
	}
	return nil
}

// newProgress returns a progress callback drawing a bar on stderr. The bar is
// created on the first call, once the total is known.
func newProgress() usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time
	var done int

	return func(processed, total int, path string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Reading[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		// workers finish out of order
		if processed > done {
			done = processed
			bar.Set(done)
		}

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Reading[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
