package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tfidf/config"
	"tfidf/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "tfidf",
	Short: "Compute TF-IDF weights for a catalog of text documents",
	Long: `tfidf reads document paths from a catalog, tokenizes and cleans each
document, and reports the TF-IDF weight of every term in every document.

Example usage:
  tfidf docs add ./docs          # Register every .txt file under ./docs
  tfidf compute                  # Score the catalog
  tfidf compute --format json    # Score and print JSON`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

// Execute runs the root command. Cobra has already printed the error, so
// callers only need to pick the exit code.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tfidf.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
