package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"tfidf/internal/adapter/analyzer"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Print the effective stop-word set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().StopWordsPath(GetRootDir())
		words := analyzer.LoadStopWords(path)
		for _, w := range words.Sorted() {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
}
