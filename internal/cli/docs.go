package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"tfidf/internal/adapter/fs"
)

var docsJSON bool

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage the document catalog",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog documents",
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsAddCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Register documents in the catalog",
	Long: `Register files in the catalog. Directories are walked and every file
matching the configured include globs (and no exclude glob) is registered.
Paths inside the root directory are stored relative to it.

Examples:
  tfidf docs add ./docs/doc4.txt
  tfidf docs add ./corpus`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocsAdd,
}

var docsRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove documents from the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDocsRemove,
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsListCmd, docsAddCmd, docsRemoveCmd)
	docsListCmd.Flags().BoolVar(&docsJSON, "json", false, "output as JSON")
}

func runDocsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	catalog, err := openCatalog(ctx, GetConfig(), GetRootDir())
	if err != nil {
		return err
	}
	defer catalog.Close()

	docs, err := catalog.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	out := cmd.OutOrStdout()
	if docsJSON {
		output, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode documents: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}
	if len(docs) == 0 {
		fmt.Fprintln(out, "No documents registered.")
		return nil
	}
	for _, doc := range docs {
		fmt.Fprintf(out, "%d\t%s\n", doc.ID, doc.Path)
	}
	return nil
}

func runDocsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := GetConfig()
	root := GetRootDir()

	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	paths, err := walker.Expand(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no matching documents in %v", args)
	}

	catalog, err := openCatalog(ctx, cfg, root)
	if err != nil {
		return err
	}
	defer catalog.Close()

	base := cfg.DocumentBaseDir(root)
	for _, p := range paths {
		doc, err := catalog.AddDocument(ctx, catalogPath(base, p))
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", p, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d\t%s\n", doc.ID, doc.Path)
	}
	return nil
}

func runDocsRemove(cmd *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}

	ctx := cmd.Context()
	catalog, err := openCatalog(ctx, GetConfig(), GetRootDir())
	if err != nil {
		return err
	}
	defer catalog.Close()

	for _, id := range ids {
		if err := catalog.RemoveDocument(ctx, id); err != nil {
			return fmt.Errorf("failed to remove document: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d\n", id)
	}
	return nil
}

// catalogPath stores paths under base relative to it, in the "./docs/x.txt"
// form used by the default documents. Other paths are stored absolute.
func catalogPath(base, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return abs
	}
	rel, err := filepath.Rel(absBase, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs
	}
	return "./" + filepath.ToSlash(rel)
}
