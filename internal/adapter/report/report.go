package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
	"tfidf/internal/domain"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options controls how a result is rendered.
type Options struct {
	Format    string
	TopN      int // 0 keeps every term
	Precision int // digits after the point in text output, <0 for shortest
}

// DocumentScores is the rendered result set of one document.
type DocumentScores struct {
	ID    int64              `json:"id" yaml:"id"`
	Path  string             `json:"path" yaml:"path"`
	Terms []domain.TermScore `json:"terms" yaml:"terms"`
}

// Build orders the matrix for output: documents by id, terms by descending
// score then alphabetically. Documents missing from the matrix get an empty
// term list.
func Build(docs []domain.Document, matrix domain.TFIDFMatrix, topN int) []DocumentScores {
	sorted := make([]domain.Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	out := make([]DocumentScores, 0, len(sorted))
	for _, doc := range sorted {
		scores := matrix[doc.ID]
		terms := make([]domain.TermScore, 0, len(scores))
		for term, score := range scores {
			terms = append(terms, domain.TermScore{Term: term, Score: score})
		}
		sort.Slice(terms, func(i, j int) bool {
			if terms[i].Score != terms[j].Score {
				return terms[i].Score > terms[j].Score
			}
			return terms[i].Term < terms[j].Term
		})
		if topN > 0 && len(terms) > topN {
			terms = terms[:topN]
		}
		out = append(out, DocumentScores{ID: doc.ID, Path: doc.Path, Terms: terms})
	}
	return out
}

// Write renders results to w in the requested format.
func Write(w io.Writer, results []DocumentScores, opts Options) error {
	switch opts.Format {
	case "", FormatText:
		return writeText(w, results, opts.Precision)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, opts.Format)
	}
}

func writeText(w io.Writer, results []DocumentScores, precision int) error {
	for _, doc := range results {
		if _, err := fmt.Fprintf(w, "Document %d (%s):\n", doc.ID, doc.Path); err != nil {
			return err
		}
		for _, ts := range doc.Terms {
			score := strconv.FormatFloat(ts.Score, 'f', precision, 64)
			if _, err := fmt.Fprintf(w, "  %s: %s\n", ts.Term, score); err != nil {
				return err
			}
		}
	}
	return nil
}
