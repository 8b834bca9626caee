package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/adapter/metrics"
	"tfidf/internal/adapter/scorer"
	"tfidf/internal/domain"
	"tfidf/internal/logger"
	"tfidf/internal/port"
)

// ProgressFunc is called after each document has been read and cleaned.
// It may be called from several goroutines.
type ProgressFunc func(processed, total int, path string)

// ComputeUseCase runs the TF-IDF pipeline over the catalog's documents.
type ComputeUseCase struct {
	catalog   port.Catalog
	source    port.ContentSource
	tokenizer port.Tokenizer
	workers   int
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

// NewComputeUseCase creates a new compute use case. workers bounds the number
// of documents read concurrently; values below 1 mean sequential reads.
func NewComputeUseCase(
	catalog port.Catalog,
	source port.ContentSource,
	tokenizer port.Tokenizer,
	workers int,
) *ComputeUseCase {
	if workers < 1 {
		workers = 1
	}
	return &ComputeUseCase{
		catalog:   catalog,
		source:    source,
		tokenizer: tokenizer,
		workers:   workers,
		logger:    logger.WithComponent("compute"),
	}
}

// WithMetrics records run counters into m.
func (u *ComputeUseCase) WithMetrics(m *metrics.Recorder) *ComputeUseCase {
	u.metrics = m
	return u
}

// ComputeResult contains every structure produced by one run.
type ComputeResult struct {
	Documents    []domain.Document
	Cleaned      domain.CleanedTokens
	Matrix       domain.TermDocumentMatrix
	IDF          domain.IDFTable
	TFIDF        domain.TFIDFMatrix
	ReadFailures []domain.ReadFailure
}

// Run lists the catalog, cleans every document with the given stop words and
// scores the corpus. Unreadable documents are logged, recorded in
// ReadFailures and scored as empty. A catalog error or an empty corpus aborts
// the run.
func (u *ComputeUseCase) Run(ctx context.Context, stopwords analyzer.StopWords, progress ProgressFunc) (*ComputeResult, error) {
	start := time.Now()
	result, err := u.run(ctx, stopwords, progress)
	if u.metrics != nil {
		u.metrics.ObserveRun(start, err)
	}
	return result, err
}

func (u *ComputeUseCase) run(ctx context.Context, stopwords analyzer.StopWords, progress ProgressFunc) (*ComputeResult, error) {
	docs, err := u.catalog.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	u.logger.Info("documents loaded from catalog", "count", len(docs))

	cleaned, failures, err := u.cleanDocuments(ctx, docs, analyzer.NewCleaner(stopwords), progress)
	if err != nil {
		return nil, err
	}

	scored, err := scorer.Score(cleaned, len(docs))
	if err != nil {
		return nil, fmt.Errorf("scoring corpus: %w", err)
	}

	if u.metrics != nil {
		u.metrics.DocumentsTotal.Add(float64(len(docs)))
		u.metrics.ReadFailuresTotal.Add(float64(len(failures)))
		for _, tokens := range cleaned {
			u.metrics.CleanedTokensTotal.Add(float64(len(tokens)))
		}
		u.metrics.Terms.Set(float64(len(scored.Matrix)))
	}
	u.logger.Info("tf-idf computed", "documents", len(docs), "terms", len(scored.Matrix), "read_failures", len(failures))

	return &ComputeResult{
		Documents:    docs,
		Cleaned:      cleaned,
		Matrix:       scored.Matrix,
		IDF:          scored.IDF,
		TFIDF:        scored.TFIDF,
		ReadFailures: failures,
	}, nil
}

// cleanDocuments reads, tokenizes and cleans documents with a bounded pool.
// Workers only write their own slot, so no map is shared between goroutines.
func (u *ComputeUseCase) cleanDocuments(
	ctx context.Context,
	docs []domain.Document,
	cleaner *analyzer.Cleaner,
	progress ProgressFunc,
) (domain.CleanedTokens, []domain.ReadFailure, error) {
	tokens := make([][]string, len(docs))
	readErrs := make([]error, len(docs))
	var processed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, doc := range docs {
		g.Go(func() error {
			text, err := u.source.ReadFile(gctx, doc.Path)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				readErrs[i] = err
			} else {
				tokens[i] = cleaner.Clean(u.tokenizer.Tokenize(text))
			}
			if progress != nil {
				progress(int(processed.Add(1)), len(docs), doc.Path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("reading documents: %w", err)
	}

	cleaned := make(domain.CleanedTokens, len(docs))
	var failures []domain.ReadFailure
	for i, doc := range docs {
		if readErrs[i] != nil {
			u.logger.Warn("failed to read document, scoring it as empty", "id", doc.ID, "path", doc.Path, "error", readErrs[i])
			failures = append(failures, domain.ReadFailure{Document: doc, Err: readErrs[i]})
			cleaned[doc.ID] = []string{}
			continue
		}
		if tokens[i] == nil {
			tokens[i] = []string{}
		}
		cleaned[doc.ID] = tokens[i]
	}
	return cleaned, failures, nil
}
