package store

import (
	"context"
	"fmt"

	"tfidf/internal/domain"
	"tfidf/internal/logger"
	"tfidf/internal/port"
)

// DefaultDocumentPaths are registered when an empty catalog is seeded.
var DefaultDocumentPaths = []string{
	"./docs/doc1.txt",
	"./docs/doc2.txt",
	"./docs/doc3.txt",
}

// Seeder is implemented by catalogs that can insert the seed set atomically.
type Seeder interface {
	SeedIfEmpty(ctx context.Context, paths []string) (bool, error)
}

// Seed registers paths when the catalog holds no documents and returns the
// catalog's documents afterwards. A non-empty catalog is left untouched.
func Seed(ctx context.Context, catalog port.Catalog, paths []string) ([]domain.Document, error) {
	log := logger.WithComponent("catalog")

	var seeded bool
	if s, ok := catalog.(Seeder); ok {
		var err error
		if seeded, err = s.SeedIfEmpty(ctx, paths); err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
	} else {
		docs, err := catalog.ListDocuments(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing documents: %w", err)
		}
		if len(docs) == 0 {
			for _, p := range paths {
				if _, err := catalog.AddDocument(ctx, p); err != nil {
					return nil, fmt.Errorf("seeding %s: %w", p, err)
				}
			}
			seeded = len(paths) > 0
		}
	}
	if seeded {
		log.Info("no documents found in the catalog, inserted defaults", "count", len(paths))
	}

	docs, err := catalog.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}
