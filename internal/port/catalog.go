package port

import (
	"context"

	"tfidf/internal/domain"
)

// Catalog is the persisted list of documents a run scores.
type Catalog interface {
	// ListDocuments returns every registered document ordered by id.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// AddDocument registers path and returns it with its assigned id.
	AddDocument(ctx context.Context, path string) (domain.Document, error)

	// RemoveDocument deletes a document by id.
	RemoveDocument(ctx context.Context, id int64) error

	Close() error
}
