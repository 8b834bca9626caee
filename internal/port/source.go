package port

import "context"

// ContentSource reads the raw text of a document.
type ContentSource interface {
	ReadFile(ctx context.Context, path string) (string, error)
}
