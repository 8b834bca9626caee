package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tfidf/internal/domain"
)

// MemoryCatalog is a process-local catalog. Contents are lost on exit.
type MemoryCatalog struct {
	mu     sync.RWMutex
	docs   map[int64]domain.Document
	nextID int64
}

func NewMemoryCatalog(paths ...string) *MemoryCatalog {
	c := &MemoryCatalog{
		docs: make(map[int64]domain.Document),
	}
	for _, p := range paths {
		c.add(p)
	}
	return c
}

func (c *MemoryCatalog) add(path string) domain.Document {
	c.nextID++
	doc := domain.Document{ID: c.nextID, Path: path}
	c.docs[doc.ID] = doc
	return doc
}

func (c *MemoryCatalog) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	docs := make([]domain.Document, 0, len(c.docs))
	for _, doc := range c.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (c *MemoryCatalog) AddDocument(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(path), nil
}

func (c *MemoryCatalog) RemoveDocument(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrDocumentNotFound, id)
	}
	delete(c.docs, id)
	return nil
}

// SeedIfEmpty adds paths under a single lock when the catalog is empty.
func (c *MemoryCatalog) SeedIfEmpty(ctx context.Context, paths []string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.docs) > 0 {
		return false, nil
	}
	for _, p := range paths {
		c.add(p)
	}
	return len(paths) > 0, nil
}

func (c *MemoryCatalog) Close() error {
	return nil
}
