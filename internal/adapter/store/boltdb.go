package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"tfidf/internal/domain"
)

var (
	bucketDocuments = []byte("documents")
	bucketMeta      = []byte("meta")
)

// BoltCatalog keeps the document catalog in a single bbolt file. Ids come
// from the bucket sequence, so they increase and are never reused.
type BoltCatalog struct {
	db *bbolt.DB
}

func NewBoltCatalog(path string) (*BoltCatalog, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocuments, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	c := &BoltCatalog{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

type docMeta struct {
	Path string `json:"path"`
}

func idKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

func (c *BoltCatalog) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var docs []domain.Document
	err := c.db.View(func(tx *bbolt.Tx) error {
		// big-endian keys iterate in id order
		return tx.Bucket(bucketDocuments).ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return fmt.Errorf("decoding document %x: %w", k, err)
			}
			docs = append(docs, domain.Document{
				ID:   int64(binary.BigEndian.Uint64(k)),
				Path: meta.Path,
			})
			return nil
		})
	})
	return docs, err
}

func (c *BoltCatalog) AddDocument(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	var doc domain.Document
	err := c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(docMeta{Path: path})
		if err != nil {
			return err
		}
		doc = domain.Document{ID: int64(seq), Path: path}
		return b.Put(idKey(doc.ID), data)
	})
	return doc, err
}

func (c *BoltCatalog) RemoveDocument(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b.Get(idKey(id)) == nil {
			return fmt.Errorf("%w: %d", domain.ErrDocumentNotFound, id)
		}
		return b.Delete(idKey(id))
	})
}

// SeedIfEmpty inserts paths in one transaction if no document exists yet.
func (c *BoltCatalog) SeedIfEmpty(ctx context.Context, paths []string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	seeded := false
	err := c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if k, _ := b.Cursor().First(); k != nil {
			return nil
		}
		for _, path := range paths {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			data, err := json.Marshal(docMeta{Path: path})
			if err != nil {
				return err
			}
			if err := b.Put(idKey(int64(seq)), data); err != nil {
				return err
			}
		}
		seeded = len(paths) > 0
		return nil
	})
	return seeded, err
}

func (c *BoltCatalog) Close() error {
	return c.db.Close()
}
