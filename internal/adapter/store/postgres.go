package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"tfidf/internal/domain"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	id   SERIAL PRIMARY KEY,
	path TEXT NOT NULL
)`

// PostgresOptions tunes the connection pool of a PostgresCatalog.
type PostgresOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// PostgresCatalog keeps the document catalog in a relational documents table.
type PostgresCatalog struct {
	db *sql.DB
}

// NewPostgresCatalog connects with a lib/pq DSN and creates the table if needed.
func NewPostgresCatalog(ctx context.Context, dsn string, opts PostgresOptions) (*PostgresCatalog, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, createDocumentsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating documents table: %w", err)
	}
	return &PostgresCatalog{db: db}, nil
}

func (c *PostgresCatalog) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, path FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Path); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

func (c *PostgresCatalog) AddDocument(ctx context.Context, path string) (domain.Document, error) {
	doc := domain.Document{Path: path}
	err := c.db.QueryRowContext(ctx,
		`INSERT INTO documents (path) VALUES ($1) RETURNING id`, path,
	).Scan(&doc.ID)
	if err != nil {
		return domain.Document{}, fmt.Errorf("inserting document: %w", err)
	}
	return doc, nil
}

func (c *PostgresCatalog) RemoveDocument(ctx context.Context, id int64) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", domain.ErrDocumentNotFound, id)
	}
	return nil
}

// SeedIfEmpty inserts paths when the table is empty. The table is locked for
// the duration of the transaction so concurrent runs seed at most once.
func (c *PostgresCatalog) SeedIfEmpty(ctx context.Context, paths []string) (bool, error) {
	seeded := false
	err := c.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE documents IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("locking documents: %w", err)
		}
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
			return fmt.Errorf("counting documents: %w", err)
		}
		if count > 0 {
			return nil
		}
		for _, path := range paths {
			if _, err := tx.ExecContext(ctx, `INSERT INTO documents (path) VALUES ($1)`, path); err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
		}
		seeded = len(paths) > 0
		return nil
	})
	return seeded, err
}

func (c *PostgresCatalog) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back transaction after error %v: %w", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (c *PostgresCatalog) Close() error {
	return c.db.Close()
}
