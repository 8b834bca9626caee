package cli

import (
	"context"
	"fmt"

	"tfidf/config"
	"tfidf/internal/adapter/memstore"
	"tfidf/internal/adapter/store"
	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// openCatalog opens the catalog selected by the configuration.
func openCatalog(ctx context.Context, cfg *config.Config, root string) (port.Catalog, error) {
	switch cfg.Catalog.Driver {
	case "", "bolt":
		path := cfg.CatalogDBPath(root)
		if err := config.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
		c, err := store.NewBoltCatalog(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		return c, nil
	case "postgres":
		pg := cfg.Catalog.Postgres
		c, err := store.NewPostgresCatalog(ctx, pg.DSN(), store.PostgresOptions{
			MaxOpenConns:    pg.MaxOpenConns,
			MaxIdleConns:    pg.MaxIdleConns,
			ConnMaxLifetime: pg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		return c, nil
	case "memory":
		return memstore.NewMemoryCatalog(), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedDriver, cfg.Catalog.Driver)
	}
}
