package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"tfidf/internal/domain"
)

// CurrentSchemaVersion is the current catalog schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// SchemaVersion returns the version recorded in the catalog, 0 if none.
func (c *BoltCatalog) SchemaVersion() (int, error) {
	var version int
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &version)
	})
	return version, err
}

func (c *BoltCatalog) setSchemaVersion(version int) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(version)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
}

// migrate brings an older catalog up to CurrentSchemaVersion and refuses to
// open one written by a newer release.
func (c *BoltCatalog) migrate() error {
	version, err := c.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > CurrentSchemaVersion {
		return fmt.Errorf("%w (v%d > v%d)", domain.ErrSchemaVersion, version, CurrentSchemaVersion)
	}

	for v := version; v < CurrentSchemaVersion; v++ {
		if err := c.runMigration(v, v+1); err != nil {
			return fmt.Errorf("migration from v%d to v%d failed: %w", v, v+1, err)
		}
	}
	if version != CurrentSchemaVersion {
		return c.setSchemaVersion(CurrentSchemaVersion)
	}
	return nil
}

func (c *BoltCatalog) runMigration(from, to int) error {
	switch from {
	case 0:
		// v1 only needs the buckets created on open
		return nil
	default:
		return fmt.Errorf("no migration path from v%d to v%d", from, to)
	}
}
