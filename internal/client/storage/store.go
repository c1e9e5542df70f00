// Package storage provides the durable key/value store the client keeps its
// session token in. Two backends exist: SQLite (default) and bbolt.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymbro/internal/filex"
)

// Store is a small durable string map. Get reports ok=false for absent keys;
// Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Open opens the store selected by driver at path, creating the parent
// directory first.
func Open(ctx context.Context, driver, path string) (Store, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	switch driver {
	case "", DriverSQLite:
		return OpenSQLite(ctx, path)
	case DriverBolt:
		return OpenBolt(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
