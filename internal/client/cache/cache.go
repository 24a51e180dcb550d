// Package cache opens the CLI's local SQLite database and vends its
// repositories.
package cache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophfund/internal/client/migrations"
	"github.com/dmitrijs2005/gophfund/internal/client/repositories/campaigns"
	"github.com/dmitrijs2005/gophfund/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophfund/internal/filex"

	_ "modernc.org/sqlite"
)

var sqlOpen = sql.Open

type Repositories struct {
	Campaigns campaigns.Repository
	Metadata  metadata.Repository
}

type Cache struct {
	Repositories
	db *sql.DB
}

// Open opens (creating if needed) the cache at dsn and migrates it. Use
// ":memory:" for a throwaway cache.
func Open(ctx context.Context, dsn string) (*Cache, error) {
	if _, err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	db, err := sqlOpen("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	// one connection: SQLite allows a single writer and ":memory:" is per
	// connection
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}

	return &Cache{
		Repositories: Repositories{
			Campaigns: campaigns.NewSQLiteRepository(db),
			Metadata:  metadata.NewSQLiteRepository(db),
		},
		db: db,
	}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
