// Package repomanager selects the storage backend from the DSN and vends
// the repositories, either directly or inside a transaction.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/server/repositories/campaigns"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/categories"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/profiles"
)

// MemoryDSN selects the in-process store.
const MemoryDSN = "memory"

// Repositories bundles the stores one unit of work needs.
type Repositories struct {
	Campaigns  campaigns.Repository
	Categories categories.Repository
	Profiles   profiles.Repository
}

type RepositoryManager interface {
	// Repositories returns repositories that run outside any transaction.
	Repositories() Repositories
	// InTx runs fn with repositories bound to one transaction. Nothing fn
	// wrote is visible to others unless it returns nil.
	InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	Close() error
}

// New opens the backend named by dsn.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == MemoryDSN {
		return NewMemoryRepositoryManager(), nil
	}
	m, err := NewPostgresRepositoryManager(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return m, nil
}
