package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/server/repositories/memory"
)

// MemoryRepositoryManager serves every repository from one memory.Store.
type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func bindStore(s *memory.Store) Repositories {
	return Repositories{
		Campaigns:  s.Campaigns(),
		Categories: s.Categories(),
		Profiles:   s.Profiles(),
	}
}

func (m *MemoryRepositoryManager) Repositories() Repositories {
	return bindStore(m.store)
}

func (m *MemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return m.store.InTx(func(tx *memory.Store) error {
		return fn(ctx, bindStore(tx))
	})
}

func (m *MemoryRepositoryManager) Close() error { return nil }
