// Package memory keeps every repository in process memory. It backs the
// "memory" DSN used for development and tests and answers queries with the
// same ordering as the PostgreSQL repositories.
package memory

import (
	"maps"
	"sync"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

// Store holds all documents. The zero value is not usable; use NewStore.
type Store struct {
	txMu sync.Mutex

	mu         sync.RWMutex
	campaigns  map[string]models.CampaignDetail
	categories map[string]models.Category
	doctors    map[string]models.Doctor
	hospitals  map[string]models.Hospital
}

func NewStore() *Store {
	return &Store{
		campaigns:  map[string]models.CampaignDetail{},
		categories: map[string]models.Category{},
		doctors:    map[string]models.Doctor{},
		hospitals:  map[string]models.Hospital{},
	}
}

// Campaigns returns the campaign repository view of the store.
func (s *Store) Campaigns() *CampaignRepository { return &CampaignRepository{s: s} }

// Categories returns the category repository view of the store.
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }

// Profiles returns the profile repository view of the store.
func (s *Store) Profiles() *ProfileRepository { return &ProfileRepository{s: s} }

// InTx runs fn against a private copy of the store and publishes the copy
// only when fn succeeds. Transactions are serialised.
func (s *Store) InTx(fn func(tx *Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	tx := &Store{
		campaigns:  maps.Clone(s.campaigns),
		categories: maps.Clone(s.categories),
		doctors:    maps.Clone(s.doctors),
		hospitals:  maps.Clone(s.hospitals),
	}
	s.mu.RUnlock()

	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	s.campaigns, s.categories, s.doctors, s.hospitals = tx.campaigns, tx.categories, tx.doctors, tx.hospitals
	s.mu.Unlock()
	return nil
}
