package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/categories"
)

// CategoryRepository implements categories.Repository.
type CategoryRepository struct {
	s *Store
}

var _ categories.Repository = (*CategoryRepository)(nil)

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	r.s.mu.RLock()
	out := make([]models.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Category) int {
		if d := strings.Compare(a.Title, b.Title); d != 0 {
			return d
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *CategoryRepository) Upsert(ctx context.Context, c *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, other := range r.s.categories {
		if id != c.ID && other.Slug == c.Slug {
			return fmt.Errorf("%w: duplicate category slug %q", common.ErrValidation, c.Slug)
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}
