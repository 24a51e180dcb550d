// Package categories stores the campaign categories.
package categories

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Upsert(ctx context.Context, c *models.Category) error
}
