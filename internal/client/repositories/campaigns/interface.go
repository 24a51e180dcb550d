// Package campaigns keeps every campaign the CLI has seen in the local
// SQLite cache, so browsing keeps working while the server is offline.
package campaigns

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

type Repository interface {
	// Save upserts summaries. A stored detail survives a summary update.
	Save(ctx context.Context, items []models.CampaignSummary) error
	SaveDetail(ctx context.Context, d *models.CampaignDetail) error
	// All returns every cached summary in no particular order.
	All(ctx context.Context) ([]models.CampaignSummary, error)
	// GetBySlug returns the cached detail, or the summary wrapped in a
	// detail when only that is known. Unknown slugs return
	// common.ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*models.CampaignDetail, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
