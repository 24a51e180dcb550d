// Package campaigns stores campaign documents and answers the listing
// queries: filtered pages, featured and urgent selections, and lookups by
// slug.
package campaigns

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

// Repository is the campaign store. List orders results according to the
// filter and breaks ties by id, so consecutive offsets never overlap.
// Campaigns without a slug are never returned.
type Repository interface {
	List(ctx context.Context, filter models.Filter, offset, limit int) ([]models.CampaignSummary, error)
	Featured(ctx context.Context, limit int) ([]models.CampaignSummary, error)
	Urgent(ctx context.Context, limit int) ([]models.CampaignSummary, error)
	GetBySlug(ctx context.Context, slug string) (*models.CampaignDetail, error)
	Upsert(ctx context.Context, c *models.CampaignDetail) error
}
