package client

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

// Client is what the CLI needs from any transport.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	ListCampaigns(ctx context.Context, req models.PageRequest) (*models.CampaignPage, error)
}

// Detailer is implemented by transports that serve more than the listing.
type Detailer interface {
	GetCampaign(ctx context.Context, slug string) (*models.CampaignDetail, error)
	Categories(ctx context.Context) ([]models.Category, error)
}
