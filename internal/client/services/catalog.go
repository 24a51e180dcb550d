// Package services holds the CLI use cases: browsing the catalog through
// the server while it is reachable and through the local cache when not.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/client/client"
	"github.com/dmitrijs2005/gophfund/internal/client/repositories/campaigns"
	"github.com/dmitrijs2005/gophfund/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/listing"
	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/models"
)

// CatalogService is the CLI's view of the catalog. It implements
// cursor.Fetcher.
type CatalogService struct {
	remote    client.Client
	campaigns campaigns.Repository
	metadata  metadata.Repository
	logger    logging.Logger
	online    atomic.Bool
	now       func() time.Time
}

// NewCatalogService starts in online mode; the first failed call or Ping
// switches it.
func NewCatalogService(remote client.Client, campaigns campaigns.Repository, metadata metadata.Repository, logger logging.Logger) *CatalogService {
	s := &CatalogService{
		remote:    remote,
		campaigns: campaigns,
		metadata:  metadata,
		logger:    logger,
		now:       time.Now,
	}
	s.online.Store(true)
	return s
}

func (s *CatalogService) Online() bool { return s.online.Load() }

// Ping checks the server and records the result as the current mode.
func (s *CatalogService) Ping(ctx context.Context) error {
	err := s.remote.Ping(ctx)
	s.online.Store(err == nil)
	return err
}

func (s *CatalogService) Close() error {
	return s.remote.Close()
}

// ListCampaigns fetches one page. Online pages are written through to the
// cache; when the server is unreachable the page is cut from the cache
// using the same ordering the server applies.
func (s *CatalogService) ListCampaigns(ctx context.Context, req models.PageRequest) (*models.CampaignPage, error) {
	if s.Online() {
		page, err := s.remote.ListCampaigns(ctx, req)
		if err == nil {
			s.remember(ctx, page.Campaigns)
			return page, nil
		}
		if !errors.Is(err, common.ErrUnavailable) {
			return nil, err
		}
		s.logger.Warn(ctx, "server unreachable, using local cache", "error", err)
		s.online.Store(false)
	}
	return s.cachedPage(ctx, req)
}

func (s *CatalogService) cachedPage(ctx context.Context, req models.PageRequest) (*models.CampaignPage, error) {
	all, err := s.campaigns.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %w", common.ErrUnavailable, common.ErrLocalDataNotAvailable)
	}

	ordered := listing.ByFilter(all, req.Filter)
	items := listing.Window(ordered, req.Offset, req.Limit)
	return &models.CampaignPage{
		Campaigns: items,
		Offset:    req.Offset,
		Limit:     req.Limit,
		Filter:    req.Filter,
		HasMore:   req.Offset+len(items) < len(ordered),
	}, nil
}

// Campaign returns the detail of slug. The server is asked only when it is
// reachable and serves details; otherwise whatever the cache holds is
// returned.
func (s *CatalogService) Campaign(ctx context.Context, slug string) (*models.CampaignDetail, error) {
	if d, ok := s.remote.(client.Detailer); ok && s.Online() {
		detail, err := d.GetCampaign(ctx, slug)
		if err == nil {
			if err := s.campaigns.SaveDetail(ctx, detail); err != nil {
				s.logger.Warn(ctx, "cache write failed", "slug", slug, "error", err)
			}
			return detail, nil
		}
		if !errors.Is(err, common.ErrUnavailable) {
			return nil, err
		}
		s.online.Store(false)
	}
	return s.campaigns.GetBySlug(ctx, slug)
}

// Categories lists categories from the server when possible, otherwise
// the ones referenced by cached campaigns, ordered by title.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	if d, ok := s.remote.(client.Detailer); ok && s.Online() {
		cats, err := d.Categories(ctx)
		if err == nil {
			return cats, nil
		}
		if !errors.Is(err, common.ErrUnavailable) {
			return nil, err
		}
		s.online.Store(false)
	}

	all, err := s.campaigns.All(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]models.Category{}
	for _, c := range all {
		if c.Category != nil && c.Category.Slug != "" {
			seen[c.Category.Slug] = models.Category{ID: c.Category.ID, Title: c.Category.Title, Slug: c.Category.Slug}
		}
	}
	out := make([]models.Category, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b models.Category) int {
		if d := strings.Compare(a.Title, b.Title); d != 0 {
			return d
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return out, nil
}

// Preferences returns the saved browsing state; read failures yield the
// defaults.
func (s *CatalogService) Preferences(ctx context.Context) metadata.Preferences {
	p, err := s.metadata.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "cannot load preferences", "error", err)
		return metadata.Preferences{}
	}
	return p
}

func (s *CatalogService) SavePreferences(ctx context.Context, p metadata.Preferences) error {
	return s.metadata.Save(ctx, p)
}

// CachedCount is the number of campaigns held in the local cache.
func (s *CatalogService) CachedCount(ctx context.Context) (int, error) {
	return s.campaigns.Count(ctx)
}

// ClearCache drops every cached campaign and all saved metadata, the last
// sync time included.
func (s *CatalogService) ClearCache(ctx context.Context) error {
	if err := s.campaigns.Clear(ctx); err != nil {
		return err
	}
	return s.metadata.Clear(ctx)
}

// remember writes a page through to the cache. The cache is best effort.
func (s *CatalogService) remember(ctx context.Context, items []models.CampaignSummary) {
	if len(items) == 0 {
		return
	}
	if err := s.campaigns.Save(ctx, items); err != nil {
		s.logger.Warn(ctx, "cache write failed", "error", err)
		return
	}
	p := s.Preferences(ctx)
	p.LastSync = s.now().UTC().Format(time.RFC3339)
	if err := s.metadata.Save(ctx, p); err != nil {
		s.logger.Warn(ctx, "cannot save sync time", "error", err)
	}
}
