// Package services holds the server use cases: the read-only campaign
// catalog, cover image presigning and the content importer.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfund/internal/cards"
	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/progress"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/repomanager"
)

// CampaignView is the detail route payload: the document plus its derived
// display values.
type CampaignView struct {
	models.CampaignDetail
	Progress progress.View `json:"progress"`
}

// CatalogService answers every read query of the site.
type CatalogService struct {
	repomanager repomanager.RepositoryManager
	media       MediaResolver
	formatter   *progress.Formatter
	logger      logging.Logger
}

// NewCatalogService wires the catalog. media may be nil, in which case no
// image URLs are produced.
func NewCatalogService(repomanager repomanager.RepositoryManager, media MediaResolver, formatter *progress.Formatter, logger logging.Logger) *CatalogService {
	return &CatalogService{
		repomanager: repomanager,
		media:       media,
		formatter:   formatter,
		logger:      logger,
	}
}

// ListCampaigns returns one page of the listing. HasMore is set when the
// page came back full. Storage failures wrap common.ErrFetchFailed.
func (s *CatalogService) ListCampaigns(ctx context.Context, req models.PageRequest) (*models.CampaignPage, error) {
	req = NormalizePageRequest(req)

	items, err := s.repomanager.Repositories().Campaigns.List(ctx, req.Filter, req.Offset, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}
	s.attachCovers(ctx, items)

	return &models.CampaignPage{
		Campaigns: items,
		Offset:    req.Offset,
		Limit:     req.Limit,
		Filter:    req.Filter,
		HasMore:   len(items) == req.Limit,
	}, nil
}

// GetCampaign returns the campaign with slug or common.ErrNotFound.
func (s *CatalogService) GetCampaign(ctx context.Context, slug string) (*CampaignView, error) {
	d, err := s.repomanager.Repositories().Campaigns.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	d.CoverImageURL = s.resolve(ctx, d.CoverImageKey)
	return &CampaignView{
		CampaignDetail: *d,
		Progress:       s.formatter.Describe(d.AmountRaised, d.Goal, d.DonorCount, d.Currency),
	}, nil
}

// Featured returns the featured campaigns, newest first.
func (s *CatalogService) Featured(ctx context.Context) ([]models.CampaignSummary, error) {
	items, err := s.repomanager.Repositories().Campaigns.Featured(ctx, FeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}
	s.attachCovers(ctx, items)
	return items, nil
}

// Urgent returns campaigns tagged critical or high, newest first.
func (s *CatalogService) Urgent(ctx context.Context) ([]models.CampaignSummary, error) {
	items, err := s.repomanager.Repositories().Campaigns.Urgent(ctx, UrgentLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}
	s.attachCovers(ctx, items)
	return items, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	items, err := s.repomanager.Repositories().Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}
	return items, nil
}

// Cards renders the profiles of one kind as cards.
func (s *CatalogService) Cards(ctx context.Context, kind cards.Kind) ([]cards.Card, error) {
	repos := s.repomanager.Repositories()

	var (
		out []cards.Card
		err error
	)
	switch kind {
	case cards.KindDoctor:
		var docs []models.Doctor
		if docs, err = repos.Profiles.ListDoctors(ctx, CardsLimit); err == nil {
			out = cards.RenderAll(cards.Convert(docs, func(d models.Doctor) cards.Doctor { return cards.Doctor(d) }), s.formatter)
		}
	case cards.KindHospital:
		var hs []models.Hospital
		if hs, err = repos.Profiles.ListHospitals(ctx, CardsLimit); err == nil {
			out = cards.RenderAll(cards.Convert(hs, func(h models.Hospital) cards.Hospital { return cards.Hospital(h) }), s.formatter)
		}
	case cards.KindCampaign, cards.KindPatient:
		var cs []models.CampaignSummary
		if cs, err = repos.Campaigns.List(ctx, models.FilterAll, 0, CardsLimit); err == nil {
			if kind == cards.KindPatient {
				out = cards.RenderAll(cards.Convert(cs, func(c models.CampaignSummary) cards.Patient { return cards.Patient(c) }), s.formatter)
			} else {
				out = cards.RenderAll(cards.Convert(cs, func(c models.CampaignSummary) cards.Campaign { return cards.Campaign(c) }), s.formatter)
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown card kind %q", common.ErrValidation, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}

	for i := range out {
		out[i].ImageURL = s.resolve(ctx, out[i].ImageKey)
	}
	return out, nil
}

func (s *CatalogService) attachCovers(ctx context.Context, items []models.CampaignSummary) {
	for i := range items {
		items[i].CoverImageURL = s.resolve(ctx, items[i].CoverImageKey)
	}
}

// resolve presigns key. Failures only cost the image, so they are logged
// and swallowed.
func (s *CatalogService) resolve(ctx context.Context, key string) string {
	if s.media == nil || key == "" {
		return ""
	}
	url, err := s.media.PresignedGetURL(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "presign failed", "key", key, "error", err)
		return ""
	}
	return url
}
