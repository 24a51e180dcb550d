package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/listing"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/campaigns"
)

// CampaignRepository implements campaigns.Repository.
type CampaignRepository struct {
	s *Store
}

var _ campaigns.Repository = (*CampaignRepository)(nil)

func (r *CampaignRepository) List(ctx context.Context, filter models.Filter, offset, limit int) ([]models.CampaignSummary, error) {
	all := listing.ByFilter(r.s.summaries(func(models.CampaignSummary) bool { return true }), filter)
	return listing.Window(all, offset, limit), nil
}

func (r *CampaignRepository) Featured(ctx context.Context, limit int) ([]models.CampaignSummary, error) {
	all := r.s.summaries(func(c models.CampaignSummary) bool { return c.IsFeatured })
	slices.SortFunc(all, listing.CompareNewest)
	return listing.Window(all, 0, limit), nil
}

func (r *CampaignRepository) Urgent(ctx context.Context, limit int) ([]models.CampaignSummary, error) {
	all := r.s.summaries(func(c models.CampaignSummary) bool {
		return c.Urgency == models.UrgencyCritical || c.Urgency == models.UrgencyHigh
	})
	slices.SortFunc(all, listing.CompareNewest)
	return listing.Window(all, 0, limit), nil
}

func (r *CampaignRepository) GetBySlug(ctx context.Context, slug string) (*models.CampaignDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if slug == "" {
		return nil, common.ErrNotFound
	}
	for _, c := range r.s.campaigns {
		if c.Slug == slug {
			d := c
			d.CampaignSummary = r.s.resolveLocked(c.CampaignSummary)
			d.Tags = slices.Clone(c.Tags)
			d.Updates = slices.Clone(c.Updates)
			return &d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *CampaignRepository) Upsert(ctx context.Context, c *models.CampaignDetail) error {
	created, err := campaigns.ParseTime(c.CreatedAt)
	if err != nil {
		return err
	}
	if created.IsZero() {
		created = time.Now()
	}
	deadline, err := campaigns.ParseTime(c.Deadline)
	if err != nil {
		return err
	}

	stored := *c
	stored.CreatedAt = campaigns.FormatTime(created)
	stored.Deadline = ""
	if !deadline.IsZero() {
		stored.Deadline = campaigns.FormatTime(deadline)
	}
	if c.Category != nil {
		stored.Category = &models.CategoryRef{ID: c.Category.ID}
	}
	if c.Organizer != nil {
		o := *c.Organizer
		stored.Organizer = &o
	}
	stored.CoverImageURL = ""
	stored.Tags = slices.Clone(c.Tags)
	stored.Updates = slices.Clone(c.Updates)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, other := range r.s.campaigns {
		if id != c.ID && other.Slug == c.Slug {
			return fmt.Errorf("%w: duplicate campaign slug %q", common.ErrValidation, c.Slug)
		}
	}
	r.s.campaigns[c.ID] = stored
	return nil
}

// summaries returns resolved copies of every campaign with a slug that
// passes keep.
func (s *Store) summaries(keep func(models.CampaignSummary) bool) []models.CampaignSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CampaignSummary, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if c.Slug == "" || !keep(c.CampaignSummary) {
			continue
		}
		out = append(out, s.resolveLocked(c.CampaignSummary))
	}
	return out
}

// resolveLocked fills in the category reference from the categories map the
// way the SQL join does. s.mu must be held.
func (s *Store) resolveLocked(c models.CampaignSummary) models.CampaignSummary {
	c.Title = c.DisplayTitle()
	if c.Category != nil {
		if cat, ok := s.categories[c.Category.ID]; ok {
			c.Category = cat.Ref()
		} else {
			c.Category = nil
		}
	}
	if c.Organizer != nil {
		o := *c.Organizer
		c.Organizer = &o
	}
	return c
}
