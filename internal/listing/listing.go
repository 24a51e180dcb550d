// Package listing narrows and orders an already fetched set of campaigns by
// category, free-text search and a chosen sort criterion.
package listing

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/progress"
)

// SortBy names a listing order.
type SortBy string

const (
	SortImpact  SortBy = "impact"
	SortNewest  SortBy = "newest"
	SortUrgency SortBy = "urgency"
)

// AllCategories disables category filtering.
const AllCategories = "all"

// ParseSortBy normalises user input; unknown values fall back to SortImpact.
func ParseSortBy(s string) SortBy {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortNewest:
		return SortNewest
	case SortUrgency:
		return SortUrgency
	default:
		return SortImpact
	}
}

// Options selects what Apply keeps and how it orders the result.
type Options struct {
	CategorySlug string
	SearchText   string
	SortBy       SortBy
}

// Apply filters campaigns by category and search text, then sorts them
// stably. The input slice is never modified and the result is never nil.
func Apply(campaigns []models.CampaignSummary, opts Options) []models.CampaignSummary {
	out := make([]models.CampaignSummary, 0, len(campaigns))

	needle := strings.ToLower(strings.TrimSpace(opts.SearchText))
	category := strings.TrimSpace(opts.CategorySlug)
	for _, c := range campaigns {
		if category != "" && category != AllCategories && c.CategorySlug() != category {
			continue
		}
		if needle != "" && !matches(c, needle) {
			continue
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, comparator(opts.SortBy))
	return out
}

func matches(c models.CampaignSummary, needle string) bool {
	haystack := strings.ToLower(c.Title + " " + c.ShortDescription)
	return strings.Contains(haystack, needle)
}

func comparator(by SortBy) func(a, b models.CampaignSummary) int {
	switch ParseSortBy(string(by)) {
	case SortNewest:
		return func(a, b models.CampaignSummary) int {
			return strings.Compare(newestKey(b), newestKey(a))
		}
	case SortUrgency:
		return func(a, b models.CampaignSummary) int {
			if d := b.Urgency.Weight() - a.Urgency.Weight(); d != 0 {
				return d
			}
			return percent(b) - percent(a)
		}
	default:
		return func(a, b models.CampaignSummary) int {
			return percent(b) - percent(a)
		}
	}
}

// newestKey prefers the deadline over the creation time. Missing values
// compare as "" and therefore sort last in descending order.
func newestKey(c models.CampaignSummary) string {
	if c.Deadline != "" {
		return c.Deadline
	}
	return c.CreatedAt
}

func percent(c models.CampaignSummary) int {
	return progress.Percentage(c.AmountRaised, c.Goal)
}
