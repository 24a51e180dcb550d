package listing

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

// ByFilter returns the campaigns in the server-side order of filter:
//
//   - close-to-goal: only goal > 0, descending raised/goal
//   - needs-momentum: ascending raised amount
//   - just-launched and all: descending creation time
//
// Ties fall back to ascending id so that offsets into the result are
// stable. The input is not modified.
func ByFilter(campaigns []models.CampaignSummary, filter models.Filter) []models.CampaignSummary {
	out := make([]models.CampaignSummary, 0, len(campaigns))

	var cmp func(a, b models.CampaignSummary) int
	switch filter {
	case models.FilterCloseToGoal:
		for _, c := range campaigns {
			if c.Goal > 0 {
				out = append(out, c)
			}
		}
		cmp = func(a, b models.CampaignSummary) int {
			ra, rb := a.AmountRaised/a.Goal, b.AmountRaised/b.Goal
			switch {
			case ra > rb:
				return -1
			case ra < rb:
				return 1
			}
			return strings.Compare(a.ID, b.ID)
		}
	case models.FilterNeedsMomentum:
		out = append(out, campaigns...)
		cmp = func(a, b models.CampaignSummary) int {
			switch {
			case a.AmountRaised < b.AmountRaised:
				return -1
			case a.AmountRaised > b.AmountRaised:
				return 1
			}
			return strings.Compare(a.ID, b.ID)
		}
	default:
		out = append(out, campaigns...)
		cmp = CompareNewest
	}

	slices.SortFunc(out, cmp)
	return out
}

// CompareNewest orders by descending creation time, then ascending id.
func CompareNewest(a, b models.CampaignSummary) int {
	if d := strings.Compare(b.CreatedAt, a.CreatedAt); d != 0 {
		return d
	}
	return strings.Compare(a.ID, b.ID)
}

// Window returns the slice of all starting at offset with at most limit
// elements. Out of range windows are empty, never nil.
func Window[T any](all []T, offset, limit int) []T {
	offset = max(offset, 0)
	if offset >= len(all) || limit <= 0 {
		return []T{}
	}
	end := min(offset+limit, len(all))
	return all[offset:end]
}
