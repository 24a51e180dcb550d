package listing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaign(id string, raised, goal float64) models.CampaignSummary {
	return models.CampaignSummary{ID: id, Title: "Campaign " + id, AmountRaised: raised, Goal: goal}
}

func ids(cs []models.CampaignSummary) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestParseSortBy(t *testing.T) {
	assert.Equal(t, SortImpact, ParseSortBy(""))
	assert.Equal(t, SortImpact, ParseSortBy("popular"))
	assert.Equal(t, SortNewest, ParseSortBy(" Newest "))
	assert.Equal(t, SortUrgency, ParseSortBy("URGENCY"))
}

func TestApply_ImpactDescendingByPercent(t *testing.T) {
	in := []models.CampaignSummary{
		campaign("a", 10, 100),
		campaign("b", 90, 100),
		campaign("c", 50, 100),
	}

	out := Apply(in, Options{CategorySlug: "all", SortBy: SortImpact})

	assert.Equal(t, []string{"b", "c", "a"}, ids(out))
}

func TestApply_UnknownSortFallsBackToImpact(t *testing.T) {
	in := []models.CampaignSummary{campaign("a", 1, 100), campaign("b", 2, 100)}

	out := Apply(in, Options{SortBy: "whatever"})

	assert.Equal(t, []string{"b", "a"}, ids(out))
}

func TestApply_UrgencyThenPercent(t *testing.T) {
	a := campaign("A", 20, 100)
	a.Urgency = models.UrgencyHigh
	b := campaign("B", 80, 100)
	b.Urgency = models.UrgencyCritical
	c := campaign("C", 90, 100)
	c.Urgency = models.UrgencyHigh
	d := campaign("D", 99, 100)

	out := Apply([]models.CampaignSummary{a, b, c, d}, Options{SortBy: SortUrgency})

	assert.Equal(t, []string{"B", "C", "A", "D"}, ids(out))
}

func TestApply_NewestPrefersDeadlineAndPutsMissingLast(t *testing.T) {
	a := campaign("a", 0, 1)
	a.CreatedAt = "2024-01-01T00:00:00Z"
	b := campaign("b", 0, 1)
	b.CreatedAt = "2023-01-01T00:00:00Z"
	b.Deadline = "2025-06-01T00:00:00Z"
	c := campaign("c", 0, 1)
	d := campaign("d", 0, 1)
	d.CreatedAt = "2024-05-01T00:00:00Z"

	out := Apply([]models.CampaignSummary{c, a, b, d}, Options{SortBy: SortNewest})

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(out))
}

func TestApply_CategoryAndSearch(t *testing.T) {
	med := &models.CategoryRef{ID: "1", Slug: "medical"}
	edu := &models.CategoryRef{ID: "2", Slug: "education"}

	in := []models.CampaignSummary{
		{ID: "1", Title: "Heart surgery for Aigerim", Category: med},
		{ID: "2", Title: "School books", ShortDescription: "Help the village SCHOOL", Category: edu},
		{ID: "3", Title: "Wheelchair", ShortDescription: "mobility after surgery", Category: med},
		{ID: "4", Title: "No category surgery"},
	}

	assert.Equal(t, []string{"1", "3"}, ids(Apply(in, Options{CategorySlug: "medical"})))
	assert.Equal(t, []string{"1", "3", "4"}, ids(Apply(in, Options{SearchText: "SURGERY"})))
	assert.Equal(t, []string{"2"}, ids(Apply(in, Options{SearchText: "school"})))
	assert.Equal(t, []string{"3"}, ids(Apply(in, Options{CategorySlug: "medical", SearchText: "mobility"})))
	assert.Len(t, Apply(in, Options{SearchText: "   "}), 4)
	assert.Empty(t, Apply(in, Options{CategorySlug: "sports"}))
}

func TestApply_SearchMatchesAcrossTitleAndDescription(t *testing.T) {
	in := []models.CampaignSummary{{ID: "1", Title: "Clean", ShortDescription: "water"}}

	assert.Len(t, Apply(in, Options{SearchText: "clean water"}), 1)
}

func TestApply_EmptyInput(t *testing.T) {
	out := Apply(nil, Options{SortBy: SortUrgency})

	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestApply_DoesNotMutateInputAndIsIdempotent(t *testing.T) {
	in := []models.CampaignSummary{
		campaign("a", 10, 100),
		campaign("b", 90, 100),
		campaign("c", 50, 100),
		campaign("d", 50, 100),
	}
	orig := append([]models.CampaignSummary(nil), in...)
	opts := Options{SortBy: SortImpact}

	once := Apply(in, opts)
	twice := Apply(once, opts)

	assert.Equal(t, orig, in)
	assert.Equal(t, once, twice)
	// equal percentages keep input order
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids(once))
}

func TestApply_ZeroGoalSortsAsZeroPercent(t *testing.T) {
	in := []models.CampaignSummary{campaign("zero", 500, 0), campaign("some", 1, 100)}

	assert.Equal(t, []string{"some", "zero"}, ids(Apply(in, Options{})))
}

func TestApply_InputOrderDoesNotChangeTheSelection(t *testing.T) {
	var in []models.CampaignSummary
	for i := range 12 {
		c := campaign(fmt.Sprintf("c%02d", i), float64(i*7%50), 50)
		c.ShortDescription = "surgery"
		if i%3 == 0 {
			c.ShortDescription = "school"
		}
		c.Category = &models.CategoryRef{Slug: "medical"}
		if i%2 == 0 {
			c.Category = &models.CategoryRef{Slug: "kids"}
		}
		c.CreatedAt = fmt.Sprintf("2024-02-%02dT00:00:00Z", i+1)
		c.Urgency = []models.Urgency{models.UrgencyCritical, models.UrgencyHigh, models.UrgencyNormal}[i%3]
		in = append(in, c)
	}

	tests := []struct {
		name string
		opts Options
	}{
		{"impact", Options{SortBy: SortImpact}},
		{"newest in category", Options{CategorySlug: "kids", SortBy: SortNewest}},
		{"urgency with search", Options{SearchText: "surgery", SortBy: SortUrgency}},
	}
	rng := rand.New(rand.NewSource(42))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Apply(in, tt.opts)
			for range 20 {
				shuffled := append([]models.CampaignSummary(nil), in...)
				rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

				assert.ElementsMatch(t, want, Apply(shuffled, tt.opts))
			}
		})
	}
}
