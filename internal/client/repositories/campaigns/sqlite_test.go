package campaigns

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/client/migrations"
	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

func newRepo(t *testing.T) *SQLiteRepository {
	r := NewSQLiteRepository(setupDB(t))
	r.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestSaveAndAll(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, []models.CampaignSummary{
		{ID: "a", Slug: "a", Title: "A", AmountRaised: 10, Goal: 100, Category: &models.CategoryRef{ID: "cat", Slug: "medical"}},
		{ID: "b", Slug: "b", Title: "B"},
	}))
	require.NoError(t, r.Save(ctx, []models.CampaignSummary{{ID: "a", Slug: "a", Title: "A", AmountRaised: 60, Goal: 100}}))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := r.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[string]models.CampaignSummary{}
	for _, c := range all {
		byID[c.ID] = c
	}
	assert.Equal(t, 60.0, byID["a"].AmountRaised)
	assert.Nil(t, byID["a"].Category)
}

func TestAll_EmptyIsNonNil(t *testing.T) {
	all, err := newRepo(t).All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGetBySlug(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	_, err := r.GetBySlug(ctx, "heart")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, r.Save(ctx, []models.CampaignSummary{{ID: "h", Slug: "heart", Title: "Heart", AmountRaised: 5}}))

	d, err := r.GetBySlug(ctx, "heart")
	require.NoError(t, err)
	assert.Equal(t, "Heart", d.Title)
	assert.Empty(t, d.Story)

	require.NoError(t, r.SaveDetail(ctx, &models.CampaignDetail{
		CampaignSummary: models.CampaignSummary{ID: "h", Slug: "heart", Title: "Heart", AmountRaised: 5},
		Story:           "Long story",
		Tags:            []string{"surgery"},
	}))
	// a newer listing refreshes the amounts but keeps the story
	require.NoError(t, r.Save(ctx, []models.CampaignSummary{{ID: "h", Slug: "heart", Title: "Heart", AmountRaised: 50}}))

	d, err = r.GetBySlug(ctx, "heart")
	require.NoError(t, err)
	assert.Equal(t, "Long story", d.Story)
	assert.Equal(t, []string{"surgery"}, d.Tags)
	assert.Equal(t, 50.0, d.AmountRaised)
}

func TestClear(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, []models.CampaignSummary{{ID: "a", Slug: "a"}}))
	require.NoError(t, r.Clear(ctx))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
