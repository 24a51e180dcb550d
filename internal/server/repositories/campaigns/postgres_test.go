package campaigns

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var summaryCols = []string{
	"id", "title", "slug", "short_description", "beneficiary_name",
	"amount_raised", "goal", "donor_count", "currency", "status", "urgency",
	"created_at", "deadline", "location", "is_featured", "cover_image_key", "organizer",
	"cat_id", "cat_title", "cat_slug",
}

var created = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func summaryRowValues(id string, raised, goal float64) []any {
	return []any{
		id, "Title " + id, "slug-" + id, "short", "Aigerim",
		raised, goal, int64(4), "KGS", "active", "high",
		created, nil, "Bishkek", false, "covers/" + id + ".jpg", nil,
		nil, nil, nil,
	}
}

func TestList_OrdersPerFilter(t *testing.T) {
	tests := []struct {
		filter models.Filter
		re     string
	}{
		{models.FilterCloseToGoal, `AND c\.goal > 0 ORDER BY COALESCE\(c\.amount_raised, 0\) / c\.goal DESC, c\.id LIMIT \$1 OFFSET \$2`},
		{models.FilterJustLaunched, `ORDER BY c\.created_at DESC, c\.id LIMIT \$1 OFFSET \$2`},
		{models.FilterNeedsMomentum, `ORDER BY COALESCE\(c\.amount_raised, 0\) ASC, c\.id LIMIT \$1 OFFSET \$2`},
		{models.FilterAll, `ORDER BY c\.created_at DESC, c\.id LIMIT \$1 OFFSET \$2`},
		{"bogus", `ORDER BY c\.created_at DESC, c\.id LIMIT \$1 OFFSET \$2`},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			rows := sqlmock.NewRows(summaryCols).
				AddRow(summaryRowValues("a", 10, 100)...).
				AddRow(summaryRowValues("b", 0, 50)...)
			mock.ExpectQuery(`SELECT .* FROM campaigns c\s+LEFT JOIN categories cat .* WHERE c\.slug <> ''` + `.*` + tt.re).
				WithArgs(10, 20).
				WillReturnRows(rows)

			got, err := repo.List(context.Background(), tt.filter, 20, 10)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "a", got[0].ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestList_MapsColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	deadline := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(summaryCols).AddRow(
		"c1", "", "heart", "Surgery", "Aigerim",
		1500.0, 3000.0, int64(12), "USD", "active", "critical",
		created, deadline, "Osh", true, "covers/c1.jpg", []byte(`{"fullName":"Nurlan","city":"Osh"}`),
		"cat1", "Medical", "medical",
	)
	mock.ExpectQuery(`SELECT .* FROM campaigns`).WithArgs(10, 0).WillReturnRows(rows)

	got, err := repo.List(context.Background(), models.FilterAll, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := models.CampaignSummary{
		ID: "c1", Title: common.UntitledCampaign, Slug: "heart", ShortDescription: "Surgery",
		BeneficiaryName: "Aigerim", AmountRaised: 1500, Goal: 3000, DonorCount: 12,
		Currency: "USD", Status: models.StatusActive, Urgency: models.UrgencyCritical,
		CreatedAt: "2024-03-01T10:00:00Z", Deadline: "2025-01-31T00:00:00Z",
		Location: "Osh", IsFeatured: true, CoverImageKey: "covers/c1.jpg",
		Category:  &models.CategoryRef{ID: "cat1", Title: "Medical", Slug: "medical"},
		Organizer: &models.Organizer{FullName: "Nurlan", City: "Osh"},
	}
	assert.Equal(t, want, got[0])
}

func TestList_EmptyResultIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM campaigns`).WillReturnRows(sqlmock.NewRows(summaryCols))

	got, err := repo.List(context.Background(), models.FilterAll, 100, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM campaigns`).WillReturnError(errors.New("db is down"))

	_, err := repo.List(context.Background(), models.FilterAll, 0, 10)
	require.Error(t, err)
	assert.Regexp(t, `failed to select campaigns: .*db is down`, err.Error())
}

func TestList_BadOrganizerJSON(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	vals := summaryRowValues("a", 1, 2)
	vals[16] = []byte(`{not json`)
	mock.ExpectQuery(`SELECT .* FROM campaigns`).WillReturnRows(sqlmock.NewRows(summaryCols).AddRow(vals...))

	_, err := repo.List(context.Background(), models.FilterAll, 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode organizer")
}

func TestFeaturedAndUrgent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`AND c\.is_featured ORDER BY c\.created_at DESC, c\.id LIMIT \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(summaryCols).AddRow(summaryRowValues("f", 1, 2)...))
	mock.ExpectQuery(`AND c\.urgency IN \('critical', 'high'\) ORDER BY c\.created_at DESC, c\.id LIMIT \$1`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows(summaryCols).AddRow(summaryRowValues("u", 1, 2)...))

	f, err := repo.Featured(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, f, 1)
	assert.Equal(t, "f", f[0].ID)

	u, err := repo.Urgent(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, u, 1)
	assert.Equal(t, "u", u[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySlug(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	cols := append(append([]string{}, summaryCols...), "story", "tags", "updates")
	vals := append(summaryRowValues("a", 10, 100), "Long story",
		[]byte(`["surgery","kids"]`), []byte(`[{"title":"Surgery done","publishedAt":"2024-04-01"}]`))
	mock.ExpectQuery(`, c\.story, c\.tags, c\.updates .* AND c\.slug = \$1`).
		WithArgs("slug-a").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(vals...))

	d, err := repo.GetBySlug(context.Background(), "slug-a")
	require.NoError(t, err)
	assert.Equal(t, "a", d.ID)
	assert.Equal(t, "Long story", d.Story)
	assert.Equal(t, []string{"surgery", "kids"}, d.Tags)
	assert.Equal(t, []models.CampaignUpdate{{Title: "Surgery done", PublishedAt: "2024-04-01"}}, d.Updates)
}

func TestGetBySlug_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`AND c\.slug = \$1`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetBySlug_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`AND c\.slug = \$1`).WithArgs("x").WillReturnError(errors.New("boom"))

	_, err := repo.GetBySlug(context.Background(), "x")
	require.Error(t, err)
	assert.Regexp(t, `db error: .*boom`, err.Error())
}

func TestUpsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	c := &models.CampaignDetail{
		CampaignSummary: models.CampaignSummary{
			ID: "c1", Title: "Heart", Slug: "heart", AmountRaised: 10, Goal: 100, DonorCount: 2,
			Currency: "KGS", Status: models.StatusActive, Urgency: models.UrgencyHigh,
			CreatedAt: "2024-03-01T10:00:00Z", Deadline: "2024-12-31",
			Category:  &models.CategoryRef{ID: "cat1", Slug: "medical"},
			Organizer: &models.Organizer{FullName: "Nurlan"},
		},
		Story: "story",
	}

	mock.ExpectExec(`INSERT INTO campaigns .* ON CONFLICT \(id\)\s+DO UPDATE SET`).
		WithArgs(
			"c1", "Heart", "heart", "", "",
			10.0, 100.0, 2, "KGS", "active", "high",
			created, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "", false, "", "cat1",
			[]byte(`{"fullName":"Nurlan"}`), "story", []byte(`[]`), []byte(`[]`),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_BadTimestamp(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	err := repo.Upsert(context.Background(), &models.CampaignDetail{
		CampaignSummary: models.CampaignSummary{ID: "c1", Slug: "s", CreatedAt: "yesterday"},
	})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUpsert_ExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO campaigns`).WillReturnError(errors.New("db is down"))

	err := repo.Upsert(context.Background(), &models.CampaignDetail{
		CampaignSummary: models.CampaignSummary{ID: "c1", Slug: "s"},
	})
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db is down`, err.Error())
}

func TestParseTime(t *testing.T) {
	ts, err := ParseTime("2024-03-01T16:00:00+06:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T10:00:00Z", FormatTime(ts))

	ts, err = ParseTime("")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	_, err = ParseTime("03/01/2024")
	require.ErrorIs(t, err, common.ErrValidation)
}
