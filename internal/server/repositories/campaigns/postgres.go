package campaigns

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/dbx"
	"github.com/dmitrijs2005/gophfund/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const summaryColumns = `
	c.id, c.title, c.slug, c.short_description, c.beneficiary_name,
	COALESCE(c.amount_raised, 0), c.goal, c.donor_count, c.currency, c.status, c.urgency,
	c.created_at, c.deadline, c.location, c.is_featured, c.cover_image_key, c.organizer,
	cat.id, cat.title, cat.slug`

const fromCampaigns = `
	FROM campaigns c
	LEFT JOIN categories cat ON cat.id = c.category_id
	WHERE c.slug <> ''`

// listClauses holds the extra predicate and the ordering of each filter.
var listClauses = map[models.Filter]struct{ where, order string }{
	models.FilterCloseToGoal:   {where: ` AND c.goal > 0`, order: `COALESCE(c.amount_raised, 0) / c.goal DESC, c.id`},
	models.FilterJustLaunched:  {order: `c.created_at DESC, c.id`},
	models.FilterNeedsMomentum: {order: `COALESCE(c.amount_raised, 0) ASC, c.id`},
	models.FilterAll:           {order: `c.created_at DESC, c.id`},
}

// List returns one page of campaigns ordered for filter. Unknown filters
// are treated as models.FilterAll.
func (r *PostgresRepository) List(ctx context.Context, filter models.Filter, offset, limit int) ([]models.CampaignSummary, error) {
	clause, ok := listClauses[filter]
	if !ok {
		clause = listClauses[models.FilterAll]
	}

	query := `SELECT` + summaryColumns + fromCampaigns + clause.where +
		` ORDER BY ` + clause.order + ` LIMIT $1 OFFSET $2`

	return r.selectSummaries(ctx, query, limit, offset)
}

// Featured returns up to limit featured campaigns, newest first.
func (r *PostgresRepository) Featured(ctx context.Context, limit int) ([]models.CampaignSummary, error) {
	query := `SELECT` + summaryColumns + fromCampaigns +
		` AND c.is_featured ORDER BY c.created_at DESC, c.id LIMIT $1`

	return r.selectSummaries(ctx, query, limit)
}

// Urgent returns up to limit campaigns tagged critical or high, newest first.
func (r *PostgresRepository) Urgent(ctx context.Context, limit int) ([]models.CampaignSummary, error) {
	query := `SELECT` + summaryColumns + fromCampaigns +
		` AND c.urgency IN ('critical', 'high') ORDER BY c.created_at DESC, c.id LIMIT $1`

	return r.selectSummaries(ctx, query, limit)
}

// GetBySlug returns the full campaign document or common.ErrNotFound.
func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.CampaignDetail, error) {
	query := `SELECT` + summaryColumns + `, c.story, c.tags, c.updates` + fromCampaigns +
		` AND c.slug = $1`

	var (
		row                summaryRow
		d                  models.CampaignDetail
		tagsJSON, updsJSON []byte
	)
	dest := append(row.dest(), &d.Story, &tagsJSON, &updsJSON)

	if err := r.db.QueryRowContext(ctx, query, slug).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	summary, err := row.summary()
	if err != nil {
		return nil, err
	}
	d.CampaignSummary = summary
	if err := unmarshalOptional(tagsJSON, &d.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if err := unmarshalOptional(updsJSON, &d.Updates); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}

	return &d, nil
}

// Upsert inserts the campaign or replaces the stored document with the same id.
func (r *PostgresRepository) Upsert(ctx context.Context, c *models.CampaignDetail) error {
	query := `
		INSERT INTO campaigns (id, title, slug, short_description, beneficiary_name,
			amount_raised, goal, donor_count, currency, status, urgency,
			created_at, deadline, location, is_featured, cover_image_key, category_id,
			organizer, story, tags, updates)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id)
		DO UPDATE SET
			title = EXCLUDED.title,
			slug = EXCLUDED.slug,
			short_description = EXCLUDED.short_description,
			beneficiary_name = EXCLUDED.beneficiary_name,
			amount_raised = EXCLUDED.amount_raised,
			goal = EXCLUDED.goal,
			donor_count = EXCLUDED.donor_count,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			urgency = EXCLUDED.urgency,
			created_at = EXCLUDED.created_at,
			deadline = EXCLUDED.deadline,
			location = EXCLUDED.location,
			is_featured = EXCLUDED.is_featured,
			cover_image_key = EXCLUDED.cover_image_key,
			category_id = EXCLUDED.category_id,
			organizer = EXCLUDED.organizer,
			story = EXCLUDED.story,
			tags = EXCLUDED.tags,
			updates = EXCLUDED.updates
	`

	args, err := upsertArgs(c)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func upsertArgs(c *models.CampaignDetail) ([]any, error) {
	createdAt, err := ParseTime(c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	deadline, err := ParseTime(c.Deadline)
	if err != nil {
		return nil, err
	}

	var deadlineArg, categoryArg, organizerArg any
	if !deadline.IsZero() {
		deadlineArg = deadline
	}
	if c.Category != nil {
		categoryArg = c.Category.ID
	}
	if c.Organizer != nil {
		if organizerArg, err = json.Marshal(c.Organizer); err != nil {
			return nil, err
		}
	}

	tags, err := json.Marshal(nonNil(c.Tags))
	if err != nil {
		return nil, err
	}
	updates, err := json.Marshal(nonNil(c.Updates))
	if err != nil {
		return nil, err
	}

	return []any{
		c.ID, c.Title, c.Slug, c.ShortDescription, c.BeneficiaryName,
		c.AmountRaised, c.Goal, c.DonorCount, c.Currency, string(c.Status), string(c.Urgency),
		createdAt, deadlineArg, c.Location, c.IsFeatured, c.CoverImageKey, categoryArg,
		organizerArg, c.Story, tags, updates,
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *PostgresRepository) selectSummaries(ctx context.Context, query string, args ...any) ([]models.CampaignSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select campaigns: %w", err)
	}
	defer rows.Close()

	result := []models.CampaignSummary{}
	for rows.Next() {
		var row summaryRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		item, err := row.summary()
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// summaryRow holds one scanned row, nullable columns included.
type summaryRow struct {
	s             models.CampaignSummary
	status        string
	urgency       string
	createdAt     time.Time
	deadline      sql.NullTime
	organizer     []byte
	categoryID    sql.NullString
	categoryTitle sql.NullString
	categorySlug  sql.NullString
}

func (r *summaryRow) dest() []any {
	s := &r.s
	return []any{
		&s.ID, &s.Title, &s.Slug, &s.ShortDescription, &s.BeneficiaryName,
		&s.AmountRaised, &s.Goal, &s.DonorCount, &s.Currency, &r.status, &r.urgency,
		&r.createdAt, &r.deadline, &s.Location, &s.IsFeatured, &s.CoverImageKey, &r.organizer,
		&r.categoryID, &r.categoryTitle, &r.categorySlug,
	}
}

func (r *summaryRow) summary() (models.CampaignSummary, error) {
	s := r.s
	s.Title = s.DisplayTitle()
	s.Status = models.CampaignStatus(r.status)
	s.Urgency = models.Urgency(r.urgency)
	s.CreatedAt = FormatTime(r.createdAt)
	if r.deadline.Valid {
		s.Deadline = FormatTime(r.deadline.Time)
	}
	if r.categoryID.Valid {
		s.Category = &models.CategoryRef{ID: r.categoryID.String, Title: r.categoryTitle.String, Slug: r.categorySlug.String}
	}
	if len(r.organizer) > 0 {
		var o models.Organizer
		if err := json.Unmarshal(r.organizer, &o); err != nil {
			return s, fmt.Errorf("decode organizer: %w", err)
		}
		s.Organizer = &o
	}
	return s, nil
}

func unmarshalOptional(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
