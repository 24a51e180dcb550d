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

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

const upsertSummary = `
	INSERT INTO campaigns (id, slug, category_slug, created_at, summary, seen_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		slug = excluded.slug,
		category_slug = excluded.category_slug,
		created_at = excluded.created_at,
		summary = excluded.summary,
		seen_at = excluded.seen_at
`

func (r *SQLiteRepository) Save(ctx context.Context, items []models.CampaignSummary) error {
	seen := r.now().UTC().Format(time.RFC3339)
	for _, c := range items {
		payload, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to encode campaign %s: %w", c.ID, err)
		}
		if _, err := r.db.ExecContext(ctx, upsertSummary, c.ID, c.Slug, c.CategorySlug(), c.CreatedAt, payload, seen); err != nil {
			return fmt.Errorf("failed to save campaign %s: %w", c.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) SaveDetail(ctx context.Context, d *models.CampaignDetail) error {
	if err := r.Save(ctx, []models.CampaignSummary{d.CampaignSummary}); err != nil {
		return err
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode campaign %s: %w", d.ID, err)
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE campaigns SET detail = ? WHERE id = ?`, payload, d.ID); err != nil {
		return fmt.Errorf("failed to save campaign detail %s: %w", d.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) All(ctx context.Context) ([]models.CampaignSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT summary FROM campaigns`)
	if err != nil {
		return nil, fmt.Errorf("failed to select campaigns: %w", err)
	}
	defer rows.Close()

	out := []models.CampaignSummary{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan campaign row: %w", err)
		}
		var c models.CampaignSummary
		if err := json.Unmarshal(payload, &c); err != nil {
			return nil, fmt.Errorf("failed to decode campaign: %w", err)
		}
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campaign rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) GetBySlug(ctx context.Context, slug string) (*models.CampaignDetail, error) {
	var summary, detail []byte
	err := r.db.QueryRowContext(ctx, `SELECT summary, detail FROM campaigns WHERE slug = ? ORDER BY seen_at DESC LIMIT 1`, slug).Scan(&summary, &detail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select campaign %s: %w", slug, err)
	}

	// The summary is refreshed by every listing, the detail only when it is
	// opened, so the summary part always comes from the summary column.
	var d models.CampaignDetail
	if detail != nil {
		if err := json.Unmarshal(detail, &d); err != nil {
			return nil, fmt.Errorf("failed to decode campaign %s: %w", slug, err)
		}
	}
	d.CampaignSummary = models.CampaignSummary{}
	if err := json.Unmarshal(summary, &d.CampaignSummary); err != nil {
		return nil, fmt.Errorf("failed to decode campaign %s: %w", slug, err)
	}
	return &d, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM campaigns`); err != nil {
		return fmt.Errorf("failed to clear campaigns: %w", err)
	}
	return nil
}
