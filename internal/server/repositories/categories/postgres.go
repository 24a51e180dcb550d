package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/dbx"
	"github.com/dmitrijs2005/gophfund/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all categories ordered by title.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, title, slug, description, icon, accent_color FROM categories
		ORDER BY title, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	defer rows.Close()

	result := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Description, &c.Icon, &c.AccentColor); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `SELECT id, title, slug, description, icon, accent_color FROM categories
		WHERE slug = $1`

	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&c.ID, &c.Title, &c.Slug, &c.Description, &c.Icon, &c.AccentColor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (id, title, slug, description, icon, accent_color)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			title = EXCLUDED.title,
			slug = EXCLUDED.slug,
			description = EXCLUDED.description,
			icon = EXCLUDED.icon,
			accent_color = EXCLUDED.accent_color
	`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Title, c.Slug, c.Description, c.Icon, c.AccentColor); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
