package metadata

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfund/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (Preferences, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM metadata`)
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	defer rows.Close()

	var p Preferences
	fields := p.fields()
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return Preferences{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		if dst, ok := fields[key]; ok {
			*dst = string(value)
		}
	}

	if err := rows.Err(); err != nil {
		return Preferences{}, fmt.Errorf("failed to iterate metadata rows: %w", err)
	}

	return p, nil
}

// Save writes every field of p; empty fields remove their key.
func (r *SQLiteRepository) Save(ctx context.Context, p Preferences) error {
	for key, value := range p.fields() {
		if err := r.set(ctx, key, *value); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	if value == "" {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
		}
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (p *Preferences) fields() map[string]*string {
	return map[string]*string{
		keyFilter:   &p.Filter,
		keyCategory: &p.Category,
		keySearch:   &p.Search,
		keySort:     &p.Sort,
		keyLastSync: &p.LastSync,
	}
}
