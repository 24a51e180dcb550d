package profiles

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophfund/internal/dbx"
	"github.com/dmitrijs2005/gophfund/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListDoctors returns up to limit doctors ordered by name.
func (r *PostgresRepository) ListDoctors(ctx context.Context, limit int) ([]models.Doctor, error) {
	query := `SELECT id, name, slug, current_title, affiliation, location, experience, specialities, avatar_key
		FROM doctors ORDER BY name, id LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select doctors: %w", err)
	}
	defer rows.Close()

	result := []models.Doctor{}
	for rows.Next() {
		var (
			d    models.Doctor
			spec []byte
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.Slug, &d.CurrentTitle, &d.Affiliation, &d.Location, &d.Experience, &spec, &d.AvatarKey); err != nil {
			return nil, err
		}
		if err := unmarshalList(spec, &d.Specialities); err != nil {
			return nil, fmt.Errorf("decode specialities: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListHospitals returns up to limit hospitals ordered by name.
func (r *PostgresRepository) ListHospitals(ctx context.Context, limit int) ([]models.Hospital, error) {
	query := `SELECT id, name, slug, specialty, location, accreditation, departments, avatar_key
		FROM hospitals ORDER BY name, id LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select hospitals: %w", err)
	}
	defer rows.Close()

	result := []models.Hospital{}
	for rows.Next() {
		var (
			h     models.Hospital
			depts []byte
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.Slug, &h.Specialty, &h.Location, &h.Accreditation, &depts, &h.AvatarKey); err != nil {
			return nil, err
		}
		if err := unmarshalList(depts, &h.Departments); err != nil {
			return nil, fmt.Errorf("decode departments: %w", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpsertDoctor(ctx context.Context, d *models.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, slug, current_title, affiliation, location, experience, specialities, avatar_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			current_title = EXCLUDED.current_title,
			affiliation = EXCLUDED.affiliation,
			location = EXCLUDED.location,
			experience = EXCLUDED.experience,
			specialities = EXCLUDED.specialities,
			avatar_key = EXCLUDED.avatar_key
	`
	spec, err := marshalList(d.Specialities)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query,
		d.ID, d.Name, d.Slug, d.CurrentTitle, d.Affiliation, d.Location, d.Experience, spec, d.AvatarKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpsertHospital(ctx context.Context, h *models.Hospital) error {
	query := `
		INSERT INTO hospitals (id, name, slug, specialty, location, accreditation, departments, avatar_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			specialty = EXCLUDED.specialty,
			location = EXCLUDED.location,
			accreditation = EXCLUDED.accreditation,
			departments = EXCLUDED.departments,
			avatar_key = EXCLUDED.avatar_key
	`
	depts, err := marshalList(h.Departments)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query,
		h.ID, h.Name, h.Slug, h.Specialty, h.Location, h.Accreditation, depts, h.AvatarKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func marshalList(s []string) ([]byte, error) {
	if s == nil {
		s = []string{}
	}
	return json.Marshal(s)
}

func unmarshalList(data []byte, dst *[]string) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
