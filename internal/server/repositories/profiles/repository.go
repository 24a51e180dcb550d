// Package profiles stores doctor and hospital profiles shown as cards next
// to the campaigns.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

type Repository interface {
	ListDoctors(ctx context.Context, limit int) ([]models.Doctor, error)
	ListHospitals(ctx context.Context, limit int) ([]models.Hospital, error)
	UpsertDoctor(ctx context.Context, d *models.Doctor) error
	UpsertHospital(ctx context.Context, h *models.Hospital) error
}
