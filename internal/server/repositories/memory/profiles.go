package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophfund/internal/listing"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/profiles"
)

// ProfileRepository implements profiles.Repository.
type ProfileRepository struct {
	s *Store
}

var _ profiles.Repository = (*ProfileRepository)(nil)

func (r *ProfileRepository) ListDoctors(ctx context.Context, limit int) ([]models.Doctor, error) {
	r.s.mu.RLock()
	out := make([]models.Doctor, 0, len(r.s.doctors))
	for _, d := range r.s.doctors {
		d.Specialities = slices.Clone(d.Specialities)
		out = append(out, d)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Doctor) int {
		if d := strings.Compare(a.Name, b.Name); d != 0 {
			return d
		}
		return strings.Compare(a.ID, b.ID)
	})
	return listing.Window(out, 0, limit), nil
}

func (r *ProfileRepository) ListHospitals(ctx context.Context, limit int) ([]models.Hospital, error) {
	r.s.mu.RLock()
	out := make([]models.Hospital, 0, len(r.s.hospitals))
	for _, h := range r.s.hospitals {
		h.Departments = slices.Clone(h.Departments)
		out = append(out, h)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Hospital) int {
		if d := strings.Compare(a.Name, b.Name); d != 0 {
			return d
		}
		return strings.Compare(a.ID, b.ID)
	})
	return listing.Window(out, 0, limit), nil
}

func (r *ProfileRepository) UpsertDoctor(ctx context.Context, d *models.Doctor) error {
	stored := *d
	stored.Specialities = slices.Clone(d.Specialities)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doctors[d.ID] = stored
	return nil
}

func (r *ProfileRepository) UpsertHospital(ctx context.Context, h *models.Hospital) error {
	stored := *h
	stored.Departments = slices.Clone(h.Departments)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.hospitals[h.ID] = stored
	return nil
}
