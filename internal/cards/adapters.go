package cards

import (
	"fmt"

	"github.com/dmitrijs2005/gophfund/internal/models"
)

// Doctor adapts models.Doctor. The badge is the experience line.
type Doctor models.Doctor

func (d Doctor) Kind() Kind              { return KindDoctor }
func (d Doctor) ProfileID() string       { return d.ID }
func (d Doctor) DisplayName() string     { return d.Name }
func (d Doctor) ProfileSlug() string     { return d.Slug }
func (d Doctor) Subtitle() string        { return d.CurrentTitle }
func (d Doctor) ProfileLocation() string { return d.Location }
func (d Doctor) Badge() string           { return d.Experience }
func (d Doctor) ImageKey() string        { return d.AvatarKey }

// Hospital adapts models.Hospital. The badge is the accreditation.
type Hospital models.Hospital

func (h Hospital) Kind() Kind              { return KindHospital }
func (h Hospital) ProfileID() string       { return h.ID }
func (h Hospital) DisplayName() string     { return h.Name }
func (h Hospital) ProfileSlug() string     { return h.Slug }
func (h Hospital) Subtitle() string        { return h.Specialty }
func (h Hospital) ProfileLocation() string { return h.Location }
func (h Hospital) Badge() string           { return h.Accreditation }
func (h Hospital) ImageKey() string        { return h.AvatarKey }

// Campaign adapts models.CampaignSummary. It shows funding progress and
// the donor count as its badge.
type Campaign models.CampaignSummary

func (c Campaign) Kind() Kind          { return KindCampaign }
func (c Campaign) ProfileID() string   { return c.ID }
func (c Campaign) DisplayName() string { return models.CampaignSummary(c).DisplayTitle() }
func (c Campaign) ProfileSlug() string { return c.Slug }
func (c Campaign) ImageKey() string    { return c.CoverImageKey }

func (c Campaign) Progress() (float64, float64, string) {
	return c.AmountRaised, c.Goal, c.Currency
}

func (c Campaign) Badge() string {
	switch c.DonorCount {
	case 0:
		return ""
	case 1:
		return "1 donor"
	default:
		return fmt.Sprintf("%d donors", c.DonorCount)
	}
}

// Patient presents the beneficiary of a campaign. The subtitle is the
// campaign description, which carries the condition being treated.
type Patient models.CampaignSummary

func (p Patient) Kind() Kind              { return KindPatient }
func (p Patient) ProfileID() string       { return p.ID }
func (p Patient) ProfileSlug() string     { return p.Slug }
func (p Patient) Subtitle() string        { return p.ShortDescription }
func (p Patient) ProfileLocation() string { return p.Location }
func (p Patient) ImageKey() string        { return p.CoverImageKey }

func (p Patient) DisplayName() string {
	if p.BeneficiaryName != "" {
		return p.BeneficiaryName
	}
	return models.CampaignSummary(p).DisplayTitle()
}

// Convert maps a slice of documents to their card adapters.
func Convert[T any, P Profile](in []T, conv func(T) P) []P {
	out := make([]P, 0, len(in))
	for _, v := range in {
		out = append(out, conv(v))
	}
	return out
}
