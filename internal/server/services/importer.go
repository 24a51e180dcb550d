package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/logging"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/campaigns"
	"github.com/dmitrijs2005/gophfund/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	maxSlugLength             = 96
	maxShortDescriptionLength = 200
)

var (
	allowedCurrencies = []string{"USD", "EUR", "GBP", "KGS"}
	allowedStatuses   = []models.CampaignStatus{models.StatusActive, models.StatusCompleted, models.StatusPaused}
	allowedUrgencies  = []models.Urgency{models.UrgencyCritical, models.UrgencyHigh, models.UrgencyNormal, ""}

	// idNamespace derives stable ids from slugs so re-imports update in place.
	idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://gophfund.dev/content"))
)

// ContentFile is the YAML document accepted by the importer.
type ContentFile struct {
	Categories []CategoryDoc `yaml:"categories"`
	Campaigns  []CampaignDoc `yaml:"campaigns"`
	Doctors    []DoctorDoc   `yaml:"doctors"`
	Hospitals  []HospitalDoc `yaml:"hospitals"`
}

type CategoryDoc struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

type OrganizerDoc struct {
	FullName           string `yaml:"fullName"`
	VerificationStatus string `yaml:"verificationStatus"`
	City               string `yaml:"city"`
	Country            string `yaml:"country"`
}

type CampaignDoc struct {
	ID               string                  `yaml:"id"`
	Title            string                  `yaml:"title"`
	Slug             string                  `yaml:"slug"`
	ShortDescription string                  `yaml:"shortDescription"`
	Beneficiary      string                  `yaml:"beneficiary"`
	Goal             float64                 `yaml:"goal"`
	Raised           float64                 `yaml:"raised"`
	DonorCount       int                     `yaml:"donorCount"`
	Currency         string                  `yaml:"currency"`
	Status           string                  `yaml:"status"`
	Urgency          string                  `yaml:"urgency"`
	IsUrgent         bool                    `yaml:"isUrgent"`
	IsFeatured       bool                    `yaml:"isFeatured"`
	Category         string                  `yaml:"category"`
	CreatedAt        string                  `yaml:"createdAt"`
	Deadline         string                  `yaml:"deadline"`
	Location         string                  `yaml:"location"`
	CoverImage       string                  `yaml:"coverImage"`
	Organizer        *OrganizerDoc           `yaml:"organizer"`
	Story            string                  `yaml:"story"`
	Tags             []string                `yaml:"tags"`
	Updates          []models.CampaignUpdate `yaml:"updates"`
}

type DoctorDoc struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Slug         string   `yaml:"slug"`
	CurrentTitle string   `yaml:"currentTitle"`
	Affiliation  string   `yaml:"affiliation"`
	Location     string   `yaml:"location"`
	Experience   string   `yaml:"experience"`
	Specialities []string `yaml:"specialities"`
	Avatar       string   `yaml:"avatar"`
}

type HospitalDoc struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Slug          string   `yaml:"slug"`
	Specialty     string   `yaml:"specialty"`
	Location      string   `yaml:"location"`
	Accreditation string   `yaml:"accreditation"`
	Departments   []string `yaml:"departments"`
	Avatar        string   `yaml:"avatar"`
}

// ImportSummary counts the documents written by one import.
type ImportSummary struct {
	Categories int
	Campaigns  int
	Doctors    int
	Hospitals  int
}

// ImportService loads content files into the store.
type ImportService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewImportService(repomanager repomanager.RepositoryManager, logger logging.Logger) *ImportService {
	return &ImportService{repomanager: repomanager, logger: logger}
}

// Decode parses a content file. Unknown keys are rejected.
func Decode(r io.Reader) (*ContentFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f ContentFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return &f, nil
}

// Import validates the content file read from r and writes it in one
// transaction. Every validation problem of the file is reported in the
// returned error, each wrapping common.ErrValidation; nothing is written
// unless the whole file is valid.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (ImportSummary, error) {
	f, err := Decode(r)
	if err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	err = s.repomanager.InTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {

		known, err := s.knownCategories(ctx, repos, f.Categories)
		if err != nil {
			return err
		}

		cats, catErrs := buildCategories(f.Categories)
		camps, campErrs := buildCampaigns(f.Campaigns, known)
		docs, docErrs := buildDoctors(f.Doctors)
		hosps, hospErrs := buildHospitals(f.Hospitals)
		if err := errors.Join(slices.Concat(catErrs, campErrs, docErrs, hospErrs)...); err != nil {
			return err
		}

		for i := range cats {
			if err := repos.Categories.Upsert(ctx, &cats[i]); err != nil {
				return fmt.Errorf("category %q: %w", cats[i].Slug, err)
			}
		}
		for i := range camps {
			if err := repos.Campaigns.Upsert(ctx, &camps[i]); err != nil {
				return fmt.Errorf("campaign %q: %w", camps[i].Slug, err)
			}
		}
		for i := range docs {
			if err := repos.Profiles.UpsertDoctor(ctx, &docs[i]); err != nil {
				return fmt.Errorf("doctor %q: %w", docs[i].Slug, err)
			}
		}
		for i := range hosps {
			if err := repos.Profiles.UpsertHospital(ctx, &hosps[i]); err != nil {
				return fmt.Errorf("hospital %q: %w", hosps[i].Slug, err)
			}
		}

		summary = ImportSummary{Categories: len(cats), Campaigns: len(camps), Doctors: len(docs), Hospitals: len(hosps)}
		return nil
	})
	if err != nil {
		return ImportSummary{}, err
	}

	s.logger.Info(ctx, "content imported",
		"categories", summary.Categories, "campaigns", summary.Campaigns,
		"doctors", summary.Doctors, "hospitals", summary.Hospitals)
	return summary, nil
}

// knownCategories maps every category slug a campaign may reference to its
// reference: those in the file and those already stored.
func (s *ImportService) knownCategories(ctx context.Context, repos repomanager.Repositories, docs []CategoryDoc) (map[string]*models.CategoryRef, error) {
	stored, err := repos.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]*models.CategoryRef, len(stored)+len(docs))
	for _, c := range stored {
		known[c.Slug] = c.Ref()
	}
	for _, d := range docs {
		if d.Slug != "" {
			known[d.Slug] = &models.CategoryRef{ID: stableID("category", d.ID, d.Slug), Title: d.Title, Slug: d.Slug}
		}
	}
	return known, nil
}

func stableID(kind, id, slug string) string {
	if id != "" {
		return id
	}
	return uuid.NewSHA1(idNamespace, []byte(kind+":"+slug)).String()
}

func invalid(where, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", common.ErrValidation, where, fmt.Sprintf(format, args...))
}

// slugTracker reports slugs used twice within one document kind.
type slugTracker map[string]struct{}

func (t slugTracker) check(where, slug string) error {
	if slug == "" {
		return nil
	}
	if _, dup := t[slug]; dup {
		return invalid(where, "duplicate slug %q", slug)
	}
	t[slug] = struct{}{}
	return nil
}

func checkSlug(where, slug string) []error {
	var errs []error
	if strings.TrimSpace(slug) == "" {
		errs = append(errs, invalid(where, "slug is required"))
	} else if utf8.RuneCountInString(slug) > maxSlugLength {
		errs = append(errs, invalid(where, "slug longer than %d characters", maxSlugLength))
	}
	return errs
}

func buildCategories(docs []CategoryDoc) ([]models.Category, []error) {
	var (
		out  []models.Category
		errs []error
	)
	seen := slugTracker{}
	for i, d := range docs {
		where := fmt.Sprintf("categories[%d]", i)
		var e []error
		if strings.TrimSpace(d.Title) == "" {
			e = append(e, invalid(where, "title is required"))
		}
		e = append(e, checkSlug(where, d.Slug)...)
		if err := seen.check(where, d.Slug); err != nil {
			e = append(e, err)
		}
		if len(e) > 0 {
			errs = append(errs, e...)
			continue
		}
		out = append(out, models.Category{
			ID:          stableID("category", d.ID, d.Slug),
			Title:       d.Title,
			Slug:        d.Slug,
			Description: d.Description,
			Icon:        d.Icon,
			AccentColor: d.Color,
		})
	}
	return out, errs
}

func buildCampaigns(docs []CampaignDoc, categories map[string]*models.CategoryRef) ([]models.CampaignDetail, []error) {
	var (
		out  []models.CampaignDetail
		errs []error
	)
	seen := slugTracker{}
	for i, d := range docs {
		where := fmt.Sprintf("campaigns[%d]", i)
		if d.Slug != "" {
			where = fmt.Sprintf("campaigns[%d] (%s)", i, d.Slug)
		}

		c, e := buildCampaign(where, d, categories)
		if err := seen.check(where, d.Slug); err != nil {
			e = append(e, err)
		}
		if len(e) > 0 {
			errs = append(errs, e...)
			continue
		}
		out = append(out, c)
	}
	return out, errs
}

func buildCampaign(where string, d CampaignDoc, categories map[string]*models.CategoryRef) (models.CampaignDetail, []error) {
	var errs []error

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, invalid(where, "title is required"))
	}
	errs = append(errs, checkSlug(where, d.Slug)...)
	if utf8.RuneCountInString(d.ShortDescription) > maxShortDescriptionLength {
		errs = append(errs, invalid(where, "short description longer than %d characters", maxShortDescriptionLength))
	}
	if !(d.Goal > 0) {
		errs = append(errs, invalid(where, "goal must be positive"))
	}
	if d.Raised < 0 {
		errs = append(errs, invalid(where, "raised must not be negative"))
	}
	if d.DonorCount < 0 {
		errs = append(errs, invalid(where, "donor count must not be negative"))
	}

	currency := strings.ToUpper(strings.TrimSpace(d.Currency))
	if currency == "" {
		currency = common.DefaultCurrency
	}
	if !slices.Contains(allowedCurrencies, currency) {
		errs = append(errs, invalid(where, "currency %q not in %v", d.Currency, allowedCurrencies))
	}

	status := models.CampaignStatus(strings.TrimSpace(d.Status))
	if status == "" {
		status = models.StatusActive
	}
	if !slices.Contains(allowedStatuses, status) {
		errs = append(errs, invalid(where, "status %q not in %v", d.Status, allowedStatuses))
	}

	urgency := models.Urgency(strings.TrimSpace(d.Urgency))
	if !slices.Contains(allowedUrgencies, urgency) {
		errs = append(errs, invalid(where, "urgency %q is unknown", d.Urgency))
	}
	if urgency == "" && d.IsUrgent {
		urgency = models.UrgencyHigh
	}

	var category *models.CategoryRef
	if d.Category != "" {
		if category = categories[d.Category]; category == nil {
			errs = append(errs, invalid(where, "unknown category %q", d.Category))
		}
	}

	for _, ts := range []struct{ name, value string }{{"createdAt", d.CreatedAt}, {"deadline", d.Deadline}} {
		if _, err := campaigns.ParseTime(ts.value); err != nil {
			errs = append(errs, invalid(where, "%s %q is not a date", ts.name, ts.value))
		}
	}

	var organizer *models.Organizer
	if d.Organizer != nil {
		organizer = &models.Organizer{
			FullName:           d.Organizer.FullName,
			VerificationStatus: d.Organizer.VerificationStatus,
			City:               d.Organizer.City,
			Country:            d.Organizer.Country,
		}
	}

	return models.CampaignDetail{
		CampaignSummary: models.CampaignSummary{
			ID:               stableID("campaign", d.ID, d.Slug),
			Title:            d.Title,
			Slug:             d.Slug,
			ShortDescription: d.ShortDescription,
			BeneficiaryName:  d.Beneficiary,
			AmountRaised:     d.Raised,
			Goal:             d.Goal,
			DonorCount:       d.DonorCount,
			Currency:         currency,
			Status:           status,
			Urgency:          urgency,
			CreatedAt:        d.CreatedAt,
			Deadline:         d.Deadline,
			Location:         d.Location,
			IsFeatured:       d.IsFeatured,
			CoverImageKey:    d.CoverImage,
			Category:         category,
			Organizer:        organizer,
		},
		Story:   d.Story,
		Tags:    d.Tags,
		Updates: d.Updates,
	}, errs
}

func buildDoctors(docs []DoctorDoc) ([]models.Doctor, []error) {
	var (
		out  []models.Doctor
		errs []error
	)
	seen := slugTracker{}
	for i, d := range docs {
		where := fmt.Sprintf("doctors[%d]", i)
		var e []error
		if strings.TrimSpace(d.Name) == "" {
			e = append(e, invalid(where, "name is required"))
		}
		e = append(e, checkSlug(where, d.Slug)...)
		if strings.TrimSpace(d.CurrentTitle) == "" {
			e = append(e, invalid(where, "current title is required"))
		}
		if err := seen.check(where, d.Slug); err != nil {
			e = append(e, err)
		}
		if len(e) > 0 {
			errs = append(errs, e...)
			continue
		}
		out = append(out, models.Doctor{
			ID:           stableID("doctor", d.ID, d.Slug),
			Name:         d.Name,
			Slug:         d.Slug,
			CurrentTitle: d.CurrentTitle,
			Affiliation:  d.Affiliation,
			Location:     d.Location,
			Experience:   d.Experience,
			Specialities: d.Specialities,
			AvatarKey:    d.Avatar,
		})
	}
	return out, errs
}

func buildHospitals(docs []HospitalDoc) ([]models.Hospital, []error) {
	var (
		out  []models.Hospital
		errs []error
	)
	seen := slugTracker{}
	for i, d := range docs {
		where := fmt.Sprintf("hospitals[%d]", i)
		var e []error
		if strings.TrimSpace(d.Name) == "" {
			e = append(e, invalid(where, "name is required"))
		}
		e = append(e, checkSlug(where, d.Slug)...)
		if strings.TrimSpace(d.Specialty) == "" {
			e = append(e, invalid(where, "specialty is required"))
		}
		if err := seen.check(where, d.Slug); err != nil {
			e = append(e, err)
		}
		if len(e) > 0 {
			errs = append(errs, e...)
			continue
		}
		out = append(out, models.Hospital{
			ID:            stableID("hospital", d.ID, d.Slug),
			Name:          d.Name,
			Slug:          d.Slug,
			Specialty:     d.Specialty,
			Location:      d.Location,
			Accreditation: d.Accreditation,
			Departments:   d.Departments,
			AvatarKey:     d.Avatar,
		})
	}
	return out, errs
}
