// Package models defines the content documents shared by the server, the
// client and the importer. The JSON shape is the wire format of the
// campaign listing endpoint.
package models

import "github.com/dmitrijs2005/gophfund/internal/common"

// Urgency is an editorial tag that influences sort priority.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyNormal   Urgency = "normal"
)

// Weight ranks urgencies for sorting: critical > high > everything else.
func (u Urgency) Weight() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyHigh:
		return 2
	default:
		return 1
	}
}

// CampaignStatus mirrors the CMS status list.
type CampaignStatus string

const (
	StatusActive    CampaignStatus = "active"
	StatusCompleted CampaignStatus = "completed"
	StatusPaused    CampaignStatus = "paused"
)

// CategoryRef is the part of a category embedded in a campaign.
type CategoryRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Slug  string `json:"slug"`
}

// Organizer is the person behind a campaign.
type Organizer struct {
	FullName           string `json:"fullName,omitempty"`
	VerificationStatus string `json:"verificationStatus,omitempty"`
	City               string `json:"city,omitempty"`
	Country            string `json:"country,omitempty"`
}

// CampaignSummary is the read-only projection used by listings, sorting and
// progress display. Timestamps are ISO-8601 strings; an empty string means
// the value is absent.
type CampaignSummary struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	ShortDescription string         `json:"shortDescription,omitempty"`
	BeneficiaryName  string         `json:"beneficiaryName,omitempty"`
	AmountRaised     float64        `json:"amountRaised"`
	Goal             float64        `json:"goal"`
	DonorCount       int            `json:"donorCount"`
	Currency         string         `json:"currency,omitempty"`
	Status           CampaignStatus `json:"status,omitempty"`
	Urgency          Urgency        `json:"urgency,omitempty"`
	CreatedAt        string         `json:"createdAt,omitempty"`
	Deadline         string         `json:"deadline,omitempty"`
	Location         string         `json:"location,omitempty"`
	IsFeatured       bool           `json:"isFeatured,omitempty"`
	CoverImageKey    string         `json:"-"`
	CoverImageURL    string         `json:"coverImageUrl,omitempty"`
	Category         *CategoryRef   `json:"category,omitempty"`
	Organizer        *Organizer     `json:"organizer,omitempty"`
}

// CategorySlug returns the slug of the campaign category or "".
func (c CampaignSummary) CategorySlug() string {
	if c.Category == nil {
		return ""
	}
	return c.Category.Slug
}

// DisplayTitle falls back to a placeholder for untitled campaigns.
func (c CampaignSummary) DisplayTitle() string {
	if c.Title == "" {
		return common.UntitledCampaign
	}
	return c.Title
}

// CampaignUpdate is a dated news item attached to a campaign.
type CampaignUpdate struct {
	Title       string `json:"title" yaml:"title"`
	Body        string `json:"body,omitempty" yaml:"body"`
	PublishedAt string `json:"publishedAt,omitempty" yaml:"publishedAt"`
}

// CampaignDetail is the full campaign document served on the detail route.
type CampaignDetail struct {
	CampaignSummary
	Story   string           `json:"story,omitempty"`
	Tags    []string         `json:"tags,omitempty"`
	Updates []CampaignUpdate `json:"updates,omitempty"`
}
