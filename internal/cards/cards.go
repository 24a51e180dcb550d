// Package cards renders doctors, hospitals, patients and campaigns as one
// uniform profile card. Each profile kind opts into the optional parts of a
// card (subtitle, location, badge, funding progress) by implementing the
// matching capability interface.
package cards

import (
	"fmt"

	"github.com/dmitrijs2005/gophfund/internal/progress"
)

// Kind tags the profile a card was rendered from.
type Kind string

const (
	KindDoctor   Kind = "doctor"
	KindHospital Kind = "hospital"
	KindPatient  Kind = "patient"
	KindCampaign Kind = "campaign"
)

// ParseKind returns the kind named by s.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindDoctor, KindHospital, KindPatient, KindCampaign:
		return k, true
	}
	return "", false
}

// Emoji is the placeholder shown when a profile has no image.
func (k Kind) Emoji() string {
	switch k {
	case KindDoctor:
		return "👨‍⚕️"
	case KindHospital:
		return "🏥"
	case KindPatient:
		return "💚"
	default:
		return "📷"
	}
}

// BaseURL is the site section the profile pages live under.
func (k Kind) BaseURL() string {
	switch k {
	case KindDoctor:
		return "/doctors"
	case KindHospital:
		return "/hospitals"
	case KindPatient:
		return "/patients"
	default:
		return "/campaigns"
	}
}

// Profile is the part every card source provides.
type Profile interface {
	Kind() Kind
	ProfileID() string
	DisplayName() string
	ProfileSlug() string
}

// Subtitled profiles show a line under the name.
type Subtitled interface {
	Subtitle() string
}

// Locatable profiles show where they are.
type Locatable interface {
	ProfileLocation() string
}

// Badged profiles show a short highlight over the image.
type Badged interface {
	Badge() string
}

// ProgressProvider profiles show a funding bar instead of the subtitle.
type ProgressProvider interface {
	Progress() (raised, goal float64, currency string)
}

// Imaged profiles carry an object-storage key for their picture.
type Imaged interface {
	ImageKey() string
}

// Card is the rendered, display-ready form of a profile.
type Card struct {
	Kind            Kind   `json:"kind"`
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Href            string `json:"href"`
	Emoji           string `json:"emoji"`
	Subtitle        string `json:"subtitle,omitempty"`
	Location        string `json:"location,omitempty"`
	Badge           string `json:"badge,omitempty"`
	ProgressPercent *int   `json:"progressPercent,omitempty"`
	Raised          string `json:"raised,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
	ImageKey        string `json:"-"`
}

// Render builds the card for p. Funding progress replaces the subtitle, and
// the location is only shown for profiles without funding progress.
func Render(p Profile, f *progress.Formatter) Card {
	c := Card{
		Kind:  p.Kind(),
		ID:    p.ProfileID(),
		Name:  p.DisplayName(),
		Slug:  p.ProfileSlug(),
		Href:  fmt.Sprintf("%s/%s", p.Kind().BaseURL(), p.ProfileSlug()),
		Emoji: p.Kind().Emoji(),
	}

	if b, ok := p.(Badged); ok {
		c.Badge = b.Badge()
	}
	if im, ok := p.(Imaged); ok {
		c.ImageKey = im.ImageKey()
	}

	if pp, ok := p.(ProgressProvider); ok {
		raised, goal, code := pp.Progress()
		percent := progress.Percentage(raised, goal)
		c.ProgressPercent = &percent
		c.Raised = f.FormatOrPlain(raised, code)
		return c
	}

	if s, ok := p.(Subtitled); ok {
		c.Subtitle = s.Subtitle()
	}
	if l, ok := p.(Locatable); ok {
		c.Location = l.ProfileLocation()
	}
	return c
}

// RenderAll renders every profile in order.
func RenderAll[P Profile](ps []P, f *progress.Formatter) []Card {
	out := make([]Card, 0, len(ps))
	for _, p := range ps {
		out = append(out, Render(p, f))
	}
	return out
}
