package models

// Doctor is a medical professional profile.
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	CurrentTitle string   `json:"currentTitle"`
	Affiliation  string   `json:"affiliation,omitempty"`
	Location     string   `json:"location,omitempty"`
	Experience   string   `json:"experience,omitempty"`
	Specialities []string `json:"specialities,omitempty"`
	AvatarKey    string   `json:"-"`
}

// Hospital is a medical institution profile.
type Hospital struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Specialty     string   `json:"specialty"`
	Location      string   `json:"location,omitempty"`
	Accreditation string   `json:"accreditation,omitempty"`
	Departments   []string `json:"departments,omitempty"`
	AvatarKey     string   `json:"-"`
}
