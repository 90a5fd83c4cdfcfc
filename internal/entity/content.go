package entity

import "time"

// PersonalInfo is the headline block of the profile.
type PersonalInfo struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Summary     string   `json:"summary"`
	Languages   []string `json:"languages"`
	Specialties []string `json:"specialties"`
}

// ProfileData is the singleton profile document.
type ProfileData struct {
	ID        string       `json:"id,omitempty"`
	Personal  PersonalInfo `json:"personal"`
	UpdatedAt time.Time    `json:"updatedAt,omitzero"`
}

// Experience is one entry of the work history.
type Experience struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Duration     string    `json:"duration"`
	Location     *string   `json:"location"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Order        int       `json:"order"`
	Lifecycle    Lifecycle `json:"isActive"`
}

// Testimonial is a quote from a colleague or partner.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Avatar    *string   `json:"avatar"`
	Order     int       `json:"order"`
	Lifecycle Lifecycle `json:"isActive"`
}

// ExpertiseMetric is a labelled headline figure.
type ExpertiseMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Expertise is the singleton truffle expertise showcase.
type Expertise struct {
	ID           string            `json:"id,omitempty"`
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle"`
	Description  string            `json:"description"`
	Achievements []string          `json:"achievements"`
	Metrics      []ExpertiseMetric `json:"metrics"`
	UpdatedAt    time.Time         `json:"updatedAt,omitzero"`
}
