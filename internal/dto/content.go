package dto

import "github.com/rcmunich/robert-chang-portfolio/internal/entity"

// ExperienceRequest creates or fully replaces an experience entry.
type ExperienceRequest struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Location     *string  `json:"location,omitempty"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Order        int      `json:"order"`
	IsActive     *bool    `json:"isActive,omitempty"`
}

// TestimonialRequest creates or fully replaces a testimonial.
type TestimonialRequest struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Avatar   *string `json:"avatar,omitempty"`
	Order    int     `json:"order"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ProfileRequest replaces the singleton profile.
type ProfileRequest struct {
	Personal entity.PersonalInfo `json:"personal"`
}

// ExpertiseRequest replaces the singleton expertise showcase.
type ExpertiseRequest struct {
	Title        string                   `json:"title"`
	Subtitle     string                   `json:"subtitle"`
	Description  string                   `json:"description"`
	Achievements []string                 `json:"achievements"`
	Metrics      []entity.ExpertiseMetric `json:"metrics"`
}
