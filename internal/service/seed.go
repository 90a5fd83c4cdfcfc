package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
)

// SeedReport summarises what Seed wrote.
type SeedReport struct {
	Profile      bool `json:"profile" yaml:"profile"`
	Expertise    bool `json:"expertise" yaml:"expertise"`
	Experiences  int  `json:"experiences" yaml:"experiences"`
	Testimonials int  `json:"testimonials" yaml:"testimonials"`
}

// Seeder copies the built-in content into the store so it can be edited.
type Seeder struct {
	profiles     repository.ProfileRepository
	experiences  repository.ExperiencesRepository
	testimonials repository.TestimonialsRepository
	expertise    repository.ExpertiseRepository
	now          func() time.Time
}

// NewSeeder builds a Seeder.
func NewSeeder(
	profiles repository.ProfileRepository,
	experiences repository.ExperiencesRepository,
	testimonials repository.TestimonialsRepository,
	expertise repository.ExpertiseRepository,
) *Seeder {
	return &Seeder{
		profiles:     profiles,
		experiences:  experiences,
		testimonials: testimonials,
		expertise:    expertise,
		now:          time.Now,
	}
}

// Seed writes the defaults for every content type that is still empty.
// With force it overwrites the singletons and appends the list defaults
// even when active entries exist.
func (s *Seeder) Seed(ctx context.Context, force bool) (SeedReport, error) {
	var report SeedReport
	stamp := s.now().UTC()

	if _, err := s.profiles.Get(ctx); force || isNotFound(err) {
		profile := DefaultProfile()
		profile.UpdatedAt = stamp
		if err := s.profiles.Replace(ctx, &profile); err != nil {
			return report, fmt.Errorf("seed profile: %w", err)
		}
		report.Profile = true
	} else if err != nil {
		return report, fmt.Errorf("seed profile: %w", err)
	}

	if _, err := s.expertise.Get(ctx); force || isNotFound(err) {
		expertise := DefaultExpertise()
		expertise.UpdatedAt = stamp
		if err := s.expertise.Replace(ctx, &expertise); err != nil {
			return report, fmt.Errorf("seed expertise: %w", err)
		}
		report.Expertise = true
	} else if err != nil {
		return report, fmt.Errorf("seed expertise: %w", err)
	}

	active, err := s.experiences.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("seed experiences: %w", err)
	}
	if force || len(active) == 0 {
		for _, experience := range DefaultExperiences() {
			experience.ID = ""
			if err := s.experiences.Create(ctx, &experience); err != nil {
				return report, fmt.Errorf("seed experiences: %w", err)
			}
			report.Experiences++
		}
	}

	quotes, err := s.testimonials.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("seed testimonials: %w", err)
	}
	if force || len(quotes) == 0 {
		for _, testimonial := range DefaultTestimonials() {
			testimonial.ID = ""
			if err := s.testimonials.Create(ctx, &testimonial); err != nil {
				return report, fmt.Errorf("seed testimonials: %w", err)
			}
			report.Testimonials++
		}
	}

	return report, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
