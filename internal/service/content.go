package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rcmunich/robert-chang-portfolio/internal/dto"
	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
)

// ContentService serves the portfolio content. Reads fall back to the
// built-in defaults while the store holds nothing for a content type.
type ContentService struct {
	profiles     repository.ProfileRepository
	experiences  repository.ExperiencesRepository
	testimonials repository.TestimonialsRepository
	expertise    repository.ExpertiseRepository
	now          func() time.Time
}

// NewContentService builds a ContentService.
func NewContentService(
	profiles repository.ProfileRepository,
	experiences repository.ExperiencesRepository,
	testimonials repository.TestimonialsRepository,
	expertise repository.ExpertiseRepository,
) *ContentService {
	return &ContentService{
		profiles:     profiles,
		experiences:  experiences,
		testimonials: testimonials,
		expertise:    expertise,
		now:          time.Now,
	}
}

// Profile returns the stored profile or the default one. The default is
// never written back.
func (s *ContentService) Profile(ctx context.Context) (*entity.ProfileData, error) {
	profile, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		fallback := DefaultProfile()
		return &fallback, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile replaces the singleton profile.
func (s *ContentService) UpdateProfile(ctx context.Context, req dto.ProfileRequest) (*entity.ProfileData, error) {
	req.Personal = trimPersonal(req.Personal)
	if err := validateProfile(req); err != nil {
		return nil, err
	}

	profile := &entity.ProfileData{
		Personal:  req.Personal,
		UpdatedAt: s.now().UTC(),
	}
	if profile.Personal.Languages == nil {
		profile.Personal.Languages = []string{}
	}
	if profile.Personal.Specialties == nil {
		profile.Personal.Specialties = []string{}
	}
	if err := s.profiles.Replace(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Experiences lists active entries by ascending order, or the defaults when
// none are active.
func (s *ContentService) Experiences(ctx context.Context) ([]entity.Experience, error) {
	experiences, err := s.experiences.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(experiences) == 0 {
		return DefaultExperiences(), nil
	}
	return experiences, nil
}

// Experience looks an entry up directly. Archived entries are returned too.
func (s *ContentService) Experience(ctx context.Context, id string) (*entity.Experience, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return s.experiences.FindByID(ctx, id)
}

// CreateExperience stores a new entry. Entries are active unless the request
// says otherwise.
func (s *ContentService) CreateExperience(ctx context.Context, req dto.ExperienceRequest) (*entity.Experience, error) {
	experience, err := experienceFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.experiences.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// UpdateExperience overwrites every mutable field of an existing entry.
// Writing identical values succeeds and returns the stored entry.
func (s *ContentService) UpdateExperience(ctx context.Context, id string, req dto.ExperienceRequest) (*entity.Experience, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	experience, err := experienceFromRequest(req)
	if err != nil {
		return nil, err
	}
	experience.ID = id
	if err := s.experiences.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// ArchiveExperience hides an entry from listings. It reports whether an
// active entry was changed.
func (s *ContentService) ArchiveExperience(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	return s.experiences.Archive(ctx, id)
}

// Testimonials lists active quotes by ascending order, or the defaults when
// none are active.
func (s *ContentService) Testimonials(ctx context.Context) ([]entity.Testimonial, error) {
	testimonials, err := s.testimonials.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(testimonials) == 0 {
		return DefaultTestimonials(), nil
	}
	return testimonials, nil
}

// Testimonial looks a quote up directly. Archived quotes are returned too.
func (s *ContentService) Testimonial(ctx context.Context, id string) (*entity.Testimonial, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return s.testimonials.FindByID(ctx, id)
}

// CreateTestimonial stores a new quote.
func (s *ContentService) CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*entity.Testimonial, error) {
	testimonial, err := testimonialFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// UpdateTestimonial overwrites every mutable field of an existing quote.
func (s *ContentService) UpdateTestimonial(ctx context.Context, id string, req dto.TestimonialRequest) (*entity.Testimonial, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	testimonial, err := testimonialFromRequest(req)
	if err != nil {
		return nil, err
	}
	testimonial.ID = id
	if err := s.testimonials.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// ArchiveTestimonial hides a quote from listings.
func (s *ContentService) ArchiveTestimonial(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	return s.testimonials.Archive(ctx, id)
}

// Expertise returns the stored showcase or the default one.
func (s *ContentService) Expertise(ctx context.Context) (*entity.Expertise, error) {
	expertise, err := s.expertise.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		fallback := DefaultExpertise()
		return &fallback, nil
	}
	if err != nil {
		return nil, err
	}
	return expertise, nil
}

// UpdateExpertise replaces the singleton showcase.
func (s *ContentService) UpdateExpertise(ctx context.Context, req dto.ExpertiseRequest) (*entity.Expertise, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Subtitle = strings.TrimSpace(req.Subtitle)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateExpertise(req); err != nil {
		return nil, err
	}

	expertise := &entity.Expertise{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		Achievements: nonNil(req.Achievements),
		Metrics:      req.Metrics,
		UpdatedAt:    s.now().UTC(),
	}
	if expertise.Metrics == nil {
		expertise.Metrics = []entity.ExpertiseMetric{}
	}
	if err := s.expertise.Replace(ctx, expertise); err != nil {
		return nil, err
	}
	return expertise, nil
}

func experienceFromRequest(req dto.ExperienceRequest) (*entity.Experience, error) {
	req.Company = strings.TrimSpace(req.Company)
	req.Position = strings.TrimSpace(req.Position)
	req.Duration = strings.TrimSpace(req.Duration)
	req.Description = strings.TrimSpace(req.Description)
	if req.Location != nil {
		trimmed := strings.TrimSpace(*req.Location)
		req.Location = &trimmed
		if trimmed == "" {
			req.Location = nil
		}
	}
	if err := validateExperience(req); err != nil {
		return nil, err
	}

	return &entity.Experience{
		Company:      req.Company,
		Position:     req.Position,
		Duration:     req.Duration,
		Location:     req.Location,
		Description:  req.Description,
		Achievements: nonNil(req.Achievements),
		Order:        req.Order,
		Lifecycle:    lifecycleOrActive(req.IsActive),
	}, nil
}

func testimonialFromRequest(req dto.TestimonialRequest) (*entity.Testimonial, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Avatar != nil {
		trimmed := strings.TrimSpace(*req.Avatar)
		req.Avatar = &trimmed
		if trimmed == "" {
			req.Avatar = nil
		}
	}
	if err := validateTestimonial(req); err != nil {
		return nil, err
	}

	return &entity.Testimonial{
		Name:      req.Name,
		Title:     req.Title,
		Content:   req.Content,
		Avatar:    req.Avatar,
		Order:     req.Order,
		Lifecycle: lifecycleOrActive(req.IsActive),
	}, nil
}

func trimPersonal(p entity.PersonalInfo) entity.PersonalInfo {
	p.Name = strings.TrimSpace(p.Name)
	p.Title = strings.TrimSpace(p.Title)
	p.Company = strings.TrimSpace(p.Company)
	p.Location = strings.TrimSpace(p.Location)
	p.Summary = strings.TrimSpace(p.Summary)
	return p
}

func lifecycleOrActive(active *bool) entity.Lifecycle {
	if active == nil {
		return entity.LifecycleActive
	}
	return entity.LifecycleFromActive(*active)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// validID rejects identifiers the store could never have issued.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
