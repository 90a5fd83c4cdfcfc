package service

import (
	"context"
	"errors"
	"time"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
)

type mockProfileRepository struct {
	get     func(ctx context.Context) (*entity.ProfileData, error)
	replace func(ctx context.Context, profile *entity.ProfileData) error
}

func (m *mockProfileRepository) Get(ctx context.Context) (*entity.ProfileData, error) {
	if m.get != nil {
		return m.get(ctx)
	}
	return nil, errors.New("get not implemented")
}

func (m *mockProfileRepository) Replace(ctx context.Context, profile *entity.ProfileData) error {
	if m.replace != nil {
		return m.replace(ctx, profile)
	}
	return errors.New("replace not implemented")
}

type mockExpertiseRepository struct {
	get     func(ctx context.Context) (*entity.Expertise, error)
	replace func(ctx context.Context, expertise *entity.Expertise) error
}

func (m *mockExpertiseRepository) Get(ctx context.Context) (*entity.Expertise, error) {
	if m.get != nil {
		return m.get(ctx)
	}
	return nil, errors.New("get not implemented")
}

func (m *mockExpertiseRepository) Replace(ctx context.Context, expertise *entity.Expertise) error {
	if m.replace != nil {
		return m.replace(ctx, expertise)
	}
	return errors.New("replace not implemented")
}

type mockExperiencesRepository struct {
	listActive func(ctx context.Context) ([]entity.Experience, error)
	findByID   func(ctx context.Context, id string) (*entity.Experience, error)
	create     func(ctx context.Context, experience *entity.Experience) error
	update     func(ctx context.Context, experience *entity.Experience) error
	archive    func(ctx context.Context, id string) (bool, error)
}

func (m *mockExperiencesRepository) ListActive(ctx context.Context) ([]entity.Experience, error) {
	if m.listActive != nil {
		return m.listActive(ctx)
	}
	return nil, errors.New("listActive not implemented")
}

func (m *mockExperiencesRepository) FindByID(ctx context.Context, id string) (*entity.Experience, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("findByID not implemented")
}

func (m *mockExperiencesRepository) Create(ctx context.Context, experience *entity.Experience) error {
	if m.create != nil {
		return m.create(ctx, experience)
	}
	return errors.New("create not implemented")
}

func (m *mockExperiencesRepository) Update(ctx context.Context, experience *entity.Experience) error {
	if m.update != nil {
		return m.update(ctx, experience)
	}
	return errors.New("update not implemented")
}

func (m *mockExperiencesRepository) Archive(ctx context.Context, id string) (bool, error) {
	if m.archive != nil {
		return m.archive(ctx, id)
	}
	return false, errors.New("archive not implemented")
}

type mockTestimonialsRepository struct {
	listActive func(ctx context.Context) ([]entity.Testimonial, error)
	findByID   func(ctx context.Context, id string) (*entity.Testimonial, error)
	create     func(ctx context.Context, testimonial *entity.Testimonial) error
	update     func(ctx context.Context, testimonial *entity.Testimonial) error
	archive    func(ctx context.Context, id string) (bool, error)
}

func (m *mockTestimonialsRepository) ListActive(ctx context.Context) ([]entity.Testimonial, error) {
	if m.listActive != nil {
		return m.listActive(ctx)
	}
	return nil, errors.New("listActive not implemented")
}

func (m *mockTestimonialsRepository) FindByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("findByID not implemented")
}

func (m *mockTestimonialsRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	if m.create != nil {
		return m.create(ctx, testimonial)
	}
	return errors.New("create not implemented")
}

func (m *mockTestimonialsRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	if m.update != nil {
		return m.update(ctx, testimonial)
	}
	return errors.New("update not implemented")
}

func (m *mockTestimonialsRepository) Archive(ctx context.Context, id string) (bool, error) {
	if m.archive != nil {
		return m.archive(ctx, id)
	}
	return false, errors.New("archive not implemented")
}

type mockContactRepository struct {
	create       func(ctx context.Context, submission *entity.ContactSubmission) error
	list         func(ctx context.Context) ([]entity.ContactSubmission, error)
	updateStatus func(ctx context.Context, id string, status entity.SubmissionStatus) (bool, error)
}

func (m *mockContactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	if m.create != nil {
		return m.create(ctx, submission)
	}
	return errors.New("create not implemented")
}

func (m *mockContactRepository) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) (bool, error) {
	if m.updateStatus != nil {
		return m.updateStatus(ctx, id, status)
	}
	return false, errors.New("updateStatus not implemented")
}

type limiterFunc func(identifier string) (bool, time.Duration)

func (f limiterFunc) Take(identifier string) (bool, time.Duration) {
	return f(identifier)
}
