package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type contactRepoForHandler struct {
	create       func(ctx context.Context, submission *entity.ContactSubmission) error
	list         func(ctx context.Context) ([]entity.ContactSubmission, error)
	updateStatus func(ctx context.Context, id string, status entity.SubmissionStatus) (bool, error)
}

func (r *contactRepoForHandler) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	if r.create != nil {
		return r.create(ctx, submission)
	}
	return errors.New("not implemented")
}

func (r *contactRepoForHandler) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	if r.list != nil {
		return r.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (r *contactRepoForHandler) UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) (bool, error) {
	if r.updateStatus != nil {
		return r.updateStatus(ctx, id, status)
	}
	return false, errors.New("not implemented")
}

type limiterForHandler func(string) (bool, time.Duration)

func (f limiterForHandler) Take(id string) (bool, time.Duration) { return f(id) }

type profileRepoForHandler struct {
	get     func(ctx context.Context) (*entity.ProfileData, error)
	replace func(ctx context.Context, profile *entity.ProfileData) error
}

func (r *profileRepoForHandler) Get(ctx context.Context) (*entity.ProfileData, error) {
	if r.get != nil {
		return r.get(ctx)
	}
	return nil, repository.ErrNotFound
}

func (r *profileRepoForHandler) Replace(ctx context.Context, profile *entity.ProfileData) error {
	if r.replace != nil {
		return r.replace(ctx, profile)
	}
	return errors.New("not implemented")
}

type expertiseRepoForHandler struct {
	get     func(ctx context.Context) (*entity.Expertise, error)
	replace func(ctx context.Context, expertise *entity.Expertise) error
}

func (r *expertiseRepoForHandler) Get(ctx context.Context) (*entity.Expertise, error) {
	if r.get != nil {
		return r.get(ctx)
	}
	return nil, repository.ErrNotFound
}

func (r *expertiseRepoForHandler) Replace(ctx context.Context, expertise *entity.Expertise) error {
	if r.replace != nil {
		return r.replace(ctx, expertise)
	}
	return errors.New("not implemented")
}

type experiencesRepoForHandler struct {
	listActive func(ctx context.Context) ([]entity.Experience, error)
	findByID   func(ctx context.Context, id string) (*entity.Experience, error)
	create     func(ctx context.Context, experience *entity.Experience) error
	update     func(ctx context.Context, experience *entity.Experience) error
	archive    func(ctx context.Context, id string) (bool, error)
}

func (r *experiencesRepoForHandler) ListActive(ctx context.Context) ([]entity.Experience, error) {
	if r.listActive != nil {
		return r.listActive(ctx)
	}
	return nil, nil
}

func (r *experiencesRepoForHandler) FindByID(ctx context.Context, id string) (*entity.Experience, error) {
	if r.findByID != nil {
		return r.findByID(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (r *experiencesRepoForHandler) Create(ctx context.Context, experience *entity.Experience) error {
	if r.create != nil {
		return r.create(ctx, experience)
	}
	return errors.New("not implemented")
}

func (r *experiencesRepoForHandler) Update(ctx context.Context, experience *entity.Experience) error {
	if r.update != nil {
		return r.update(ctx, experience)
	}
	return errors.New("not implemented")
}

func (r *experiencesRepoForHandler) Archive(ctx context.Context, id string) (bool, error) {
	if r.archive != nil {
		return r.archive(ctx, id)
	}
	return false, nil
}

type testimonialsRepoForHandler struct {
	listActive func(ctx context.Context) ([]entity.Testimonial, error)
	archive    func(ctx context.Context, id string) (bool, error)
}

func (r *testimonialsRepoForHandler) ListActive(ctx context.Context) ([]entity.Testimonial, error) {
	if r.listActive != nil {
		return r.listActive(ctx)
	}
	return nil, nil
}

func (r *testimonialsRepoForHandler) FindByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	return nil, repository.ErrNotFound
}

func (r *testimonialsRepoForHandler) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonial.ID = "cccccccc-cccc-cccc-cccc-cccccccccccc"
	return nil
}

func (r *testimonialsRepoForHandler) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	return repository.ErrNotFound
}

func (r *testimonialsRepoForHandler) Archive(ctx context.Context, id string) (bool, error) {
	if r.archive != nil {
		return r.archive(ctx, id)
	}
	return false, nil
}

type contentRepos struct {
	profile      *profileRepoForHandler
	experiences  *experiencesRepoForHandler
	testimonials *testimonialsRepoForHandler
	expertise    *expertiseRepoForHandler
}

func newContentHandler(repos contentRepos) *ContentHandler {
	if repos.profile == nil {
		repos.profile = &profileRepoForHandler{}
	}
	if repos.experiences == nil {
		repos.experiences = &experiencesRepoForHandler{}
	}
	if repos.testimonials == nil {
		repos.testimonials = &testimonialsRepoForHandler{}
	}
	if repos.expertise == nil {
		repos.expertise = &expertiseRepoForHandler{}
	}
	content := service.NewContentService(repos.profile, repos.experiences, repos.testimonials, repos.expertise)
	return NewContentHandler(content, discardLogger())
}
