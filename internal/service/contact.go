package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rcmunich/robert-chang-portfolio/internal/dto"
	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
)

// Limiter admits or denies a request for an identifier. Denied calls report
// how long the caller should wait.
type Limiter interface {
	Take(identifier string) (bool, time.Duration)
}

// unknownClient keys submissions whose origin address could not be resolved.
const unknownClient = "unknown"

// ContactService records contact form submissions.
type ContactService struct {
	repo    repository.ContactSubmissionsRepository
	limiter Limiter
	now     func() time.Time
}

// NewContactService builds a ContactService.
func NewContactService(repo repository.ContactSubmissionsRepository, limiter Limiter) *ContactService {
	return &ContactService{repo: repo, limiter: limiter, now: time.Now}
}

// Submit validates the form, applies the per-client limit and stores the
// submission. Invalid forms never consume quota.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactSubmissionRequest, clientIP, userAgent string) (string, error) {
	req, err := normalizeContact(req)
	if err != nil {
		return "", err
	}

	clientIP = strings.TrimSpace(clientIP)
	identifier := clientIP
	if identifier == "" {
		identifier = unknownClient
	}
	if ok, retry := s.limiter.Take(identifier); !ok {
		return "", &RateLimitError{RetryAfter: retry}
	}

	submission := &entity.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		InquiryType: entity.InquiryType(req.InquiryType),
		SubmittedAt: s.now().UTC(),
		Status:      entity.StatusNew,
		IPAddress:   optional(clientIP),
		UserAgent:   optional(userAgent),
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return "", err
	}
	return submission.ID, nil
}

// List returns every submission, newest first. An empty store yields an
// empty slice.
func (s *ContactService) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves a submission to status. It reports whether a
// submission was changed.
func (s *ContactService) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	next := entity.SubmissionStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.Valid() {
		return false, ValidationError{Field: "status", Message: "must be one of new, read, responded"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	return s.repo.UpdateStatus(ctx, id, next)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
