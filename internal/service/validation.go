package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/rcmunich/robert-chang-portfolio/internal/dto"
	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

// ValidationError reports a single field that violates its constraint.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

type fieldRule struct {
	field    string
	value    string
	min, max int
}

func checkLengths(rules ...fieldRule) error {
	for _, r := range rules {
		n := utf8.RuneCountInString(r.value)
		switch {
		case r.min > 0 && n == 0:
			return ValidationError{Field: r.field, Message: "is required"}
		case n < r.min:
			return ValidationError{Field: r.field, Message: fmt.Sprintf("must be at least %d characters", r.min)}
		case r.max > 0 && n > r.max:
			return ValidationError{Field: r.field, Message: fmt.Sprintf("must be at most %d characters", r.max)}
		}
	}
	return nil
}

// normalizeContact trims the payload and checks every constraint of a
// contact submission. The returned email has an ASCII, lower-cased domain.
func normalizeContact(req dto.ContactSubmissionRequest) (dto.ContactSubmissionRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	req.InquiryType = strings.TrimSpace(req.InquiryType)

	if err := checkLengths(
		fieldRule{"name", req.Name, 2, 100},
	); err != nil {
		return req, err
	}

	email, ok := normalizeEmail(req.Email)
	if !ok {
		return req, ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	req.Email = email

	if err := checkLengths(
		fieldRule{"subject", req.Subject, 5, 200},
		fieldRule{"message", req.Message, 10, 2000},
	); err != nil {
		return req, err
	}

	if !entity.InquiryType(req.InquiryType).Valid() {
		return req, ValidationError{Field: "inquiryType", Message: "must be one of " + joinInquiryTypes()}
	}
	return req, nil
}

// normalizeEmail checks the address syntax. Internationalised domains are
// converted to their ASCII form before matching.
func normalizeEmail(raw string) (string, bool) {
	at := strings.LastIndex(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return "", false
	}
	local, domain := raw[:at], strings.ToLower(raw[at+1:])
	if !isDomainValid(domain) {
		return "", false
	}
	asciiDomain, err := idnaProfile.ToASCII(domain)
	if err != nil || asciiDomain == "" {
		return "", false
	}
	email := local + "@" + asciiDomain
	if !emailPattern.MatchString(strings.ToLower(email)) {
		return "", false
	}
	return email, true
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

func joinInquiryTypes() string {
	names := make([]string, len(entity.InquiryTypes))
	for i, t := range entity.InquiryTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func validateExperience(req dto.ExperienceRequest) error {
	rules := []fieldRule{
		{"company", req.Company, 1, 200},
		{"position", req.Position, 1, 200},
		{"duration", req.Duration, 1, 100},
		{"description", req.Description, 1, 1000},
	}
	if req.Location != nil {
		rules = append(rules, fieldRule{"location", *req.Location, 0, 200})
	}
	return checkLengths(rules...)
}

func validateTestimonial(req dto.TestimonialRequest) error {
	if err := checkLengths(
		fieldRule{"name", req.Name, 1, 100},
		fieldRule{"title", req.Title, 1, 200},
		fieldRule{"content", req.Content, 10, 1000},
	); err != nil {
		return err
	}
	if req.Avatar != nil && *req.Avatar != "" {
		if err := checkLengths(fieldRule{"avatar", *req.Avatar, 0, 500}); err != nil {
			return err
		}
		if !isHTTPURL(*req.Avatar) {
			return ValidationError{Field: "avatar", Message: "must be an http(s) URL"}
		}
	}
	return nil
}

func validateProfile(req dto.ProfileRequest) error {
	p := req.Personal
	return checkLengths(
		fieldRule{"personal.name", p.Name, 1, 100},
		fieldRule{"personal.title", p.Title, 1, 200},
		fieldRule{"personal.company", p.Company, 1, 200},
		fieldRule{"personal.location", p.Location, 1, 200},
		fieldRule{"personal.summary", p.Summary, 1, 2000},
	)
}

func validateExpertise(req dto.ExpertiseRequest) error {
	if err := checkLengths(
		fieldRule{"title", req.Title, 1, 200},
		fieldRule{"subtitle", req.Subtitle, 1, 300},
		fieldRule{"description", req.Description, 1, 2000},
	); err != nil {
		return err
	}
	for i, m := range req.Metrics {
		if strings.TrimSpace(m.Label) == "" || strings.TrimSpace(m.Value) == "" {
			return ValidationError{Field: fmt.Sprintf("metrics[%d]", i), Message: "label and value are required"}
		}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
