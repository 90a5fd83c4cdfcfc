package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rcmunich/robert-chang-portfolio/internal/dto"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

const (
	experienceNotFound  = "Experience not found"
	testimonialNotFound = "Testimonial not found"
)

// ContentHandler serves the portfolio content endpoints.
type ContentHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

// NewContentHandler constructs a handler instance.
func NewContentHandler(content *service.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{content: content, logger: logger}
}

// Profile returns the profile, falling back to the built-in one.
func (h *ContentHandler) Profile(c echo.Context) error {
	profile, err := h.content.Profile(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "get profile", "", err)
	}
	return Success(c, http.StatusOK, "Profile data retrieved successfully", profile)
}

// UpdateProfile replaces the profile.
func (h *ContentHandler) UpdateProfile(c echo.Context) error {
	var req dto.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}
	profile, err := h.content.UpdateProfile(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, "update profile", "", err)
	}
	return Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// Experiences lists active experience entries.
func (h *ContentHandler) Experiences(c echo.Context) error {
	experiences, err := h.content.Experiences(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "list experiences", "", err)
	}
	return Success(c, http.StatusOK, "Experience data retrieved successfully", experiences)
}

// Experience returns one entry, archived or not.
func (h *ContentHandler) Experience(c echo.Context) error {
	experience, err := h.content.Experience(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, "get experience", experienceNotFound, err)
	}
	return Success(c, http.StatusOK, "", experience)
}

// CreateExperience stores a new entry.
func (h *ContentHandler) CreateExperience(c echo.Context) error {
	var req dto.ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}
	experience, err := h.content.CreateExperience(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, "create experience", "", err)
	}
	return Success(c, http.StatusCreated, "Experience created successfully", experience)
}

// UpdateExperience overwrites an entry.
func (h *ContentHandler) UpdateExperience(c echo.Context) error {
	var req dto.ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}
	experience, err := h.content.UpdateExperience(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.logger, "update experience", experienceNotFound, err)
	}
	return Success(c, http.StatusOK, "Experience updated successfully", experience)
}

// DeleteExperience archives an entry.
func (h *ContentHandler) DeleteExperience(c echo.Context) error {
	changed, err := h.content.ArchiveExperience(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, "archive experience", experienceNotFound, err)
	}
	if !changed {
		return Error(c, http.StatusNotFound, CodeNotFound, experienceNotFound)
	}
	return Success(c, http.StatusOK, "Experience deleted successfully", nil)
}

// Testimonials lists active testimonials.
func (h *ContentHandler) Testimonials(c echo.Context) error {
	testimonials, err := h.content.Testimonials(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "list testimonials", "", err)
	}
	return Success(c, http.StatusOK, "Testimonials retrieved successfully", testimonials)
}

// Testimonial returns one testimonial, archived or not.
func (h *ContentHandler) Testimonial(c echo.Context) error {
	testimonial, err := h.content.Testimonial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, "get testimonial", testimonialNotFound, err)
	}
	return Success(c, http.StatusOK, "", testimonial)
}

// CreateTestimonial stores a new testimonial.
func (h *ContentHandler) CreateTestimonial(c echo.Context) error {
	var req dto.TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}
	testimonial, err := h.content.CreateTestimonial(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, "create testimonial", "", err)
	}
	return Success(c, http.StatusCreated, "Testimonial created successfully", testimonial)
}

// UpdateTestimonial overwrites a testimonial.
func (h *ContentHandler) UpdateTestimonial(c echo.Context) error {
	var req dto.TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}
	testimonial, err := h.content.UpdateTestimonial(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.logger, "update testimonial", testimonialNotFound, err)
	}
	return Success(c, http.StatusOK, "Testimonial updated successfully", testimonial)
}

// DeleteTestimonial archives a testimonial.
func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	changed, err := h.content.ArchiveTestimonial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, "archive testimonial", testimonialNotFound, err)
	}
	if !changed {
		return Error(c, http.StatusNotFound, CodeNotFound, testimonialNotFound)
	}
	return Success(c, http.StatusOK, "Testimonial deleted successfully", nil)
}

// Expertise returns the expertise showcase, falling back to the built-in one.
func (h *ContentHandler) Expertise(c echo.Context) error {
	expertise, err := h.content.Expertise(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "get expertise", "", err)
	}
	return Success(c, http.StatusOK, "", expertise)
}

// UpdateExpertise replaces the expertise showcase.
func (h *ContentHandler) UpdateExpertise(c echo.Context) error {
	var req dto.ExpertiseRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}
	expertise, err := h.content.UpdateExpertise(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, "update expertise", "", err)
	}
	return Success(c, http.StatusOK, "Expertise updated successfully", expertise)
}
