package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rcmunich/robert-chang-portfolio/internal/dto"
	"github.com/rcmunich/robert-chang-portfolio/internal/middleware"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

// ContactHandler exposes the contact form and its triage endpoints.
type ContactHandler struct {
	contacts *service.ContactService
	logger   *slog.Logger
}

// NewContactHandler constructs a handler instance.
func NewContactHandler(contacts *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// Submit records a contact form submission from the calling client.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}

	id, err := h.contacts.Submit(c.Request().Context(), req, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return respondError(c, h.logger, "submit contact", "", err)
	}

	h.logger.Info("contact submission stored",
		slog.String("request_id", middleware.RequestIDFromContext(c)),
		slog.String("submission_id", id),
		slog.String("inquiry_type", req.InquiryType),
	)
	return Success(c, http.StatusOK, "Thank you for your message! I'll get back to you within 24 hours.", dto.ContactSubmissionResponse{ID: id})
}

// List returns every submission, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	submissions, err := h.contacts.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "list contacts", "", err)
	}
	return Success(c, http.StatusOK, "Contact submissions retrieved successfully", submissions)
}

// UpdateStatus changes the triage status of a submission. The status is read
// from the JSON body and falls back to the status query parameter.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	var req dto.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, CodeInvalidInput, "invalid payload")
	}
	if req.Status == "" {
		req.Status = c.QueryParam("status")
	}

	changed, err := h.contacts.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return respondError(c, h.logger, "update contact status", "Submission not found", err)
	}
	if !changed {
		return Error(c, http.StatusNotFound, CodeNotFound, "Submission not found")
	}
	return Success(c, http.StatusOK, "Status updated successfully", nil)
}
