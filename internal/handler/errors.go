package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rcmunich/robert-chang-portfolio/internal/middleware"
	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

// respondError maps a service error onto the error envelope. Unexpected
// errors are logged with the operation name and hidden from the client.
func respondError(c echo.Context, logger *slog.Logger, op, notFound string, err error) error {
	var (
		vErr  service.ValidationError
		rlErr *service.RateLimitError
	)
	switch {
	case errors.As(err, &vErr):
		return writeError(c, http.StatusBadRequest, APIError{Code: CodeValidation, Message: vErr.Message, Field: vErr.Field})
	case errors.As(err, &rlErr):
		c.Response().Header().Set("Retry-After", retryAfterSeconds(rlErr))
		return Error(c, http.StatusTooManyRequests, CodeRateLimited, "Too many requests. Please try again later.")
	case errors.Is(err, repository.ErrNotFound):
		return Error(c, http.StatusNotFound, CodeNotFound, notFound)
	default:
		logger.Error("request failed",
			slog.String("op", op),
			slog.String("request_id", middleware.RequestIDFromContext(c)),
			slog.Any("error", err),
		)
		return Error(c, http.StatusInternalServerError, CodeInternal, internalErrorText)
	}
}

func retryAfterSeconds(err *service.RateLimitError) string {
	secs := int(math.Ceil(err.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// ErrorHandler renders errors that escape handlers, such as unknown routes,
// oversized bodies or throttled writes, in the error envelope.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status = http.StatusInternalServerError
			code   = CodeInternal
			msg    = internalErrorText
		)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			code = codeForStatus(status)
			if status < http.StatusInternalServerError {
				msg = fmt.Sprint(httpErr.Message)
			}
		}
		if status >= http.StatusInternalServerError {
			logger.Error("unhandled error",
				slog.String("request_id", middleware.RequestIDFromContext(c)),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = Error(c, status, code, msg)
		}
		if writeErr != nil {
			logger.Error("write error response", slog.Any("error", writeErr))
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return CodeInvalidInput
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeRateLimited
	}
	if status >= http.StatusInternalServerError {
		return CodeInternal
	}
	return CodeHTTP
}
