package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestSuccess(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Success(c, 0, "hello", map[string]string{"foo": "bar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	payload := decodeEnvelope(t, rec)
	if !payload.Success || payload.Message != "hello" || payload.Error != nil {
		t.Fatalf("unexpected response: %+v", payload)
	}
}

func TestSuccess_EmptyListIsKept(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := Success(c, http.StatusOK, "", []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty data list in body, got %s", rec.Body.String())
	}
}

func TestError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Error(c, 0, CodeInternal, "boom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected default status 500, got %d", rec.Code)
	}

	payload := decodeEnvelope(t, rec)
	if payload.Success || payload.Error == nil || payload.Error.Code != CodeInternal || payload.Error.Message != "boom" {
		t.Fatalf("unexpected response: %+v", payload)
	}
}

func TestErrorHandler(t *testing.T) {
	cases := map[string]struct {
		err     error
		status  int
		code    string
		message string
	}{
		"route not found": {
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			code:    CodeNotFound,
			message: "Not Found",
		},
		"throttled": {
			err:     echo.NewHTTPError(http.StatusTooManyRequests, "slow down"),
			status:  http.StatusTooManyRequests,
			code:    CodeRateLimited,
			message: "slow down",
		},
		"body too large": {
			err:     echo.ErrStatusRequestEntityTooLarge,
			status:  http.StatusRequestEntityTooLarge,
			code:    CodeInvalidInput,
			message: "Request Entity Too Large",
		},
		"method not allowed": {
			err:     echo.ErrMethodNotAllowed,
			status:  http.StatusMethodNotAllowed,
			code:    CodeHTTP,
			message: "Method Not Allowed",
		},
		"plain error is hidden": {
			err:     errors.New("pq: relation does not exist"),
			status:  http.StatusInternalServerError,
			code:    CodeInternal,
			message: "Internal server error",
		},
	}

	e := echo.New()
	handle := ErrorHandler(discardLogger())
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			handle(tc.err, c)

			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
			payload := decodeEnvelope(t, rec)
			if payload.Error == nil || payload.Error.Code != tc.code || payload.Error.Message != tc.message {
				t.Fatalf("unexpected payload: %+v", payload.Error)
			}
		})
	}
}
