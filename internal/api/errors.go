package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/service"
)

// Client-facing failure messages. These are part of the API contract.
const (
	msgPostNotFound     = "BlogPost not found"
	msgValidationFailed = "Validation failed"
	msgMalformedBody    = "Request body is missing or malformed"
	msgUnexpectedError  = "An unexpected error occurred"
)

// ErrorMessage is the uniform error body returned for every failure.
// The errors list is present only when individual constraint violations
// exist; otherwise the key is omitted entirely.
type ErrorMessage struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Errors  []ErrorDetails `json:"errors,omitempty"`
}

// ErrorDetails describes a single violated constraint.
type ErrorDetails struct {
	Field         string      `json:"field"`
	RejectedValue interface{} `json:"rejectedValue"`
	Message       string      `json:"message"`
}

// RespondWithServiceError translates a service-layer failure into the
// uniform error body with the right status code. It is the single point
// where domain failures meet HTTP; handlers never map errors inline.
func RespondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, service.ErrPostNotFound):
		status = http.StatusNotFound
		message = msgPostNotFound
	default:
		status = http.StatusInternalServerError
		message = msgUnexpectedError
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response",
		slog.String("trace_id", shared.GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("error", err.Error()))

	shared.RespondWithJSON(w, r, status, ErrorMessage{
		Status:  status,
		Message: message,
	})
}

// RespondWithValidationErrors returns a 400 carrying one entry per
// violated constraint.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, violations []ErrorDetails) {
	status := http.StatusBadRequest

	slog.Debug("request validation failed",
		"trace_id", shared.GetTraceID(r.Context()),
		"path", r.URL.Path,
		"violations", len(violations))

	shared.RespondWithJSON(w, r, status, ErrorMessage{
		Status:  status,
		Message: msgValidationFailed,
		Errors:  violations,
	})
}

// RespondWithMalformedBody returns the failure for a request body that
// could not be parsed at all. Distinct from field validation: there are
// no per-field violations to report.
//
// The status is 400. An earlier incarnation of this API answered 404
// here; that was inconsistent with every other validation failure and
// is deliberately not preserved.
func RespondWithMalformedBody(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest

	slog.Debug("malformed request body",
		"trace_id", shared.GetTraceID(r.Context()),
		"path", r.URL.Path,
		"error", err)

	shared.RespondWithJSON(w, r, status, ErrorMessage{
		Status:  status,
		Message: msgMalformedBody,
	})
}
