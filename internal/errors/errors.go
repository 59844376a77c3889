// Package errors defines the problem-details error payload returned by the
// HTTP API and maps internal dataset errors onto it.
package errors

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"campusboard/internal/dataset"
	"campusboard/internal/infrastructure"
)

// APIError is the problem-details body written on failed requests.
type APIError struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Detail  string `json:"detail,omitempty"`
	TraceID string `json:"trace_id,omitempty"`

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Title + ": " + e.Detail
	}
	return e.Title
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *APIError) Unwrap() error { return e.cause }

// Render implements render.Renderer.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	e.TraceID = infrastructure.GetTraceID(r.Context())
	render.Status(r, e.Status)
	return nil
}

// NewBadRequest creates a 400 error.
func NewBadRequest(detail string) *APIError {
	return &APIError{
		Type:   "about:blank",
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

// NewNotFound creates a 404 error.
func NewNotFound(detail string) *APIError {
	return &APIError{
		Type:   "about:blank",
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Detail: detail,
	}
}

// NewInternal creates a 500 error wrapping its cause. The cause is kept
// for logging and never serialized.
func NewInternal(err error) *APIError {
	return &APIError{
		Type:   "about:blank",
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: "an unexpected error occurred",
		cause:  err,
	}
}

// FromDatasetError maps loader and workbook errors to API errors. Missing
// workbooks are 404s and schema mismatches 422s; everything else is a 500.
func FromDatasetError(err error) *APIError {
	var schemaErr *dataset.SchemaError
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		return &APIError{
			Type:   "about:blank",
			Title:  "Not Found",
			Status: http.StatusNotFound,
			Detail: err.Error(),
			cause:  err,
		}
	case errors.As(err, &schemaErr):
		return &APIError{
			Type:   "about:blank",
			Title:  "Unprocessable Entity",
			Status: http.StatusUnprocessableEntity,
			Detail: schemaErr.Error(),
			cause:  err,
		}
	default:
		return NewInternal(err)
	}
}
