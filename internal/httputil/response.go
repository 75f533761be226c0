// Package httputil translates domain errors into HTTP responses and parses
// common request parameters.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/blog/internal/errors"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// errorMapping pairs a sentinel error with its HTTP representation.
type errorMapping struct {
	sentinel error
	status   int
	code     string
	message  string
	// echoed reports whether the wrapped error text is safe to return to
	// the client (true only for validation failures).
	echoed bool
}

var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found", false},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data", false},
	{apperrors.ErrInvalidInput, http.StatusBadRequest, "validation_error", "", true},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Invalid or missing credentials", false},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource", false},
}

// HandleErrorGin maps a domain error to its HTTP response.
//
// Every authentication failure collapses into the same 401 body: the internal
// reason (missing header, bad signature, expired token, unknown account,
// wrong password) is logged server-side and never echoed to the client.
// Unrecognized errors become an opaque 500.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	body := ErrorResponse{Error: "internal_error", Message: "An internal error occurred"}

	for _, m := range errorMappings {
		if !apperrors.Is(err, m.sentinel) {
			continue
		}
		status = m.status
		body = ErrorResponse{Error: m.code, Message: m.message}
		if m.echoed {
			body.Message = err.Error()
		}
		break
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", status),
			slog.String("error_code", body.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(status, body)
}

// HandleValidationErrorGin writes a 400 response for malformed JSON bodies
// and binding failures, where no domain error exists yet.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
