// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and give clients a stable, machine-readable
// taxonomy next to the human-readable message. failService translates the
// service layer's sentinel errors into status, code and message.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "unauthorized",
//	  "message": "invalid slack token"
//	}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gchan/gchan-backend/internal/services"
	"github.com/gchan/gchan-backend/internal/validation"
)

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeTooLarge     = "payload_too_large"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeValidation        = "validation_failed"
	ErrCodeMethodNotAllowed  = "method_not_allowed"
	ErrCodeUploadUnavailable = "upload_unavailable"
	ErrCodeUpstream          = "upstream_failed"
)

// failService writes the response for an error returned by a service.
func failService(c *gin.Context, err error) {
	if ve, ok := validation.AsError(err); ok {
		failWith(c, http.StatusBadRequest, ErrorResponse{
			Code:    ErrCodeValidation,
			Message: ve.Error(),
			Fields:  ve.Fields,
		})
		return
	}
	switch {
	case errors.Is(err, services.ErrInvalidSlackToken):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid slack token")
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")
	case errors.Is(err, services.ErrReplayGone):
		fail(c, http.StatusConflict, ErrCodeConflict, "idempotent result no longer exists")
	case errors.Is(err, services.ErrUploadNotConfigured):
		fail(c, http.StatusServiceUnavailable, ErrCodeUploadUnavailable, "upload relay not configured")
	case errors.Is(err, services.ErrUpstream):
		fail(c, http.StatusBadGateway, ErrCodeUpstream, "upload relay unavailable")
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

// failBind answers a body that could not be decoded.
func failBind(c *gin.Context, err error) {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		fail(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "request body too large")
		return
	}
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, "malformed request body")
}
