// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints: the error
// envelope, the list and delete shapes of the board, and the helpers that
// write them.
//
// Conventions:
//   - Every error response is an ErrorResponse with a stable `code`; input
//     failures also list the offending fields.
//   - `fail()` logs 5xx responses with the request-scoped logger. Internal
//     error text never reaches clients.
//   - A delete that matched nothing answers 404 with the JSON literal `false`.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "validation_failed",
//	  "message": "\"subject\" is required",
//	  "fields": [{"field": "subject", "rule": "required", "message": "\"subject\" is required"}]
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gchan/gchan-backend/internal/domain"
	"github.com/gchan/gchan-backend/internal/http/middleware"
	"github.com/gchan/gchan-backend/internal/validation"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"validation_failed"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"\"subject\" is required"`
	// Field-level failures, present for validation errors only
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// MessagesResponse wraps the board listing.
type MessagesResponse struct {
	Results []domain.Message `json:"results"`
}

// RepliesResponse wraps a reply listing.
type RepliesResponse struct {
	Results []domain.Reply `json:"results"`
}

// MarqueesResponse wraps the marquee listing.
type MarqueesResponse struct {
	Results []domain.Marquee `json:"results"`
}

// PlaceholdersResponse wraps the placeholder listing.
type PlaceholdersResponse struct {
	Results []domain.Placeholder `json:"results"`
}

// DeletedResponse echoes the id of a removed row.
type DeletedResponse struct {
	ID int64 `json:"id" example:"42"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	failWith(c, status, ErrorResponse{Code: code, Message: msg})
}

func failWith(c *gin.Context, status int, resp ErrorResponse) {
	resp.RequestID = c.Writer.Header().Get("X-Request-ID")

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", resp.Code).
			Str("message", resp.Message).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for the router's fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// notFoundFalse answers a delete that matched no row.
func notFoundFalse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, false)
}
