// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file caps request bodies and pre-parses form payloads so handlers can
// bind JSON, URL-encoded and multipart bodies through one c.ShouldBind call.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitBody caps the request body at maxBytes using http.MaxBytesReader.
// Reads past the cap fail with *http.MaxBytesError.
func LimitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// FormBody accepts JSON, URL-encoded and multipart bodies on requests that
// carry one. Form payloads are parsed up front (multipart keeps at most
// maxMemory bytes in memory, the rest spills to temp files removed after the
// request). Other media types get 415, oversized bodies 413.
func FormBody(maxMemory int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
			c.Next()
			return
		}

		var err error
		switch c.ContentType() {
		case "", gin.MIMEJSON:
		case gin.MIMEPOSTForm:
			err = c.Request.ParseForm()
		case gin.MIMEMultipartPOSTForm:
			err = c.Request.ParseMultipartForm(maxMemory)
			if form := c.Request.MultipartForm; form != nil {
				defer func() { _ = form.RemoveAll() }()
			}
		default:
			abortBody(c, http.StatusUnsupportedMediaType, "unsupported_media_type",
				"content type must be JSON, URL-encoded or multipart form data")
			return
		}
		if err != nil {
			abortBodyErr(c, err)
			return
		}
		c.Next()
	}
}

// abortBodyErr maps a body read or parse failure to 413 or 400.
func abortBodyErr(c *gin.Context, err error) {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		abortBody(c, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
		return
	}
	LoggerFrom(c).Debug().Err(err).Msg("malformed request body")
	abortBody(c, http.StatusBadRequest, "bad_request", "malformed request body")
}

func abortBody(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       code,
		"message":    msg,
	})
}
