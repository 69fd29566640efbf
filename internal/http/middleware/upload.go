// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file stages a single uploaded file to disk before the upload handlers
// run. Staged files keep a unique name under the upload directory, which is
// also served statically.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gchan/gchan-backend/internal/validation"
)

const ctxKeyStaged = "upload.staged"

// StagedFile describes a file written to the upload directory.
type StagedFile struct {
	Path string // location on disk
	Name string // client file name, base name only
	Size int64
}

// StagedFrom returns the file staged by SingleFile.
func StagedFrom(c *gin.Context) (StagedFile, bool) {
	v, ok := c.Get(ctxKeyStaged)
	if !ok {
		return StagedFile{}, false
	}
	f, ok := v.(StagedFile)
	return f, ok
}

// SetStaged records f as the request's staged file.
func SetStaged(c *gin.Context, f StagedFile) { c.Set(ctxKeyStaged, f) }

// SingleFile reads the multipart file in field and writes it to
// dir/<uuid>-<name>. A missing file answers 400 with a field error and an
// oversized body 413.
func SingleFile(field, dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile(field)
		if form := c.Request.MultipartForm; form != nil {
			defer func() { _ = form.RemoveAll() }()
		}
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				abortBodyErr(c, err)
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "bad_request",
				"message":    fmt.Sprintf("%q is required", field),
				"fields": []validation.FieldError{{
					Field:   field,
					Rule:    "required",
					Message: fmt.Sprintf("%q is required", field),
				}},
			})
			return
		}

		name := safeName(fh.Filename)
		dst := filepath.Join(dir, uuid.NewString()+"-"+name)
		if err := c.SaveUploadedFile(fh, dst); err != nil {
			LoggerFrom(c).Error().Err(err).Str("dst", dst).Msg("stage upload")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "internal_error",
				"message":    "internal server error",
			})
			return
		}

		SetStaged(c, StagedFile{Path: dst, Name: name, Size: fh.Size})
		c.Next()
	}
}

// safeName keeps the last path element of a client file name.
func safeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == ".." || name == "" {
		return "upload"
	}
	return name
}
