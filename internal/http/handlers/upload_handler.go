// Upload HTTP handlers.
//
// The upload routes receive one file staged by middleware.SingleFile and relay
// it to the image host. The host's answer, success or failure, is passed to
// the client unchanged.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gchan/gchan-backend/internal/http/middleware"
	"github.com/gchan/gchan-backend/internal/imgur"
)

// relay writes the image host's answer verbatim.
func relay(c *gin.Context, raw json.RawMessage, err error) {
	if err != nil {
		var ue *imgur.UpstreamError
		if errors.As(err, &ue) {
			c.Data(ue.Status, "application/json; charset=utf-8", ue.Body)
			return
		}
		failService(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// Upload returns the handler relaying a staged file of the given kind.
//
// @ID       uploadImage
// @Summary  Upload an image, gif or video
// @Tags     Uploads
// @Accept   mpfd
// @Produce  json
// @Param    image  formData  file  true  "Image or gif (field \"video\" on /videoupload)"
// @Success  200  {object}  object  "Image host response"
// @Failure  400  {object}  handlers.ErrorResponse  "Missing file"
// @Failure  413  {object}  handlers.ErrorResponse  "File too large"
// @Failure  502  {object}  handlers.ErrorResponse  "Image host unreachable"
// @Failure  503  {object}  handlers.ErrorResponse  "Relay not configured"
// @Router   /imgupload [post]
// @Router   /gifupload [post]
// @Router   /videoupload [post]
func (h *Handlers) Upload(kind imgur.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, found := middleware.StagedFrom(c)
		if !found {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no file uploaded")
			return
		}
		raw, err := h.uploadSvc.Upload(c.Request.Context(), kind, f.Path, f.Name)
		relay(c, raw, err)
	}
}

// DeleteUpload godoc
// @ID       deleteUpload
// @Summary  Delete an uploaded file from the image host
// @Tags     Uploads
// @Produce  json
// @Param    deletehash  path  string  true  "Delete hash returned by the upload"
// @Success  200  {object}  object  "Image host response"
// @Failure  502  {object}  handlers.ErrorResponse  "Image host unreachable"
// @Failure  503  {object}  handlers.ErrorResponse  "Relay not configured"
// @Router   /imgur/{deletehash} [delete]
func (h *Handlers) DeleteUpload(c *gin.Context) {
	hash := strings.TrimSpace(c.Param("deletehash"))
	if hash == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "deletehash required")
		return
	}
	raw, err := h.uploadSvc.Delete(c.Request.Context(), hash)
	relay(c, raw, err)
}
