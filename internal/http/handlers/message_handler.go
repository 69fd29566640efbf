// Message HTTP handlers.
//
// This file exposes the endpoints for top-level posts:
//   - GET    /messages         (list, weak ETag support)
//   - POST   /messages         (public form post, idempotent with a key)
//   - POST   /messages/slack   (Slack slash command)
//   - DELETE /messages/{id}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gchan/gchan-backend/internal/validation"
)

// ListMessages godoc
// @ID          listMessages
// @Summary     List board messages
// @Description Returns every message ordered by id. Supports conditional GET via a weak ETag.
// @Tags        Messages
// @Produce     json
// @Param       If-None-Match  header  string  false  "ETag from a previous response"
// @Success     200  {object}  handlers.MessagesResponse
// @Success     304  "Not modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if etag, err := h.msgSvc.ETag(ctx); err == nil {
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, err := h.msgSvc.List(ctx)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, MessagesResponse{Results: items})
}

// PostMessage godoc
// @ID          postMessage
// @Summary     Post a message
// @Description Stores a message from the public form. JSON, URL-encoded and multipart bodies are accepted.
// @Description With an Idempotency-Key, a retry returns the original message with Idempotency-Replayed: true.
// @Tags        Messages
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Accept      mpfd
// @Produce     json
// @Param       Idempotency-Key  header  string                  false  "Key for safe retries"
// @Param       body             body    validation.PublicPost  true   "Message"
// @Success     201  {object}  domain.Message
// @Success     200  {object}  domain.Message         "Idempotent replay"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     409  {object}  handlers.ErrorResponse  "Replayed message was deleted"
// @Failure     413  {object}  handlers.ErrorResponse  "Body too large"
// @Failure     415  {object}  handlers.ErrorResponse  "Unsupported media type"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages [post]
func (h *Handlers) PostMessage(c *gin.Context) {
	var in validation.PublicPost
	if err := c.ShouldBind(&in); err != nil {
		failBind(c, err)
		return
	}

	m, replay, err := h.msgSvc.Create(c.Request.Context(), in, idemKey(c))
	if err != nil {
		failService(c, err)
		return
	}
	created(c, m, replay)
}

// PostSlack godoc
// @ID          postSlack
// @Summary     Post from a Slack slash command
// @Description Text is split on ";": "<message> ; <media url>". Fewer than two segments returns a usage hint.
// @Tags        Messages
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       body  body  validation.SlackCommand  true  "Slash command payload"
// @Success     200  {object}  services.SlackReply
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid token"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages/slack [post]
func (h *Handlers) PostSlack(c *gin.Context) {
	var in validation.SlackCommand
	if err := c.ShouldBind(&in); err != nil {
		failBind(c, err)
		return
	}

	reply, err := h.msgSvc.PostFromSlack(c.Request.Context(), in)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, reply)
}

// DeleteMessage godoc
// @ID          deleteMessage
// @Summary     Delete a message
// @Tags        Messages
// @Produce     json
// @Param       id  path  int  true  "Message id"  minimum(1)
// @Success     200  {object}  handlers.DeletedResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure     404  {boolean}  bool                   "false"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages/{id} [delete]
func (h *Handlers) DeleteMessage(c *gin.Context) {
	deleteByParam(c, h.msgSvc.Delete)
}
