// Board HTTP handlers for replies, marquees and placeholders.
//
// Each collection exposes list, create and delete with the same shapes as
// /messages: {"results": [...]}, the stored row on create, {"id": N} on delete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gchan/gchan-backend/internal/utils"
	"github.com/gchan/gchan-backend/internal/validation"
)

// ListReplies godoc
// @ID       listReplies
// @Summary  List replies
// @Tags     Replies
// @Produce  json
// @Param    message_id  query  int  false  "Only replies under this message"
// @Success  200  {object}  handlers.RepliesResponse
// @Failure  500  {object}  handlers.ErrorResponse  "Internal error"
// @Router   /replies [get]
func (h *Handlers) ListReplies(c *gin.Context) {
	items, err := h.boardSvc.ListReplies(c.Request.Context(), utils.Int64Default(c.Query("message_id"), 0))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, RepliesResponse{Results: items})
}

// PostReply godoc
// @ID       postReply
// @Summary  Reply to a message
// @Tags     Replies
// @Accept   json
// @Accept   x-www-form-urlencoded
// @Accept   mpfd
// @Produce  json
// @Param    Idempotency-Key  header  string            false  "Key for safe retries"
// @Param    body             body    validation.Reply  true   "Reply"
// @Success  201  {object}  domain.Reply
// @Success  200  {object}  domain.Reply           "Idempotent replay"
// @Failure  400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure  404  {object}  handlers.ErrorResponse  "Parent message not found"
// @Failure  409  {object}  handlers.ErrorResponse  "Replayed reply was deleted"
// @Failure  500  {object}  handlers.ErrorResponse  "Internal error"
// @Router   /replies [post]
func (h *Handlers) PostReply(c *gin.Context) {
	var in validation.Reply
	if err := c.ShouldBind(&in); err != nil {
		failBind(c, err)
		return
	}
	r, replay, err := h.boardSvc.CreateReply(c.Request.Context(), in, idemKey(c))
	if err != nil {
		failService(c, err)
		return
	}
	created(c, r, replay)
}

// DeleteReply godoc
// @ID       deleteReply
// @Summary  Delete a reply
// @Tags     Replies
// @Produce  json
// @Param    id  path  int  true  "Reply id"  minimum(1)
// @Success  200  {object}  handlers.DeletedResponse
// @Failure  400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure  404  {boolean}  bool                   "false"
// @Router   /replies/{id} [delete]
func (h *Handlers) DeleteReply(c *gin.Context) {
	deleteByParam(c, h.boardSvc.DeleteReply)
}

// ListMarquees godoc
// @ID       listMarquees
// @Summary  List marquees
// @Tags     Marquees
// @Produce  json
// @Success  200  {object}  handlers.MarqueesResponse
// @Failure  500  {object}  handlers.ErrorResponse  "Internal error"
// @Router   /marquees [get]
func (h *Handlers) ListMarquees(c *gin.Context) {
	items, err := h.boardSvc.ListMarquees(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, MarqueesResponse{Results: items})
}

// PostMarquee godoc
// @ID       postMarquee
// @Summary  Add a marquee
// @Tags     Marquees
// @Accept   json
// @Accept   x-www-form-urlencoded
// @Accept   mpfd
// @Produce  json
// @Param    Idempotency-Key  header  string              false  "Key for safe retries"
// @Param    body             body    validation.Marquee  true   "Marquee"
// @Success  201  {object}  domain.Marquee
// @Success  200  {object}  domain.Marquee         "Idempotent replay"
// @Failure  400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure  500  {object}  handlers.ErrorResponse  "Internal error"
// @Router   /marquees [post]
func (h *Handlers) PostMarquee(c *gin.Context) {
	var in validation.Marquee
	if err := c.ShouldBind(&in); err != nil {
		failBind(c, err)
		return
	}
	m, replay, err := h.boardSvc.CreateMarquee(c.Request.Context(), in, idemKey(c))
	if err != nil {
		failService(c, err)
		return
	}
	created(c, m, replay)
}

// DeleteMarquee godoc
// @ID       deleteMarquee
// @Summary  Delete a marquee
// @Tags     Marquees
// @Produce  json
// @Param    id  path  int  true  "Marquee id"  minimum(1)
// @Success  200  {object}  handlers.DeletedResponse
// @Failure  400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure  404  {boolean}  bool                   "false"
// @Router   /marquees/{id} [delete]
func (h *Handlers) DeleteMarquee(c *gin.Context) {
	deleteByParam(c, h.boardSvc.DeleteMarquee)
}

// ListPlaceholders godoc
// @ID       listPlaceholders
// @Summary  List placeholders
// @Tags     Placeholders
// @Produce  json
// @Success  200  {object}  handlers.PlaceholdersResponse
// @Failure  500  {object}  handlers.ErrorResponse  "Internal error"
// @Router   /placeholders [get]
func (h *Handlers) ListPlaceholders(c *gin.Context) {
	items, err := h.boardSvc.ListPlaceholders(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, PlaceholdersResponse{Results: items})
}

// PostPlaceholder godoc
// @ID       postPlaceholder
// @Summary  Add a placeholder
// @Tags     Placeholders
// @Accept   json
// @Accept   x-www-form-urlencoded
// @Accept   mpfd
// @Produce  json
// @Param    Idempotency-Key  header  string                  false  "Key for safe retries"
// @Param    body             body    validation.Placeholder  true   "Placeholder"
// @Success  201  {object}  domain.Placeholder
// @Success  200  {object}  domain.Placeholder     "Idempotent replay"
// @Failure  400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure  500  {object}  handlers.ErrorResponse  "Internal error"
// @Router   /placeholders [post]
func (h *Handlers) PostPlaceholder(c *gin.Context) {
	var in validation.Placeholder
	if err := c.ShouldBind(&in); err != nil {
		failBind(c, err)
		return
	}
	p, replay, err := h.boardSvc.CreatePlaceholder(c.Request.Context(), in, idemKey(c))
	if err != nil {
		failService(c, err)
		return
	}
	created(c, p, replay)
}

// DeletePlaceholder godoc
// @ID       deletePlaceholder
// @Summary  Delete a placeholder
// @Tags     Placeholders
// @Produce  json
// @Param    id  path  int  true  "Placeholder id"  minimum(1)
// @Success  200  {object}  handlers.DeletedResponse
// @Failure  400  {object}  handlers.ErrorResponse  "Bad id"
// @Failure  404  {boolean}  bool                   "false"
// @Router   /placeholders/{id} [delete]
func (h *Handlers) DeletePlaceholder(c *gin.Context) {
	deleteByParam(c, h.boardSvc.DeletePlaceholder)
}
