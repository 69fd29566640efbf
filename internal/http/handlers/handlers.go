// Package handlers exposes the REST endpoints of the board.
//
// Handlers are transport-thin: they bind input, call application services,
// and translate results into HTTP responses (including conditional responses
// and idempotent replays). Routes, middleware and service wiring live in the
// httpapi package.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gchan/gchan-backend/internal/domain"
	"github.com/gchan/gchan-backend/internal/http/middleware"
	"github.com/gchan/gchan-backend/internal/imgur"
	"github.com/gchan/gchan-backend/internal/services"
	"github.com/gchan/gchan-backend/internal/utils"
	"github.com/gchan/gchan-backend/internal/validation"
)

//
// Service contracts (context-aware)
//

// MessageService defines the top-level post operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MessageService interface {
	List(ctx context.Context) ([]domain.Message, error)
	// ETag returns a weak validator that changes whenever the board does.
	ETag(ctx context.Context) (string, error)
	Create(ctx context.Context, in validation.PublicPost, idemKey string) (*domain.Message, bool, error)
	PostFromSlack(ctx context.Context, in validation.SlackCommand) (*services.SlackReply, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// BoardService defines the operations on replies, marquees and placeholders.
type BoardService interface {
	ListReplies(ctx context.Context, messageID int64) ([]domain.Reply, error)
	CreateReply(ctx context.Context, in validation.Reply, idemKey string) (*domain.Reply, bool, error)
	DeleteReply(ctx context.Context, id int64) (int64, error)

	ListMarquees(ctx context.Context) ([]domain.Marquee, error)
	CreateMarquee(ctx context.Context, in validation.Marquee, idemKey string) (*domain.Marquee, bool, error)
	DeleteMarquee(ctx context.Context, id int64) (int64, error)

	ListPlaceholders(ctx context.Context) ([]domain.Placeholder, error)
	CreatePlaceholder(ctx context.Context, in validation.Placeholder, idemKey string) (*domain.Placeholder, bool, error)
	DeletePlaceholder(ctx context.Context, id int64) (int64, error)
}

// UploadService relays staged media to the image host.
type UploadService interface {
	Upload(ctx context.Context, kind imgur.Kind, path, filename string) (json.RawMessage, error)
	Delete(ctx context.Context, deleteHash string) (json.RawMessage, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the board. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	msgSvc    MessageService
	boardSvc  BoardService
	uploadSvc UploadService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(msgSvc MessageService, boardSvc BoardService, uploadSvc UploadService) *Handlers {
	return &Handlers{msgSvc: msgSvc, boardSvc: boardSvc, uploadSvc: uploadSvc}
}

// HeaderReplayed marks a response served from an earlier idempotent create.
const HeaderReplayed = "Idempotency-Replayed"

// idemKey returns the key validated by IdempotencyValidator, if any.
func idemKey(c *gin.Context) string {
	k, _ := middleware.GetIdempotencyKey(c)
	return k
}

// created writes a freshly stored row with 201, or 200 plus the replay
// header when the row came from an earlier request with the same key.
func created(c *gin.Context, body any, replay bool) {
	if replay {
		c.Header(HeaderReplayed, "true")
		ok(c, http.StatusOK, body)
		return
	}
	ok(c, http.StatusCreated, body)
}

// deleteByParam parses :id, runs del and writes {"id": N}, 404 false, or the
// mapped service error.
func deleteByParam(c *gin.Context, del func(context.Context, int64) (int64, error)) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	gone, err := del(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFoundFalse(c)
			return
		}
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, DeletedResponse{ID: gone})
}

// RootResponse is the greeting served at /.
type RootResponse struct {
	Message string `json:"message"`
}

// RootMessage points visitors to the API documentation.
const RootMessage = "This is the API for the gchan project <https://gchan.com.br>. Please visit </api-docs> for more information."

// Root godoc
// @ID       root
// @Summary  API greeting
// @Tags     Meta
// @Produce  json
// @Success  200  {object}  handlers.RootResponse
// @Router   / [get]
func (h *Handlers) Root(c *gin.Context) {
	ok(c, http.StatusOK, RootResponse{Message: RootMessage})
}

// Health godoc
// @ID       health
// @Summary  Liveness probe
// @Tags     Meta
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"status": "ok"})
}
