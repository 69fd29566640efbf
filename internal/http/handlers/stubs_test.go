package handlers

import (
	"context"
	"encoding/json"

	"github.com/gchan/gchan-backend/internal/domain"
	"github.com/gchan/gchan-backend/internal/imgur"
	"github.com/gchan/gchan-backend/internal/services"
	"github.com/gchan/gchan-backend/internal/validation"
)

// Handlers.New expects interfaces in this package; we satisfy them with stubs.
// A nil func field panics, which flags a service call the test did not expect.

type stubMsgSvc struct {
	list   func(ctx context.Context) ([]domain.Message, error)
	etag   func(ctx context.Context) (string, error)
	create func(ctx context.Context, in validation.PublicPost, key string) (*domain.Message, bool, error)
	slack  func(ctx context.Context, in validation.SlackCommand) (*services.SlackReply, error)
	del    func(ctx context.Context, id int64) (int64, error)
}

func (s stubMsgSvc) List(ctx context.Context) ([]domain.Message, error) { return s.list(ctx) }
func (s stubMsgSvc) ETag(ctx context.Context) (string, error)           { return s.etag(ctx) }
func (s stubMsgSvc) Create(ctx context.Context, in validation.PublicPost, key string) (*domain.Message, bool, error) {
	return s.create(ctx, in, key)
}
func (s stubMsgSvc) PostFromSlack(ctx context.Context, in validation.SlackCommand) (*services.SlackReply, error) {
	return s.slack(ctx, in)
}
func (s stubMsgSvc) Delete(ctx context.Context, id int64) (int64, error) { return s.del(ctx, id) }

type stubBoardSvc struct {
	listReplies       func(ctx context.Context, messageID int64) ([]domain.Reply, error)
	createReply       func(ctx context.Context, in validation.Reply, key string) (*domain.Reply, bool, error)
	deleteReply       func(ctx context.Context, id int64) (int64, error)
	listMarquees      func(ctx context.Context) ([]domain.Marquee, error)
	createMarquee     func(ctx context.Context, in validation.Marquee, key string) (*domain.Marquee, bool, error)
	deleteMarquee     func(ctx context.Context, id int64) (int64, error)
	listPlaceholders  func(ctx context.Context) ([]domain.Placeholder, error)
	createPlaceholder func(ctx context.Context, in validation.Placeholder, key string) (*domain.Placeholder, bool, error)
	deletePlaceholder func(ctx context.Context, id int64) (int64, error)
}

func (s stubBoardSvc) ListReplies(ctx context.Context, messageID int64) ([]domain.Reply, error) {
	return s.listReplies(ctx, messageID)
}
func (s stubBoardSvc) CreateReply(ctx context.Context, in validation.Reply, key string) (*domain.Reply, bool, error) {
	return s.createReply(ctx, in, key)
}
func (s stubBoardSvc) DeleteReply(ctx context.Context, id int64) (int64, error) {
	return s.deleteReply(ctx, id)
}
func (s stubBoardSvc) ListMarquees(ctx context.Context) ([]domain.Marquee, error) {
	return s.listMarquees(ctx)
}
func (s stubBoardSvc) CreateMarquee(ctx context.Context, in validation.Marquee, key string) (*domain.Marquee, bool, error) {
	return s.createMarquee(ctx, in, key)
}
func (s stubBoardSvc) DeleteMarquee(ctx context.Context, id int64) (int64, error) {
	return s.deleteMarquee(ctx, id)
}
func (s stubBoardSvc) ListPlaceholders(ctx context.Context) ([]domain.Placeholder, error) {
	return s.listPlaceholders(ctx)
}
func (s stubBoardSvc) CreatePlaceholder(ctx context.Context, in validation.Placeholder, key string) (*domain.Placeholder, bool, error) {
	return s.createPlaceholder(ctx, in, key)
}
func (s stubBoardSvc) DeletePlaceholder(ctx context.Context, id int64) (int64, error) {
	return s.deletePlaceholder(ctx, id)
}

type stubUploadSvc struct {
	upload func(ctx context.Context, kind imgur.Kind, path, filename string) (json.RawMessage, error)
	del    func(ctx context.Context, hash string) (json.RawMessage, error)
}

func (s stubUploadSvc) Upload(ctx context.Context, kind imgur.Kind, path, filename string) (json.RawMessage, error) {
	return s.upload(ctx, kind, path, filename)
}
func (s stubUploadSvc) Delete(ctx context.Context, hash string) (json.RawMessage, error) {
	return s.del(ctx, hash)
}
