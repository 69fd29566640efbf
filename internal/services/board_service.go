// Package services – BoardService
//
// BoardService owns the sibling board entities: replies under messages,
// marquee announcements, and form placeholders. Each follows the same thin
// List/Create/Delete contract as MessageService.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/gchan/gchan-backend/internal/domain"
	"github.com/gchan/gchan-backend/internal/repo"
	"github.com/gchan/gchan-backend/internal/validation"
)

const (
	scopeReplies      = "replies"
	scopeMarquees     = "marquees"
	scopePlaceholders = "placeholders"
)

// BoardService coordinates persistence of replies, marquees, and placeholders.
type BoardService struct {
	DB             *gorm.DB
	IdempotencyTTL time.Duration
	Now            func() time.Time
}

func (s *BoardService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *BoardService) tracer() trace.Tracer { return otel.Tracer("services/BoardService") }

// ListReplies returns replies ordered by id, restricted to one message when
// messageID is positive.
func (s *BoardService) ListReplies(ctx context.Context, messageID int64) ([]domain.Reply, error) {
	ctx, span := s.tracer().Start(ctx, "ListReplies",
		trace.WithAttributes(attribute.Int64("message.id", messageID)),
	)
	defer span.End()

	out, err := repo.ListReplies(ctx, s.DB, messageID)
	if err != nil {
		return nil, storeErr(ctx, "list replies", err)
	}
	return out, nil
}

// CreateReply stores a reply under an existing message. It returns
// ErrNotFound when the parent message does not exist.
func (s *BoardService) CreateReply(ctx context.Context, in validation.Reply, idemKey string) (*domain.Reply, bool, error) {
	ctx, span := s.tracer().Start(ctx, "CreateReply",
		trace.WithAttributes(attribute.Int64("message.id", in.MessageID)),
	)
	defer span.End()

	if in.Username == "" {
		in.Username = domain.DefaultUsername
	}
	if err := validation.Struct(in); err != nil {
		return nil, false, err
	}

	r := &domain.Reply{
		MessageID: in.MessageID,
		Username:  in.Username,
		Reply:     in.Reply,
		ImageURL:  in.ImageURL,
		GiphyURL:  in.GiphyURL,
		GifOrigin: in.GifOrigin,
		UserID:    in.UserID,
		Created:   s.now(),
	}

	id, replay, err := createOnce(ctx, s.DB, s.IdempotencyTTL, scopeReplies, idemKey, func(tx *gorm.DB) (int64, error) {
		if _, err := repo.GetMessage(ctx, tx, r.MessageID); err != nil {
			return 0, err
		}
		if err := repo.CreateReply(ctx, tx, r); err != nil {
			return 0, err
		}
		return r.ID, nil
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, storeErr(ctx, "create reply", err)
	}
	if replay {
		prev, err := replayed(ctx, s.DB, id, repo.GetReply, "replay reply")
		return prev, true, err
	}
	postsTotal.WithLabelValues(scopeReplies, "form").Inc()
	return r, false, nil
}

// DeleteReply hard-deletes a reply and returns its id, or ErrNotFound.
func (s *BoardService) DeleteReply(ctx context.Context, id int64) (int64, error) {
	return s.delete(ctx, "DeleteReply", id, repo.DeleteReply)
}

// ListMarquees returns marquees ordered by id.
func (s *BoardService) ListMarquees(ctx context.Context) ([]domain.Marquee, error) {
	ctx, span := s.tracer().Start(ctx, "ListMarquees")
	defer span.End()

	out, err := repo.ListMarquees(ctx, s.DB)
	if err != nil {
		return nil, storeErr(ctx, "list marquees", err)
	}
	return out, nil
}

// CreateMarquee stores a marquee announcement.
func (s *BoardService) CreateMarquee(ctx context.Context, in validation.Marquee, idemKey string) (*domain.Marquee, bool, error) {
	ctx, span := s.tracer().Start(ctx, "CreateMarquee")
	defer span.End()

	if err := validation.Struct(in); err != nil {
		return nil, false, err
	}
	m := &domain.Marquee{Content: in.Content, Href: in.Href, Created: s.now()}

	id, replay, err := createOnce(ctx, s.DB, s.IdempotencyTTL, scopeMarquees, idemKey, func(tx *gorm.DB) (int64, error) {
		if err := repo.CreateMarquee(ctx, tx, m); err != nil {
			return 0, err
		}
		return m.ID, nil
	})
	if err != nil {
		return nil, false, storeErr(ctx, "create marquee", err)
	}
	if replay {
		prev, err := replayed(ctx, s.DB, id, repo.GetMarquee, "replay marquee")
		return prev, true, err
	}
	postsTotal.WithLabelValues(scopeMarquees, "form").Inc()
	return m, false, nil
}

// DeleteMarquee hard-deletes a marquee and returns its id, or ErrNotFound.
func (s *BoardService) DeleteMarquee(ctx context.Context, id int64) (int64, error) {
	return s.delete(ctx, "DeleteMarquee", id, repo.DeleteMarquee)
}

// ListPlaceholders returns placeholders ordered by id.
func (s *BoardService) ListPlaceholders(ctx context.Context) ([]domain.Placeholder, error) {
	ctx, span := s.tracer().Start(ctx, "ListPlaceholders")
	defer span.End()

	out, err := repo.ListPlaceholders(ctx, s.DB)
	if err != nil {
		return nil, storeErr(ctx, "list placeholders", err)
	}
	return out, nil
}

// CreatePlaceholder stores a form placeholder.
func (s *BoardService) CreatePlaceholder(ctx context.Context, in validation.Placeholder, idemKey string) (*domain.Placeholder, bool, error) {
	ctx, span := s.tracer().Start(ctx, "CreatePlaceholder")
	defer span.End()

	if err := validation.Struct(in); err != nil {
		return nil, false, err
	}
	p := &domain.Placeholder{Placeholder: in.Placeholder, Created: s.now()}

	id, replay, err := createOnce(ctx, s.DB, s.IdempotencyTTL, scopePlaceholders, idemKey, func(tx *gorm.DB) (int64, error) {
		if err := repo.CreatePlaceholder(ctx, tx, p); err != nil {
			return 0, err
		}
		return p.ID, nil
	})
	if err != nil {
		return nil, false, storeErr(ctx, "create placeholder", err)
	}
	if replay {
		prev, err := replayed(ctx, s.DB, id, repo.GetPlaceholder, "replay placeholder")
		return prev, true, err
	}
	postsTotal.WithLabelValues(scopePlaceholders, "form").Inc()
	return p, false, nil
}

// DeletePlaceholder hard-deletes a placeholder and returns its id, or ErrNotFound.
func (s *BoardService) DeletePlaceholder(ctx context.Context, id int64) (int64, error) {
	return s.delete(ctx, "DeletePlaceholder", id, repo.DeletePlaceholder)
}

func (s *BoardService) delete(ctx context.Context, op string, id int64, del func(context.Context, *gorm.DB, int64) error) (int64, error) {
	ctx, span := s.tracer().Start(ctx, op, trace.WithAttributes(attribute.Int64("id", id)))
	defer span.End()

	if err := del(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, storeErr(ctx, op, err)
	}
	return id, nil
}
