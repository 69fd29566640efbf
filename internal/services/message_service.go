// Package services – MessageService
//
// This file implements MessageService, the application-level component that
// owns the lifecycle of board messages. It validates inputs against the
// declarative schemas, applies defaults, stamps creation times, persists rows,
// and turns Slack slash commands into posts.
//
// Observability: all public methods are OpenTelemetry-instrumented, and store
// failures are logged with the request-scoped logger before being wrapped as
// ErrStore.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/gchan/gchan-backend/internal/domain"
	"github.com/gchan/gchan-backend/internal/repo"
	"github.com/gchan/gchan-backend/internal/validation"
)

const (
	scopeMessages = "messages"

	slackSubject = "slackin"
	boardPath    = "/g"
)

// MessageService coordinates message persistence and the Slack integration.
type MessageService struct {
	DB *gorm.DB

	// SlackToken is the shared secret expected on every slash command. When
	// empty, every command is rejected.
	SlackToken string
	// PublicURL is the front-end base; Slack replies link to PublicURL + "/g".
	PublicURL string
	// Lang selects the language of Slack replies (pt-BR when zero).
	Lang language.Tag

	// IdempotencyTTL bounds how long an Idempotency-Key replays its result.
	IdempotencyTTL time.Duration

	// Now is the clock used for creation stamps (time.Now when nil).
	Now func() time.Time
}

func (s *MessageService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *MessageService) tracer() trace.Tracer { return otel.Tracer("services/MessageService") }

// List returns every stored message ordered by id. The slice is empty, never
// nil, when the board has no posts.
func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	ctx, span := s.tracer().Start(ctx, "List")
	defer span.End()

	out, err := repo.ListMessages(ctx, s.DB)
	if err != nil {
		return nil, storeErr(ctx, "list messages", err)
	}
	span.SetAttributes(attribute.Int("messages.count", len(out)))
	return out, nil
}

// ETag returns a weak validator that changes whenever a message is inserted
// or deleted.
func (s *MessageService) ETag(ctx context.Context) (string, error) {
	count, maxID, latest, err := repo.MessagesStats(ctx, s.DB)
	if err != nil {
		return "", storeErr(ctx, "messages stats", err)
	}
	var ts int64
	if latest != nil {
		ts = latest.Unix()
	}
	return fmt.Sprintf(`W/"messages:%d:%d:%d"`, count, maxID, ts), nil
}

// Create stores a post submitted through the public form. An absent username
// becomes "Anonymous". On validation failure nothing is stored and the
// *validation.Error is returned.
//
// When idemKey is non-empty and was already used for a successful create, the
// earlier message is returned with replayed=true and nothing new is stored.
func (s *MessageService) Create(ctx context.Context, in validation.PublicPost, idemKey string) (msg *domain.Message, replay bool, err error) {
	ctx, span := s.tracer().Start(ctx, "Create")
	defer span.End()

	if in.Username == "" {
		in.Username = domain.DefaultUsername
	}
	if err := validation.Struct(in); err != nil {
		return nil, false, err
	}

	m := &domain.Message{
		Username:  in.Username,
		Subject:   in.Subject,
		Message:   in.Message,
		ImageURL:  in.ImageURL,
		GiphyURL:  in.GiphyURL,
		Options:   in.Options,
		UserID:    in.UserID,
		GifOrigin: in.GifOrigin,
		Created:   s.now(),
	}

	id, replay, err := createOnce(ctx, s.DB, s.IdempotencyTTL, scopeMessages, idemKey, func(tx *gorm.DB) (int64, error) {
		if err := repo.CreateMessage(ctx, tx, m); err != nil {
			return 0, err
		}
		return m.ID, nil
	})
	if err != nil {
		return nil, false, storeErr(ctx, "create message", err)
	}
	span.SetAttributes(attribute.Int64("message.id", id), attribute.Bool("idempotency.replay", replay))

	if replay {
		prev, err := replayed(ctx, s.DB, id, repo.GetMessage, "replay message")
		return prev, true, err
	}
	postsTotal.WithLabelValues(scopeMessages, "form").Inc()
	return m, false, nil
}

// PostFromSlack turns a slash command into a board post.
//
// The token is checked first; a mismatch returns ErrInvalidSlackToken without
// validating or storing anything. The command text is split on ";": fewer than
// two segments yields a usage hint and stores nothing; more than two posts as
// "Anonymous"; otherwise the Slack user name is used. The first segment is
// the message and the trimmed second segment the media link.
func (s *MessageService) PostFromSlack(ctx context.Context, in validation.SlackCommand) (*SlackReply, error) {
	ctx, span := s.tracer().Start(ctx, "PostFromSlack",
		trace.WithAttributes(attribute.String("slack.team", in.TeamDomain)),
	)
	defer span.End()

	if s.SlackToken == "" || subtle.ConstantTimeCompare([]byte(in.Token), []byte(s.SlackToken)) != 1 {
		return nil, ErrInvalidSlackToken
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	lang := s.Lang
	if lang == language.Und {
		lang = slackLanguages[0]
	}
	reply := &SlackReply{
		URL:          s.PublicURL + boardPath,
		ResponseType: "ephemeral",
	}

	parts := strings.Split(in.Text, ";")
	if len(parts) < 2 {
		reply.Text = slackText(lang, slackKeyUsage)
		return reply, nil
	}

	username := in.UserName
	if len(parts) > 2 {
		username = domain.DefaultUsername
	}
	empty := ""
	zero := int64(0)
	m := &domain.Message{
		Username: username,
		Subject:  slackSubject,
		Message:  parts[0],
		ImageURL: strings.TrimSpace(parts[1]),
		GiphyURL: &empty,
		UserID:   &zero,
		Created:  s.now(),
		SlackID:  in.UserID,
	}
	if err := repo.CreateMessage(ctx, s.DB, m); err != nil {
		return nil, storeErr(ctx, "create slack message", err)
	}
	postsTotal.WithLabelValues(scopeMessages, "slack").Inc()
	zerolog.Ctx(ctx).Info().
		Int64("message_id", m.ID).
		Str("slack_id", m.SlackID).
		Bool("anonymous", username == domain.DefaultUsername).
		Msg("slack post stored")

	reply.Text = slackText(lang, slackKeyThanks)
	reply.MessageID = m.ID
	return reply, nil
}

// Delete hard-deletes a message and returns its id, or ErrNotFound.
func (s *MessageService) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, span := s.tracer().Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("message.id", id)),
	)
	defer span.End()

	if err := repo.DeleteMessage(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, storeErr(ctx, "delete message", err)
	}
	return id, nil
}
