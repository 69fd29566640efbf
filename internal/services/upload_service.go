// Package services – UploadService
//
// UploadService relays staged uploads to the image host and records the
// outcome. Upstream answers are passed back untouched; non-2xx answers surface
// as *imgur.UpstreamError so handlers can relay status and body verbatim.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gchan/gchan-backend/internal/imgur"
)

// Relay is the subset of the image host client used by UploadService.
type Relay interface {
	Upload(ctx context.Context, kind imgur.Kind, path, filename string) (json.RawMessage, error)
	Delete(ctx context.Context, deleteHash string) (json.RawMessage, error)
}

// UploadService relays media to the image host.
type UploadService struct {
	Relay Relay
}

func (s *UploadService) tracer() trace.Tracer { return otel.Tracer("services/UploadService") }

// Upload relays the staged file at path.
func (s *UploadService) Upload(ctx context.Context, kind imgur.Kind, path, filename string) (json.RawMessage, error) {
	ctx, span := s.tracer().Start(ctx, "Upload",
		trace.WithAttributes(attribute.String("upload.kind", string(kind))),
	)
	defer span.End()

	raw, err := s.Relay.Upload(ctx, kind, path, filename)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	uploadsTotal.WithLabelValues(string(kind), outcome).Inc()
	if err != nil {
		return nil, s.relayErr(ctx, "upload", err)
	}
	return raw, nil
}

// Delete removes an upload by its delete hash.
func (s *UploadService) Delete(ctx context.Context, deleteHash string) (json.RawMessage, error) {
	ctx, span := s.tracer().Start(ctx, "Delete")
	defer span.End()

	raw, err := s.Relay.Delete(ctx, deleteHash)
	if err != nil {
		return nil, s.relayErr(ctx, "delete", err)
	}
	return raw, nil
}

func (s *UploadService) relayErr(ctx context.Context, op string, err error) error {
	lg := zerolog.Ctx(ctx)
	var ue *imgur.UpstreamError
	switch {
	case errors.As(err, &ue):
		lg.Warn().Int("upstream_status", ue.Status).Str("op", op).Msg("upload rejected upstream")
		return err
	case errors.Is(err, imgur.ErrNotConfigured):
		return ErrUploadNotConfigured
	default:
		lg.Error().Err(err).Str("op", op).Msg("upload relay failed")
		return fmt.Errorf("%s: %w", op, ErrUpstream)
	}
}
