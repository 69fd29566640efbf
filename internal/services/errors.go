// Package services defines the business logic for the message board.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer. Field-level input failures are reported separately as
// *validation.Error.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFound indicates that the addressed row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSlackToken is returned when a slash command does not carry the
	// configured shared secret.
	ErrInvalidSlackToken = errors.New("invalid slack token")

	// ErrReplayGone is returned when an Idempotency-Key refers to a row that
	// has since been deleted.
	ErrReplayGone = errors.New("idempotent result no longer exists")

	// ErrStore wraps every failure of the relational store. The cause is
	// logged, never returned to clients.
	ErrStore = errors.New("store failure")

	// ErrUploadNotConfigured is returned when the upload relay has no client id.
	ErrUploadNotConfigured = errors.New("upload relay not configured")

	// ErrUpstream wraps transport failures talking to the image host.
	ErrUpstream = errors.New("upload relay unavailable")
)

// storeErr logs err with the request-scoped logger and wraps it as ErrStore.
func storeErr(ctx context.Context, op string, err error) error {
	zerolog.Ctx(ctx).Error().Err(err).Str("op", op).Msg("store error")
	return fmt.Errorf("%s: %w", op, ErrStore)
}
