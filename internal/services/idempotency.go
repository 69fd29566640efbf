package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/gchan/gchan-backend/internal/repo"
)

// defaultIdempotencyTTL applies when a service is built without a TTL.
const defaultIdempotencyTTL = 24 * time.Hour

// createOnce runs insert and, when key is set, records the new id under
// (scope, key) in the same transaction. A key already recorded short-circuits
// to the stored id with replayed=true; a concurrent duplicate resolves the same way.
func createOnce(ctx context.Context, db *gorm.DB, ttl time.Duration, scope, key string, insert func(tx *gorm.DB) (int64, error)) (id int64, replayed bool, err error) {
	if key == "" {
		id, err = insert(db)
		return id, false, err
	}
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}

	if rec, err := repo.GetIdempotency(ctx, db, scope, key, time.Now().UTC()); err == nil {
		return rec.ResourceID, true, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return 0, false, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newID, err := insert(tx)
		if err != nil {
			return err
		}
		if _, err := repo.CreateIdempotency(ctx, tx, scope, key, newID, http.StatusCreated, ttl); err != nil {
			return err
		}
		id = newID
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) {
		rec, gerr := repo.GetIdempotency(ctx, db, scope, key, time.Now().UTC())
		if gerr != nil {
			return 0, false, gerr
		}
		return rec.ResourceID, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, false, nil
}

// replayed loads a previously created row, mapping a vanished row to ErrReplayGone.
func replayed[T any](ctx context.Context, db *gorm.DB, id int64, get func(context.Context, *gorm.DB, int64) (*T, error), op string) (*T, error) {
	v, err := get(ctx, db, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrReplayGone
	}
	if err != nil {
		return nil, storeErr(ctx, op, err)
	}
	return v, nil
}
