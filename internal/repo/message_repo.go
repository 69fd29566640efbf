// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a row is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gchan/gchan-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// ListMessages returns every message ordered by id. The result is never nil.
func ListMessages(ctx context.Context, db *gorm.DB) ([]domain.Message, error) {
	out := []domain.Message{}
	if err := db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMessage inserts m and fills in its generated id.
func CreateMessage(ctx context.Context, db *gorm.DB, m *domain.Message) error {
	return db.WithContext(ctx).Create(m).Error
}

// GetMessage fetches a message by id, or returns ErrNotFound.
func GetMessage(ctx context.Context, db *gorm.DB, id int64) (*domain.Message, error) {
	return getByID[domain.Message](ctx, db, id)
}

// DeleteMessage hard-deletes the message with the given id.
// It returns ErrNotFound when no row matched.
func DeleteMessage(ctx context.Context, db *gorm.DB, id int64) error {
	return deleteByID[domain.Message](ctx, db, id)
}

func getByID[T any](ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// deleteByID removes one row of T in a single statement and reports
// ErrNotFound when nothing matched.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
