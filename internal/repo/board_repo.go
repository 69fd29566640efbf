// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the sibling
// board entities: replies, marquees, and placeholders.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/gchan/gchan-backend/internal/domain"
)

// ListReplies returns replies ordered by id. A positive messageID restricts
// the result to replies under that message.
func ListReplies(ctx context.Context, db *gorm.DB, messageID int64) ([]domain.Reply, error) {
	out := []domain.Reply{}
	q := db.WithContext(ctx).Order("id ASC")
	if messageID > 0 {
		q = q.Where("message_id = ?", messageID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReply inserts r and fills in its generated id.
func CreateReply(ctx context.Context, db *gorm.DB, r *domain.Reply) error {
	return db.WithContext(ctx).Create(r).Error
}

// GetReply fetches a reply by id, or returns ErrNotFound.
func GetReply(ctx context.Context, db *gorm.DB, id int64) (*domain.Reply, error) {
	return getByID[domain.Reply](ctx, db, id)
}

// DeleteReply hard-deletes a reply, or returns ErrNotFound.
func DeleteReply(ctx context.Context, db *gorm.DB, id int64) error {
	return deleteByID[domain.Reply](ctx, db, id)
}

// ListMarquees returns marquees ordered by id.
func ListMarquees(ctx context.Context, db *gorm.DB) ([]domain.Marquee, error) {
	out := []domain.Marquee{}
	if err := db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMarquee inserts m and fills in its generated id.
func CreateMarquee(ctx context.Context, db *gorm.DB, m *domain.Marquee) error {
	return db.WithContext(ctx).Create(m).Error
}

// GetMarquee fetches a marquee by id, or returns ErrNotFound.
func GetMarquee(ctx context.Context, db *gorm.DB, id int64) (*domain.Marquee, error) {
	return getByID[domain.Marquee](ctx, db, id)
}

// DeleteMarquee hard-deletes a marquee, or returns ErrNotFound.
func DeleteMarquee(ctx context.Context, db *gorm.DB, id int64) error {
	return deleteByID[domain.Marquee](ctx, db, id)
}

// ListPlaceholders returns placeholders ordered by id.
func ListPlaceholders(ctx context.Context, db *gorm.DB) ([]domain.Placeholder, error) {
	out := []domain.Placeholder{}
	if err := db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePlaceholder inserts p and fills in its generated id.
func CreatePlaceholder(ctx context.Context, db *gorm.DB, p *domain.Placeholder) error {
	return db.WithContext(ctx).Create(p).Error
}

// GetPlaceholder fetches a placeholder by id, or returns ErrNotFound.
func GetPlaceholder(ctx context.Context, db *gorm.DB, id int64) (*domain.Placeholder, error) {
	return getByID[domain.Placeholder](ctx, db, id)
}

// DeletePlaceholder hard-deletes a placeholder, or returns ErrNotFound.
func DeletePlaceholder(ctx context.Context, db *gorm.DB, id int64) error {
	return deleteByID[domain.Placeholder](ctx, db, id)
}
