// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// for conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gchan/gchan-backend/internal/domain"
)

// MessagesStats returns aggregate metadata for the board: the number of
// messages, the highest id, and the latest created timestamp.
//
// Ids are never reused and rows are never updated, so the triple changes
// whenever a message is inserted or deleted. When the table is empty the
// returned count and maxID are 0 and latest is nil.
func MessagesStats(ctx context.Context, db *gorm.DB) (count, maxID int64, latest *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Message{})

	if err = q.Count(&count).Error; err != nil {
		return 0, 0, nil, err
	}
	if count == 0 {
		return 0, 0, nil, nil
	}

	// Read the newest row instead of MAX(created), which SQLite returns as TEXT.
	var row struct {
		ID      int64
		Created time.Time
	}
	if err = db.WithContext(ctx).Model(&domain.Message{}).
		Select("id, created").Order("id DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, 0, nil, err
	}
	return count, row.ID, &row.Created, nil
}
