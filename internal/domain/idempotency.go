// Package domain defines the core persistence models for the application.
// These types are used by GORM for database schema mapping and are shared
// across the repository and service layers.
package domain

import "time"

// Idempotency records the outcome of a previously processed create request,
// keyed by (scope, key). Scope names the collection ("messages", "replies",
// ...), and ResourceID is the id of the row that request created. A retried
// POST carrying the same Idempotency-Key is answered with that row instead of
// inserting a duplicate.
type Idempotency struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Scope      string    `gorm:"type:varchar(32);not null;uniqueIndex:ux_scope_key,priority:1"`
	Key        string    `gorm:"type:varchar(200);not null;uniqueIndex:ux_scope_key,priority:2"`
	ResourceID int64     `gorm:"not null"`
	Status     int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }

// Expired reports whether the record can no longer be replayed at now.
func (i Idempotency) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
