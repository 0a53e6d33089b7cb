// Package domain defines the core persistence models for the application.
// These types are used by GORM for database schema mapping and are shared
// across the repository and service layers.
package domain

import "time"

// Idempotency records the outcome of a previously processed create request,
// keyed by (scope, key). Scope is the route that produced the resource (for
// example "/api/v1/maintenance") and ResourceID the key of the created row,
// so a retried request can be answered with the original resource instead
// of inserting a duplicate.
type Idempotency struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	Scope      string    `gorm:"column:scope;type:varchar(200);not null;uniqueIndex:ux_idempotency_scope_key,priority:1"`
	Key        string    `gorm:"column:idem_key;type:varchar(200);not null;uniqueIndex:ux_idempotency_scope_key,priority:2"`
	ResourceID string    `gorm:"column:resource_id;type:varchar(140);not null"`
	Status     int       `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"column:expires_at;not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }

// Expired reports whether the record is no longer valid at now.
func (r Idempotency) Expired(now time.Time) bool { return !r.ExpiresAt.After(now) }
