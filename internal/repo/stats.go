// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
)

// MaintenanceStats returns the number of maintenance rows matching f, the
// greatest id among them and their most recent UpdatedAt. When nothing
// matches, count and maxID are 0 and maxUpdatedAt is nil.
//
// The max id is part of the result because a delete followed by an insert
// can leave both count and the latest timestamp unchanged.
func MaintenanceStats(ctx context.Context, db *gorm.DB, f domain.MaintenanceFilter) (count int64, maxID uint, maxUpdatedAt *time.Time, err error) {
	if err = maintenanceQuery(db.WithContext(ctx), f).Count(&count).Error; err != nil {
		return 0, 0, nil, err
	}
	if count == 0 {
		return 0, 0, nil, nil
	}

	// Latest updated_at via ORDER BY (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = maintenanceQuery(db.WithContext(ctx), f).
		Select("updated_at").Order("updated_at DESC").Limit(1).
		Scan(&row).Error; err != nil {
		return 0, 0, nil, err
	}

	var idRow struct {
		ID uint
	}
	if err = maintenanceQuery(db.WithContext(ctx), f).
		Select("id").Order("id DESC").Limit(1).
		Scan(&idRow).Error; err != nil {
		return 0, 0, nil, err
	}
	return count, idRow.ID, &row.UpdatedAt, nil
}
