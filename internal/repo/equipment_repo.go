// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Equipment
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an equipment row is not found, functions return ErrNotFound
//     (gorm.ErrRecordNotFound).
//   - Integrity violations are wrapped with ErrDuplicateKey,
//     ErrForeignKeyViolation, ErrConstraintViolation or ErrDependencyExists.
//   - Other DB errors (connectivity, missing tables, ...) are propagated raw.
//
// Functions:
//
//   - CreateEquipment(ctx, db, e) -> error
//     Inserts a row; InsertedAt defaults to now (UTC) when zero.
//
//   - GetEquipment(ctx, db, name) -> *domain.Equipment, error
//     Exact, case-sensitive lookup by name.
//
//   - ListEquipment(ctx, db) -> []domain.Equipment, error
//     All rows ordered by name.
//
//   - DeleteEquipment(ctx, db, name) -> int64, error
//     Removes the row and reports how many rows were deleted (0 or 1).
//
// This repository is wrapped by services.EquipmentService, which enforces
// validation and the dependency check against maintenance rows.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
)

// CreateEquipment inserts a new Equipment row. If InsertedAt is zero it is
// set to the current UTC time. A duplicate name yields ErrDuplicateKey and
// an invalid impact or over-long column yields ErrConstraintViolation.
func CreateEquipment(ctx context.Context, db *gorm.DB, e *domain.Equipment) error {
	if e.InsertedAt.IsZero() {
		e.InsertedAt = time.Now().UTC()
	}
	return classify(db.WithContext(ctx).Create(e).Error)
}

// GetEquipment fetches a single equipment row by its exact name. If the
// record does not exist, it returns ErrNotFound.
func GetEquipment(ctx context.Context, db *gorm.DB, name string) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := db.WithContext(ctx).Where("name = ?", name).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEquipment returns every equipment row ordered by name. It returns an
// empty slice when the table is empty.
func ListEquipment(ctx context.Context, db *gorm.DB) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	err := db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

// DeleteEquipment removes the equipment row with the given name and returns
// the number of rows removed. A foreign key rejection (a maintenance row
// still references the equipment) is reported as ErrDependencyExists.
func DeleteEquipment(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	res := db.WithContext(ctx).Where("name = ?", name).Delete(&domain.Equipment{})
	if res.Error != nil {
		return 0, classifyDelete(res.Error)
	}
	return res.RowsAffected, nil
}
