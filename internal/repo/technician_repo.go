// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Technician model.
package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
)

// CreateTechnician inserts a new technician row. A duplicate registration
// number yields ErrDuplicateKey.
func CreateTechnician(ctx context.Context, db *gorm.DB, t *domain.Technician) error {
	return classify(db.WithContext(ctx).Create(t).Error)
}

// GetTechnician fetches a technician by registration number.
func GetTechnician(ctx context.Context, db *gorm.DB, registration string) (*domain.Technician, error) {
	var t domain.Technician
	if err := db.WithContext(ctx).Where("registration_number = ?", registration).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindTechnician returns the first technician whose name equals name OR whose
// registration number equals registration. Blank arguments do not take part
// in the match; when both are blank, ErrNotFound is returned. Rows are
// ordered by registration number so repeated names resolve deterministically.
func FindTechnician(ctx context.Context, db *gorm.DB, name, registration string) (*domain.Technician, error) {
	name, registration = strings.TrimSpace(name), strings.TrimSpace(registration)

	q := db.WithContext(ctx).Model(&domain.Technician{})
	switch {
	case name != "" && registration != "":
		q = q.Where("name = ? OR registration_number = ?", name, registration)
	case name != "":
		q = q.Where("name = ?", name)
	case registration != "":
		q = q.Where("registration_number = ?", registration)
	default:
		return nil, ErrNotFound
	}

	var t domain.Technician
	if err := q.Order("registration_number ASC").First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTechnicians returns every technician ordered by registration number.
func ListTechnicians(ctx context.Context, db *gorm.DB) ([]domain.Technician, error) {
	out := []domain.Technician{}
	err := db.WithContext(ctx).Order("registration_number ASC").Find(&out).Error
	return out, err
}

// DeleteTechnician removes the technician with the given registration number
// and reports how many rows were removed. A foreign key rejection is
// reported as ErrDependencyExists.
func DeleteTechnician(ctx context.Context, db *gorm.DB, registration string) (int64, error) {
	res := db.WithContext(ctx).Where("registration_number = ?", registration).Delete(&domain.Technician{})
	if res.Error != nil {
		return 0, classifyDelete(res.Error)
	}
	return res.RowsAffected, nil
}
