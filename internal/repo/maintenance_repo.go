// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Maintenance model.
//
// Writes never touch the Equipment/Technician association fields: the
// relationship is carried by the foreign key columns alone, and the store's
// constraints decide whether the referenced rows exist.
//
// Error semantics:
//   - ErrNotFound for missing rows (gets, field updates).
//   - ErrDuplicateKey when a second open maintenance row is inserted for the
//     same equipment (partial unique index ux_maintenance_open_equipment).
//   - ErrForeignKeyViolation when equipment_name or technician_registration
//     does not reference an existing row.
//   - ErrConstraintViolation for CHECK / NOT NULL failures.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
)

// CreateMaintenance inserts m and fills in its auto-assigned ID.
func CreateMaintenance(ctx context.Context, db *gorm.DB, m *domain.Maintenance) error {
	m.ID = 0
	m.ExpectedCompletion = m.ExpectedCompletion.UTC()
	return classify(db.WithContext(ctx).Omit(clause.Associations).Create(m).Error)
}

// GetMaintenance fetches a maintenance row by id.
func GetMaintenance(ctx context.Context, db *gorm.DB, id uint) (*domain.Maintenance, error) {
	var m domain.Maintenance
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMaintenance returns the rows matching f ordered by id. Empty filter
// fields are ignored. No match yields an empty slice and a nil error.
func ListMaintenance(ctx context.Context, db *gorm.DB, f domain.MaintenanceFilter) ([]domain.Maintenance, error) {
	out := []domain.Maintenance{}
	err := maintenanceQuery(db.WithContext(ctx), f).Order("id ASC").Find(&out).Error
	return out, err
}

// CountMaintenanceForEquipment returns how many maintenance rows reference
// the equipment, whatever their status.
func CountMaintenanceForEquipment(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Maintenance{}).
		Where("equipment_name = ?", name).
		Count(&n).Error
	return n, err
}

// CountMaintenanceForTechnician returns how many maintenance rows reference
// the technician.
func CountMaintenanceForTechnician(ctx context.Context, db *gorm.DB, registration string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Maintenance{}).
		Where("technician_registration = ?", registration).
		Count(&n).Error
	return n, err
}

// UpdateMaintenanceFields writes only the given columns of the row with the
// given id. An empty column map is a no-op. If no row matches, ErrNotFound is
// returned.
func UpdateMaintenanceFields(ctx context.Context, db *gorm.DB, id uint, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	res := db.WithContext(ctx).
		Model(&domain.Maintenance{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMaintenance removes the row with the given id and reports how many
// rows were removed.
func DeleteMaintenance(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Maintenance{})
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	return res.RowsAffected, nil
}

func maintenanceQuery(db *gorm.DB, f domain.MaintenanceFilter) *gorm.DB {
	q := db.Model(&domain.Maintenance{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.EquipmentName != "" {
		q = q.Where("equipment_name = ?", f.EquipmentName)
	}
	if f.TechnicianRegistration != "" {
		q = q.Where("technician_registration = ?", f.TechnicianRegistration)
	}
	return q
}
