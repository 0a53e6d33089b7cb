package domain

import "time"

// MaintenancePatch lists every mutable Maintenance field as present (non-nil)
// or absent (nil). Only present fields are written by a partial update.
type MaintenancePatch struct {
	EquipmentName          *string
	TechnicianRegistration *string
	Status                 *string
	MaintenanceType        *string
	Comment                *string
	ExpectedCompletion     *time.Time
}

// IsEmpty reports whether no field is present.
func (p MaintenancePatch) IsEmpty() bool {
	return p.EquipmentName == nil &&
		p.TechnicianRegistration == nil &&
		p.Status == nil &&
		p.MaintenanceType == nil &&
		p.Comment == nil &&
		p.ExpectedCompletion == nil
}

// Columns returns the present fields keyed by column name, suitable for a
// GORM map update.
func (p MaintenancePatch) Columns() map[string]any {
	cols := make(map[string]any, 6)
	if p.EquipmentName != nil {
		cols["equipment_name"] = *p.EquipmentName
	}
	if p.TechnicianRegistration != nil {
		cols["technician_registration"] = *p.TechnicianRegistration
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.MaintenanceType != nil {
		cols["maintenance_type"] = *p.MaintenanceType
	}
	if p.Comment != nil {
		cols["comment"] = *p.Comment
	}
	if p.ExpectedCompletion != nil {
		cols["expected_completion"] = p.ExpectedCompletion.UTC()
	}
	return cols
}
