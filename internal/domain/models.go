// Package domain defines the persistence models for equipment, technicians
// and maintenance work-orders. These types are mapped with GORM and form the
// core data layer of the maintenance tracker.
//
// Equipment and technicians are keyed by their natural identifiers (the
// equipment name and the technician registration number). Maintenance rows
// reference both through foreign keys that restrict deletion of the parent.
package domain

import (
	"time"
)

// Impact is the production impact of a piece of equipment going down.
type Impact string

// Allowed Impact values. The set is also enforced by a CHECK constraint on
// the equipment table.
const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Valid reports whether i is one of the three allowed impact levels.
func (i Impact) Valid() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	}
	return false
}

// Conventional maintenance statuses. Status is free-form text, but these are
// the values clients are expected to use. StatusReady marks a closed
// work-order: only non-Ready rows count as open maintenance.
const (
	StatusInProgress    = "In Progress"
	StatusQueued        = "Queued"
	StatusReady         = "Ready"
	StatusAwaitingParts = "Awaiting Parts"
)

// Column length limits shared by validation and the schema checks.
const (
	MaxTextLen   = 140
	MaxSectorLen = 3
)

// Equipment represents a tracked machine or asset eligible for maintenance.
//
// Fields:
//   - Name: natural primary key, case-sensitive, 1–140 chars.
//   - Model: equipment model, up to 140 chars.
//   - Sector: plant sector code, up to 3 chars.
//   - Impact: High | Medium | Low (enforced by DB constraint).
//   - InsertedAt: creation time; filled in by the repository when zero.
type Equipment struct {
	Name       string    `json:"name"        gorm:"column:name;type:varchar(140);primaryKey;check:length(name) BETWEEN 1 AND 140"`
	Model      string    `json:"model"       gorm:"column:model;type:varchar(140);not null;default:'';check:length(model) <= 140"`
	Sector     string    `json:"sector"      gorm:"column:sector;type:varchar(3);not null;default:'';check:length(sector) <= 3"`
	Impact     Impact    `json:"impact"      gorm:"column:impact;type:varchar(6);not null;check:impact IN ('High','Medium','Low')"`
	InsertedAt time.Time `json:"inserted_at" gorm:"column:inserted_at;not null"`
}

// TableName returns the database table name for Equipment.
func (Equipment) TableName() string { return "equipment" }

// Technician is a staff member who can be assigned maintenance work.
// RegistrationNumber is the natural primary key.
type Technician struct {
	Name               string `json:"name"                gorm:"column:name;type:varchar(140);not null;default:'';check:length(name) <= 140"`
	RegistrationNumber string `json:"registration_number" gorm:"column:registration_number;type:varchar(140);primaryKey;check:length(registration_number) BETWEEN 1 AND 140"`
	Shift              string `json:"shift"               gorm:"column:shift;type:varchar(140);not null;default:'';check:length(shift) <= 140"`
}

// TableName returns the database table name for Technician.
func (Technician) TableName() string { return "technicians" }

// Maintenance is a work-order linking one Equipment and one Technician.
//
// At most one open (status other than Ready) row may exist per equipment;
// this is enforced by a partial unique index created in repo.AutoMigrate.
//
// The Equipment and Technician fields only describe the foreign keys to
// GORM so the constraints are emitted on migration. They are never loaded
// or written: relationships are resolved by key at query time.
type Maintenance struct {
	ID                     uint      `json:"id"                      gorm:"column:id;primaryKey;autoIncrement"`
	EquipmentName          string    `json:"equipment_name"          gorm:"column:equipment_name;type:varchar(140);not null;index:idx_maintenance_equipment"`
	TechnicianRegistration string    `json:"technician_registration" gorm:"column:technician_registration;type:varchar(140);not null;index:idx_maintenance_technician"`
	Status                 string    `json:"status"                  gorm:"column:status;type:varchar(140);not null;index:idx_maintenance_status;check:length(status) <= 140"`
	MaintenanceType        string    `json:"maintenance_type"        gorm:"column:maintenance_type;type:varchar(140);not null;default:'';check:length(maintenance_type) <= 140"`
	Comment                string    `json:"comment"                 gorm:"column:comment;type:varchar(140);not null;default:'';check:length(comment) <= 140"`
	ExpectedCompletion     time.Time `json:"expected_completion"     gorm:"column:expected_completion;not null"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`

	Equipment  Equipment  `json:"-" gorm:"foreignKey:EquipmentName;references:Name;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Technician Technician `json:"-" gorm:"foreignKey:TechnicianRegistration;references:RegistrationNumber;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Maintenance.
func (Maintenance) TableName() string { return "maintenance" }

// MaintenanceFilter narrows a maintenance listing. Empty fields are ignored;
// non-empty fields must match exactly.
type MaintenanceFilter struct {
	Status                 string
	EquipmentName          string
	TechnicianRegistration string
}
