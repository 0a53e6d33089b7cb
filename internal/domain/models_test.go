package domain

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "domain.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&Equipment{}, &Technician{}, &Maintenance{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	if (Equipment{}).TableName() != "equipment" {
		t.Fatalf("Equipment.TableName() = %q", (Equipment{}).TableName())
	}
	if (Technician{}).TableName() != "technicians" {
		t.Fatalf("Technician.TableName() = %q", (Technician{}).TableName())
	}
	if (Maintenance{}).TableName() != "maintenance" {
		t.Fatalf("Maintenance.TableName() = %q", (Maintenance{}).TableName())
	}
}

func TestImpact_Valid(t *testing.T) {
	for _, ok := range []Impact{ImpactHigh, ImpactMedium, ImpactLow} {
		if !ok.Valid() {
			t.Fatalf("%q should be valid", ok)
		}
	}
	for _, bad := range []Impact{"", "high", "Alto", "Critical"} {
		if bad.Valid() {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}

func TestMigrations_IndexesExist(t *testing.T) {
	db := newDomainDB(t)
	m := db.Migrator()

	for _, tbl := range []any{&Equipment{}, &Technician{}, &Maintenance{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	for _, idx := range []string{"idx_maintenance_equipment", "idx_maintenance_technician", "idx_maintenance_status"} {
		if !m.HasIndex(&Maintenance{}, idx) {
			t.Fatalf("expected index %s on maintenance", idx)
		}
	}
}

func TestSchema_ImpactCheckRejectsUnknownValue(t *testing.T) {
	db := newDomainDB(t)

	bad := &Equipment{Name: "Lathe", Impact: "Critical", InsertedAt: time.Now()}
	if err := db.Create(bad).Error; err == nil {
		t.Fatalf("expected CHECK constraint to reject impact %q", bad.Impact)
	}
	var n int64
	db.Model(&Equipment{}).Count(&n)
	if n != 0 {
		t.Fatalf("row persisted despite constraint failure: count=%d", n)
	}
}

func TestSchema_SectorLengthCheck(t *testing.T) {
	db := newDomainDB(t)
	e := &Equipment{Name: "Drill", Sector: "ABCD", Impact: ImpactLow, InsertedAt: time.Now()}
	if err := db.Create(e).Error; err == nil {
		t.Fatalf("expected sector length check to fail for %q", e.Sector)
	}
}

func TestSchema_ForeignKeysRestrictDelete(t *testing.T) {
	db := newDomainDB(t)
	now := time.Now().UTC()

	if err := db.Create(&Equipment{Name: "Press-01", Impact: ImpactHigh, InsertedAt: now}).Error; err != nil {
		t.Fatalf("seed equipment: %v", err)
	}
	if err := db.Create(&Technician{Name: "Ana", RegistrationNumber: "T100", Shift: "Day"}).Error; err != nil {
		t.Fatalf("seed technician: %v", err)
	}
	mt := &Maintenance{
		EquipmentName:          "Press-01",
		TechnicianRegistration: "T100",
		Status:                 StatusInProgress,
		ExpectedCompletion:     now,
	}
	if err := db.Omit("Equipment", "Technician").Create(mt).Error; err != nil {
		t.Fatalf("seed maintenance: %v", err)
	}
	if mt.ID == 0 {
		t.Fatalf("expected auto-assigned id")
	}

	if err := db.Where("name = ?", "Press-01").Delete(&Equipment{}).Error; err == nil {
		t.Fatalf("expected FK to restrict deleting referenced equipment")
	}
	if err := db.Where("registration_number = ?", "T100").Delete(&Technician{}).Error; err == nil {
		t.Fatalf("expected FK to restrict deleting referenced technician")
	}

	// Unknown parent keys are rejected on insert.
	orphan := &Maintenance{EquipmentName: "ghost", TechnicianRegistration: "T100", Status: StatusQueued, ExpectedCompletion: now}
	if err := db.Omit("Equipment", "Technician").Create(orphan).Error; err == nil {
		t.Fatalf("expected FK violation for unknown equipment")
	}
}
