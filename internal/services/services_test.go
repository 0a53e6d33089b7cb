package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tbourn/go-maintenance-backend/internal/repo"
)

// newTestDB opens a migrated SQLite database in a temp dir.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "services_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(db) })
	require.NoError(t, repo.AutoMigrate(db))
	return db
}

type testServices struct {
	db          *gorm.DB
	equipment   *EquipmentService
	technicians *TechnicianService
	maintenance *MaintenanceService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	db := newTestDB(t)
	return testServices{
		db:          db,
		equipment:   NewEquipmentService(db),
		technicians: NewTechnicianService(db),
		maintenance: NewMaintenanceService(db),
	}
}
