package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
)

func newMaintenance(eq, reg, status string) *domain.Maintenance {
	return &domain.Maintenance{
		EquipmentName:          eq,
		TechnicianRegistration: reg,
		Status:                 status,
		MaintenanceType:        "Corrective",
		Comment:                "belt",
		ExpectedCompletion:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateMaintenance_AssignsIDsInOrder(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")

	first := newMaintenance("Press-01", "T100", "Ready")
	first.ID = 42 // ignored
	if err := CreateMaintenance(ctx, db, first); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	second := newMaintenance("Press-01", "T100", "Queued")
	if err := CreateMaintenance(ctx, db, second); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", first.ID, second.ID)
	}

	got, err := GetMaintenance(ctx, db, 1)
	if err != nil {
		t.Fatalf("GetMaintenance: %v", err)
	}
	if got.Comment != "belt" || !got.ExpectedCompletion.Equal(first.ExpectedCompletion) {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestCreateMaintenance_ForeignKeys(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")

	if err := CreateMaintenance(ctx, db, newMaintenance("Ghost", "T100", "Queued")); !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation for unknown equipment, got %v", err)
	}
	if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T999", "Queued")); !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation for unknown technician, got %v", err)
	}
}

func TestCreateMaintenance_OneOpenPerEquipment(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")

	if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", "In Progress")); err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", "Queued")); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for second open row, got %v", err)
	}
	// Closed rows never conflict.
	for i := 0; i < 2; i++ {
		if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", "Ready")); err != nil {
			t.Fatalf("ready row %d: %v", i, err)
		}
	}
}

func TestGetMaintenance_NotFound(t *testing.T) {
	db := newRepoDB(t)
	if _, err := GetMaintenance(context.Background(), db, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMaintenance_Filters(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")
	seedParents(t, db, "Lathe-02", "T200")

	for _, m := range []*domain.Maintenance{
		newMaintenance("Press-01", "T100", "Ready"),
		newMaintenance("Press-01", "T200", "Queued"),
		newMaintenance("Lathe-02", "T100", "Queued"),
	} {
		if err := CreateMaintenance(ctx, db, m); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	cases := []struct {
		f    domain.MaintenanceFilter
		want []uint
	}{
		{domain.MaintenanceFilter{}, []uint{1, 2, 3}},
		{domain.MaintenanceFilter{Status: "Queued"}, []uint{2, 3}},
		{domain.MaintenanceFilter{EquipmentName: "Press-01"}, []uint{1, 2}},
		{domain.MaintenanceFilter{TechnicianRegistration: "T100", Status: "Queued"}, []uint{3}},
		{domain.MaintenanceFilter{Status: "queued"}, []uint{}},
	}
	for _, tc := range cases {
		got, err := ListMaintenance(ctx, db, tc.f)
		if err != nil {
			t.Fatalf("ListMaintenance(%+v): %v", tc.f, err)
		}
		if got == nil || len(got) != len(tc.want) {
			t.Fatalf("ListMaintenance(%+v) = %d rows, want %v", tc.f, len(got), tc.want)
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("ListMaintenance(%+v)[%d].ID = %d, want %d", tc.f, i, got[i].ID, id)
			}
		}
	}
}

func TestCountMaintenance(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")
	_ = CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", "Ready"))
	_ = CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", "Queued"))

	if n, err := CountMaintenanceForEquipment(ctx, db, "Press-01"); err != nil || n != 2 {
		t.Fatalf("CountMaintenanceForEquipment = (%d, %v)", n, err)
	}
	if n, err := CountMaintenanceForTechnician(ctx, db, "T100"); err != nil || n != 2 {
		t.Fatalf("CountMaintenanceForTechnician = (%d, %v)", n, err)
	}
	if n, err := CountMaintenanceForTechnician(ctx, db, "T999"); err != nil || n != 0 {
		t.Fatalf("CountMaintenanceForTechnician(missing) = (%d, %v)", n, err)
	}
}

func TestUpdateMaintenanceFields(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")
	seedParents(t, db, "Lathe-02", "T200")
	m := newMaintenance("Press-01", "T100", "Queued")
	if err := CreateMaintenance(ctx, db, m); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateMaintenanceFields(ctx, db, m.ID, nil); err != nil {
		t.Fatalf("empty update must be a no-op, got %v", err)
	}
	if err := UpdateMaintenanceFields(ctx, db, m.ID, map[string]any{"status": "Ready", "comment": "done"}); err != nil {
		t.Fatalf("UpdateMaintenanceFields: %v", err)
	}
	got, _ := GetMaintenance(ctx, db, m.ID)
	if got.Status != "Ready" || got.Comment != "done" || got.MaintenanceType != "Corrective" {
		t.Fatalf("unexpected row after update: %+v", got)
	}

	if err := UpdateMaintenanceFields(ctx, db, 404, map[string]any{"status": "Ready"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := UpdateMaintenanceFields(ctx, db, m.ID, map[string]any{"equipment_name": "Ghost"}); !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}

	// Reopening conflicts with another open row on the same equipment.
	if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T200", "Queued")); err != nil {
		t.Fatalf("seed open: %v", err)
	}
	if err := UpdateMaintenanceFields(ctx, db, m.ID, map[string]any{"status": "Queued"}); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestDeleteMaintenance(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")
	m := newMaintenance("Press-01", "T100", "Queued")
	_ = CreateMaintenance(ctx, db, m)

	if n, err := DeleteMaintenance(ctx, db, m.ID); err != nil || n != 1 {
		t.Fatalf("DeleteMaintenance = (%d, %v)", n, err)
	}
	if n, err := DeleteMaintenance(ctx, db, m.ID); err != nil || n != 0 {
		t.Fatalf("second DeleteMaintenance = (%d, %v)", n, err)
	}
}

func TestCreateMaintenance_ReadyInAnyCaseIsClosed(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	seedParents(t, db, "Press-01", "T100")

	for _, st := range []string{"ready", "READY", "Ready"} {
		if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", st)); err != nil {
			t.Fatalf("closed row %q: %v", st, err)
		}
	}
	if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", "QA review by ACME")); err != nil {
		t.Fatalf("open row: %v", err)
	}
	if err := CreateMaintenance(ctx, db, newMaintenance("Press-01", "T100", "queued")); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for second open row, got %v", err)
	}
}
