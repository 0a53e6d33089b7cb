// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they bind and validate the request shape,
// call an application service and translate the result (or the service
// error kind) into an HTTP response.
package handlers

import (
	"context"
	"time"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// EquipmentService defines the equipment operations consumed by handlers.
type EquipmentService interface {
	Create(ctx context.Context, in services.EquipmentInput) (domain.EquipmentView, error)
	FindAll(ctx context.Context) ([]domain.EquipmentView, error)
	FindOne(ctx context.Context, name string) (domain.EquipmentView, error)
	// Delete returns the name of the removed equipment.
	Delete(ctx context.Context, name string) (string, error)
}

// TechnicianService defines the technician operations consumed by handlers.
type TechnicianService interface {
	Create(ctx context.Context, in services.TechnicianInput) (domain.TechnicianView, error)
	FindAll(ctx context.Context) ([]domain.TechnicianView, error)
	// FindOne matches on name OR registration number.
	FindOne(ctx context.Context, name, registration string) (domain.TechnicianView, error)
	// Delete returns the registration number of the removed technician.
	Delete(ctx context.Context, registration string) (string, error)
}

// MaintenanceService defines the work-order operations consumed by handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MaintenanceService interface {
	// CreateIdempotent creates a work-order. A non-blank key that was
	// already used returns the original work-order with replayed=true.
	CreateIdempotent(ctx context.Context, key string, in services.MaintenanceInput) (domain.MaintenanceView, bool, error)
	FindByStatus(ctx context.Context, status string) ([]domain.MaintenanceView, error)
	List(ctx context.Context, f domain.MaintenanceFilter) ([]domain.MaintenanceView, error)
	// Stats backs the list ETag.
	Stats(ctx context.Context, f domain.MaintenanceFilter) (count int64, maxID uint, maxUpdatedAt *time.Time, err error)
	FindOne(ctx context.Context, id uint) (domain.MaintenanceView, error)
	PartialUpdate(ctx context.Context, id uint, p domain.MaintenancePatch) (domain.MaintenanceView, error)
	// Delete returns the id of the removed work-order.
	Delete(ctx context.Context, id uint) (uint, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for equipment, technicians and maintenance.
type Handlers struct {
	equipSvc EquipmentService
	techSvc  TechnicianService
	maintSvc MaintenanceService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(equipSvc EquipmentService, techSvc TechnicianService, maintSvc MaintenanceService) *Handlers {
	return &Handlers{equipSvc: equipSvc, techSvc: techSvc, maintSvc: maintSvc}
}
