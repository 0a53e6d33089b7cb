// Package services – MaintenanceService
//
// This file implements MaintenanceService, the lifecycle manager for
// maintenance work-orders. It validates input, spells the conventional
// statuses canonically, maps store-level conflicts (one open work-order per
// equipment, unresolved foreign keys, constraint checks) onto the service
// taxonomy, applies partial updates atomically and supports idempotent
// creation.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// carry the maintenance id or equipment name where applicable.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/repo"
)

// IdempotencyScope namespaces idempotency keys used for maintenance creation.
const IdempotencyScope = "maintenance.create"

// DefaultIdempotencyTTL is used when MaintenanceService.IdempotencyTTL is unset.
const DefaultIdempotencyTTL = 24 * time.Hour

// MaintenanceInput carries the fields accepted when creating a work-order.
type MaintenanceInput struct {
	EquipmentName          string
	TechnicianRegistration string
	Status                 string
	MaintenanceType        string
	Comment                string
	ExpectedCompletion     time.Time
}

// MaintenanceService coordinates maintenance persistence and rules.
type MaintenanceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// IdempotencyTTL bounds how long an Idempotency-Key replays its result.
	IdempotencyTTL time.Duration
}

// NewMaintenanceService constructs a MaintenanceService with the default
// idempotency window.
func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{DB: db, IdempotencyTTL: DefaultIdempotencyTTL}
}

// Create validates in and inserts a work-order, returning its view with the
// assigned id.
//
// Errors:
//   - ConstraintViolation for missing or over-long fields.
//   - Conflict when the equipment already has an open work-order.
//   - ForeignKeyViolation when the equipment or technician does not exist.
//   - CreationFailed for any other store failure.
func (s *MaintenanceService) Create(ctx context.Context, in MaintenanceInput) (v domain.MaintenanceView, err error) {
	const op = "maintenance.create"
	m, msg := prepareMaintenance(in)
	ctx, span := start(ctx, op, attribute.String("equipment.name", m.EquipmentName))
	defer span.End()
	defer func() { err = finish(ctx, span, op, m.EquipmentName, err) }()

	if msg != "" {
		return v, invalid(op, m.EquipmentName, msg)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreateMaintenance(ctx, tx, &m)
	})
	if err != nil {
		return v, createError(op, m.EquipmentName, err)
	}
	return domain.PresentMaintenance(m), nil
}

// CreateIdempotent behaves like Create, but when key is non-blank the new id
// is recorded under key in the same transaction. A repeated key within the
// TTL returns the originally created work-order with replayed=true instead of
// inserting again. If that work-order has since been deleted, NotFound is
// returned.
func (s *MaintenanceService) CreateIdempotent(ctx context.Context, key string, in MaintenanceInput) (v domain.MaintenanceView, replayed bool, err error) {
	key = strings.TrimSpace(key)
	if key == "" {
		v, err = s.Create(ctx, in)
		return v, false, err
	}

	const op = "maintenance.create_idempotent"
	m, msg := prepareMaintenance(in)
	ctx, span := start(ctx, op,
		attribute.String("equipment.name", m.EquipmentName),
		attribute.String("idempotency.key", key),
	)
	defer span.End()
	defer func() { err = finish(ctx, span, op, key, err) }()

	ttl := s.IdempotencyTTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if _, err := repo.PurgeExpiredIdempotency(ctx, tx, IdempotencyScope, key, now); err != nil {
			return err
		}
		rec, err := repo.GetIdempotency(ctx, tx, IdempotencyScope, key, now)
		if err == nil {
			replayed = true
			id, perr := strconv.ParseUint(rec.ResourceID, 10, 64)
			if perr != nil {
				return perr
			}
			prev, gerr := repo.GetMaintenance(ctx, tx, uint(id))
			if gerr != nil {
				return gerr
			}
			m = *prev
			return nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		if msg != "" {
			return invalid(op, m.EquipmentName, msg)
		}
		if err := repo.CreateMaintenance(ctx, tx, &m); err != nil {
			return createError(op, m.EquipmentName, err)
		}
		_, err = repo.CreateIdempotency(ctx, tx, IdempotencyScope, key,
			strconv.FormatUint(uint64(m.ID), 10), http.StatusCreated, ttl)
		if errors.Is(err, repo.ErrDuplicate) {
			return newError(KindConflict, op, key, "idempotency key is already in use", err)
		}
		return err
	})
	switch {
	case err == nil:
		return domain.PresentMaintenance(m), replayed, nil
	case KindOf(err) != "":
		return v, false, err
	case replayed && errors.Is(err, repo.ErrNotFound):
		return v, false, newError(KindNotFound, op, key, "the work-order created with this key no longer exists", err)
	default:
		return v, false, newError(KindCreationFailed, op, key, "could not create maintenance", err)
	}
}

// IdempotencyExists reports whether key still maps to a created work-order
// at now.
func (s *MaintenanceService) IdempotencyExists(ctx context.Context, key string, now time.Time) (bool, error) {
	_, err := repo.GetIdempotency(ctx, s.DB, IdempotencyScope, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// FindByStatus returns the work-orders whose status equals the trimmed
// argument exactly. No match yields an empty list.
func (s *MaintenanceService) FindByStatus(ctx context.Context, status string) ([]domain.MaintenanceView, error) {
	return s.List(ctx, domain.MaintenanceFilter{Status: status})
}

// FindAll returns every work-order ordered by id.
func (s *MaintenanceService) FindAll(ctx context.Context) ([]domain.MaintenanceView, error) {
	return s.List(ctx, domain.MaintenanceFilter{})
}

// List returns the work-orders matching f ordered by id. Filters are trimmed
// and then match exactly.
func (s *MaintenanceService) List(ctx context.Context, f domain.MaintenanceFilter) (out []domain.MaintenanceView, err error) {
	const op = "maintenance.list"
	f = normalizeFilter(f)
	ctx, span := start(ctx, op,
		attribute.String("filter.status", f.Status),
		attribute.String("filter.equipment_name", f.EquipmentName),
		attribute.String("filter.technician_registration", f.TechnicianRegistration),
	)
	defer span.End()
	defer func() { err = finish(ctx, span, op, f.Status, err) }()

	rows, err := repo.ListMaintenance(ctx, s.DB, f)
	if err != nil {
		return nil, newError(KindTransientFailure, op, "", "could not list maintenance", err)
	}
	return domain.PresentMaintenanceList(rows), nil
}

// Stats returns the count, greatest id and latest update time of the
// work-orders matching f, for conditional responses.
func (s *MaintenanceService) Stats(ctx context.Context, f domain.MaintenanceFilter) (count int64, maxID uint, maxUpdatedAt *time.Time, err error) {
	count, maxID, maxUpdatedAt, err = repo.MaintenanceStats(ctx, s.DB, normalizeFilter(f))
	if err != nil {
		return 0, 0, nil, newError(KindTransientFailure, "maintenance.stats", "", "could not compute maintenance stats", err)
	}
	return count, maxID, maxUpdatedAt, nil
}

// FindOne returns the work-order with the given id.
func (s *MaintenanceService) FindOne(ctx context.Context, id uint) (v domain.MaintenanceView, err error) {
	const op = "maintenance.find_one"
	key := idKey(id)
	ctx, span := start(ctx, op, attribute.Int64("maintenance.id", int64(id)))
	defer span.End()
	defer func() { err = finish(ctx, span, op, key, err) }()

	m, err := repo.GetMaintenance(ctx, s.DB, id)
	switch {
	case err == nil:
		return domain.PresentMaintenance(*m), nil
	case errors.Is(err, repo.ErrNotFound):
		return v, newError(KindNotFound, op, key, fmt.Sprintf("maintenance %d not found", id), err)
	default:
		return v, newError(KindTransientFailure, op, key, "could not load maintenance", err)
	}
}

// PartialUpdate applies the present fields of p to the work-order with the
// given id and returns the updated view. Absent fields keep their values; an
// empty patch returns the row unchanged.
//
// The load, update and reload run in one transaction, so a failure leaves
// the row exactly as it was. An empty patch returns the row without writing. Conflict, ForeignKeyViolation and
// ConstraintViolation keep their kinds; any other storage failure is
// reported as TransientFailure wrapping the cause.
func (s *MaintenanceService) PartialUpdate(ctx context.Context, id uint, p domain.MaintenancePatch) (v domain.MaintenanceView, err error) {
	const op = "maintenance.partial_update"
	key := idKey(id)
	ctx, span := start(ctx, op, attribute.Int64("maintenance.id", int64(id)))
	defer span.End()
	defer func() { err = finish(ctx, span, op, key, err) }()

	p = normalizePatch(p)
	if msg := validatePatch(p); msg != "" {
		return v, invalid(op, key, msg)
	}

	var m *domain.Maintenance
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if m, err = repo.GetMaintenance(ctx, tx, id); err != nil || p.IsEmpty() {
			return err
		}
		if err := repo.UpdateMaintenanceFields(ctx, tx, id, p.Columns()); err != nil {
			return err
		}
		m, err = repo.GetMaintenance(ctx, tx, id)
		return err
	})
	switch {
	case err == nil:
		return domain.PresentMaintenance(*m), nil
	case errors.Is(err, repo.ErrNotFound):
		return v, newError(KindNotFound, op, key, fmt.Sprintf("maintenance %d not found", id), err)
	case errors.Is(err, repo.ErrDuplicateKey):
		return v, newError(KindConflict, op, key, "the equipment already has an open maintenance", err)
	case errors.Is(err, repo.ErrForeignKeyViolation):
		return v, newError(KindForeignKeyViolation, op, key, "equipment or technician does not exist", err)
	case errors.Is(err, repo.ErrConstraintViolation):
		return v, newError(KindConstraintViolation, op, key, "maintenance violates a storage constraint", err)
	default:
		return v, newError(KindTransientFailure, op, key, "update failed and was rolled back", err)
	}
}

// Delete removes the work-order with the given id and echoes the id back.
func (s *MaintenanceService) Delete(ctx context.Context, id uint) (_ uint, err error) {
	const op = "maintenance.delete"
	key := idKey(id)
	ctx, span := start(ctx, op, attribute.Int64("maintenance.id", int64(id)))
	defer span.End()
	defer func() { err = finish(ctx, span, op, key, err) }()

	var removed int64
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = repo.DeleteMaintenance(ctx, tx, id)
		return err
	})
	if err != nil {
		return 0, newError(KindTransientFailure, op, key, "could not delete maintenance", err)
	}
	if removed == 0 {
		return 0, newError(KindNotFound, op, key, fmt.Sprintf("maintenance %d not found", id), nil)
	}
	return id, nil
}

// prepareMaintenance normalizes in into a row and validates it. The returned message
// is empty when the input is acceptable.
func prepareMaintenance(in MaintenanceInput) (domain.Maintenance, string) {
	m := domain.Maintenance{
		EquipmentName:          strings.TrimSpace(in.EquipmentName),
		TechnicianRegistration: strings.TrimSpace(in.TechnicianRegistration),
		Status:                 canonicalStatus(in.Status),
		MaintenanceType:        strings.TrimSpace(in.MaintenanceType),
		Comment:                strings.TrimSpace(in.Comment),
		ExpectedCompletion:     in.ExpectedCompletion.UTC(),
	}
	msg := validate(
		field{"equipment_name", m.EquipmentName, domain.MaxTextLen, true},
		field{"technician_registration", m.TechnicianRegistration, domain.MaxTextLen, true},
		field{"status", m.Status, domain.MaxTextLen, true},
		field{"maintenance_type", m.MaintenanceType, domain.MaxTextLen, true},
		field{"comment", m.Comment, domain.MaxTextLen, false},
	)
	if msg == "" && in.ExpectedCompletion.IsZero() {
		msg = "expected_completion is required"
	}
	return m, msg
}

func createError(op, key string, err error) error {
	switch {
	case errors.Is(err, repo.ErrDuplicateKey):
		return newError(KindConflict, op, key, fmt.Sprintf("equipment %s is already under maintenance", key), err)
	case errors.Is(err, repo.ErrForeignKeyViolation):
		return newError(KindForeignKeyViolation, op, key, "equipment or technician does not exist", err)
	case errors.Is(err, repo.ErrConstraintViolation):
		return newError(KindConstraintViolation, op, key, "maintenance violates a storage constraint", err)
	default:
		return newError(KindCreationFailed, op, key, "could not create maintenance", err)
	}
}

func normalizeFilter(f domain.MaintenanceFilter) domain.MaintenanceFilter {
	return domain.MaintenanceFilter{
		Status:                 strings.TrimSpace(f.Status),
		EquipmentName:          strings.TrimSpace(f.EquipmentName),
		TechnicianRegistration: strings.TrimSpace(f.TechnicianRegistration),
	}
}

func normalizePatch(p domain.MaintenancePatch) domain.MaintenancePatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	p.EquipmentName = trim(p.EquipmentName)
	p.TechnicianRegistration = trim(p.TechnicianRegistration)
	p.MaintenanceType = trim(p.MaintenanceType)
	p.Comment = trim(p.Comment)
	if p.Status != nil {
		st := canonicalStatus(*p.Status)
		p.Status = &st
	}
	return p
}

func validatePatch(p domain.MaintenancePatch) string {
	var fields []field
	add := func(name string, v *string, required bool) {
		if v != nil {
			fields = append(fields, field{name, *v, domain.MaxTextLen, required})
		}
	}
	add("equipment_name", p.EquipmentName, true)
	add("technician_registration", p.TechnicianRegistration, true)
	add("status", p.Status, true)
	add("maintenance_type", p.MaintenanceType, true)
	add("comment", p.Comment, false)
	if msg := validate(fields...); msg != "" {
		return msg
	}
	if p.ExpectedCompletion != nil && p.ExpectedCompletion.IsZero() {
		return "expected_completion must not be empty"
	}
	return ""
}

// conventionalStatuses are spelled canonically on write.
var conventionalStatuses = []string{
	domain.StatusInProgress,
	domain.StatusQueued,
	domain.StatusReady,
	domain.StatusAwaitingParts,
}

// canonicalStatus trims s. When the text names a conventional status,
// ignoring case and inner spacing, the canonical spelling is returned so
// "awaiting  parts" is stored as "Awaiting Parts". Any other status is kept
// exactly as given.
func canonicalStatus(s string) string {
	s = strings.TrimSpace(s)
	fold := cases.Fold()
	folded := fold.String(strings.Join(strings.Fields(s), " "))
	for _, c := range conventionalStatuses {
		if folded == fold.String(c) {
			return c
		}
	}
	return s
}

func idKey(id uint) string { return strconv.FormatUint(uint64(id), 10) }
