// Package services – EquipmentService
//
// This file implements EquipmentService, which owns the lifecycle of
// equipment records: creation with input validation, lookup by exact name,
// listing, and deletion guarded by the maintenance relation. Store failures
// are reclassified into the service taxonomy (see errors.go); raw storage
// errors never reach the caller.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/repo"
)

// EquipmentInput carries the fields accepted when creating equipment.
// InsertedAt is optional and defaults to the creation time.
type EquipmentInput struct {
	Name       string
	Model      string
	Sector     string
	Impact     domain.Impact
	InsertedAt *time.Time
}

// EquipmentService implements the equipment use-cases on top of the
// repository functions. It opens its own transaction per mutating call.
type EquipmentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewEquipmentService constructs an EquipmentService.
func NewEquipmentService(db *gorm.DB) *EquipmentService {
	return &EquipmentService{DB: db}
}

// Create validates in and inserts a new equipment row.
//
// Errors:
//   - ConstraintViolation for a missing name, an impact outside
//     High/Medium/Low, or over-long model/sector.
//   - Duplicate when an equipment with the same name exists.
//   - CreationFailed for any other store failure.
func (s *EquipmentService) Create(ctx context.Context, in EquipmentInput) (v domain.EquipmentView, err error) {
	const op = "equipment.create"
	name := strings.TrimSpace(in.Name)
	ctx, span := start(ctx, op, attribute.String("equipment.name", name))
	defer span.End()
	defer func() { err = finish(ctx, span, op, name, err) }()

	e := domain.Equipment{
		Name:   name,
		Model:  strings.TrimSpace(in.Model),
		Sector: strings.TrimSpace(in.Sector),
		Impact: domain.Impact(strings.TrimSpace(string(in.Impact))),
	}
	if in.InsertedAt != nil {
		e.InsertedAt = in.InsertedAt.UTC()
	}

	if msg := validate(
		field{"name", e.Name, domain.MaxTextLen, true},
		field{"model", e.Model, domain.MaxTextLen, false},
		field{"sector", e.Sector, domain.MaxSectorLen, false},
	); msg != "" {
		return v, invalid(op, name, msg)
	}
	if !e.Impact.Valid() {
		return v, invalid(op, name, "impact must be one of High, Medium, Low")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreateEquipment(ctx, tx, &e)
	})
	switch {
	case err == nil:
		return domain.PresentEquipment(e), nil
	case errors.Is(err, repo.ErrDuplicateKey):
		return v, newError(KindDuplicate, op, name, fmt.Sprintf("equipment %q already exists", name), err)
	case errors.Is(err, repo.ErrConstraintViolation):
		return v, newError(KindConstraintViolation, op, name, "equipment violates a storage constraint", err)
	default:
		return v, newError(KindCreationFailed, op, name, "could not create equipment", err)
	}
}

// FindAll returns every equipment record. An empty store yields an empty
// list and a nil error.
func (s *EquipmentService) FindAll(ctx context.Context) (out []domain.EquipmentView, err error) {
	const op = "equipment.find_all"
	ctx, span := start(ctx, op)
	defer span.End()
	defer func() { err = finish(ctx, span, op, "", err) }()

	rows, err := repo.ListEquipment(ctx, s.DB)
	if err != nil {
		return nil, newError(KindTransientFailure, op, "", "could not list equipment", err)
	}
	return domain.PresentEquipmentList(rows), nil
}

// FindOne returns the equipment with exactly the given name. The name is
// trimmed like it is on create.
func (s *EquipmentService) FindOne(ctx context.Context, name string) (v domain.EquipmentView, err error) {
	const op = "equipment.find_one"
	name = strings.TrimSpace(name)
	ctx, span := start(ctx, op, attribute.String("equipment.name", name))
	defer span.End()
	defer func() { err = finish(ctx, span, op, name, err) }()

	e, err := repo.GetEquipment(ctx, s.DB, name)
	switch {
	case err == nil:
		return domain.PresentEquipment(*e), nil
	case errors.Is(err, repo.ErrNotFound):
		return v, newError(KindNotFound, op, name, fmt.Sprintf("equipment %q not found", name), err)
	default:
		return v, newError(KindTransientFailure, op, name, "could not load equipment", err)
	}
}

// Delete removes the named equipment and echoes the name back.
//
// The dependency check and the delete share one transaction, and the
// foreign key on maintenance.equipment_name rejects the delete if a row was
// linked concurrently; both paths yield DependencyExists and leave the
// equipment in place. NotFound is returned when nothing was removed.
func (s *EquipmentService) Delete(ctx context.Context, name string) (_ string, err error) {
	const op = "equipment.delete"
	name = strings.TrimSpace(name)
	ctx, span := start(ctx, op, attribute.String("equipment.name", name))
	defer span.End()
	defer func() { err = finish(ctx, span, op, name, err) }()

	linked := newError(KindDependencyExists, op, name,
		fmt.Sprintf("equipment %s is linked to ongoing maintenance", name), nil)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.CountMaintenanceForEquipment(ctx, tx, name)
		if err != nil {
			return err
		}
		if n > 0 {
			return linked
		}
		removed, err := repo.DeleteEquipment(ctx, tx, name)
		if err != nil {
			return err
		}
		if removed == 0 {
			return newError(KindNotFound, op, name, fmt.Sprintf("equipment %q not found", name), nil)
		}
		return nil
	})
	switch {
	case err == nil:
		return name, nil
	case KindOf(err) != "":
		return "", err
	case errors.Is(err, repo.ErrDependencyExists):
		linked.Err = err
		return "", linked
	default:
		return "", newError(KindTransientFailure, op, name, "could not delete equipment", err)
	}
}
