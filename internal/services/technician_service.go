// Package services – TechnicianService
//
// This file implements TechnicianService: creation, listing, lookup by name
// OR registration number, and deletion guarded by the maintenance relation.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tbourn/go-maintenance-backend/internal/domain"
	"github.com/tbourn/go-maintenance-backend/internal/repo"
)

// TechnicianInput carries the fields accepted when creating a technician.
type TechnicianInput struct {
	Name               string
	RegistrationNumber string
	Shift              string
}

// TechnicianService implements the technician use-cases.
type TechnicianService struct {
	DB *gorm.DB
}

// NewTechnicianService constructs a TechnicianService.
func NewTechnicianService(db *gorm.DB) *TechnicianService {
	return &TechnicianService{DB: db}
}

// Create validates in and inserts a technician. A registration number that
// is already taken yields Duplicate.
func (s *TechnicianService) Create(ctx context.Context, in TechnicianInput) (v domain.TechnicianView, err error) {
	const op = "technician.create"
	reg := strings.TrimSpace(in.RegistrationNumber)
	ctx, span := start(ctx, op, attribute.String("technician.registration", reg))
	defer span.End()
	defer func() { err = finish(ctx, span, op, reg, err) }()

	t := domain.Technician{
		Name:               strings.TrimSpace(in.Name),
		RegistrationNumber: reg,
		Shift:              strings.TrimSpace(in.Shift),
	}
	if msg := validate(
		field{"name", t.Name, domain.MaxTextLen, true},
		field{"registration_number", t.RegistrationNumber, domain.MaxTextLen, true},
		field{"shift", t.Shift, domain.MaxTextLen, false},
	); msg != "" {
		return v, invalid(op, reg, msg)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreateTechnician(ctx, tx, &t)
	})
	switch {
	case err == nil:
		return domain.PresentTechnician(t), nil
	case errors.Is(err, repo.ErrDuplicateKey):
		return v, newError(KindDuplicate, op, reg, fmt.Sprintf("technician %q already exists", reg), err)
	case errors.Is(err, repo.ErrConstraintViolation):
		return v, newError(KindConstraintViolation, op, reg, "technician violates a storage constraint", err)
	default:
		return v, newError(KindCreationFailed, op, reg, "could not create technician", err)
	}
}

// FindAll returns every technician ordered by registration number.
func (s *TechnicianService) FindAll(ctx context.Context) (out []domain.TechnicianView, err error) {
	const op = "technician.find_all"
	ctx, span := start(ctx, op)
	defer span.End()
	defer func() { err = finish(ctx, span, op, "", err) }()

	rows, err := repo.ListTechnicians(ctx, s.DB)
	if err != nil {
		return nil, newError(KindTransientFailure, op, "", "could not list technicians", err)
	}
	return domain.PresentTechnicianList(rows), nil
}

// FindOne returns the technician matching name OR registration. At least
// one of the two must be non-blank.
func (s *TechnicianService) FindOne(ctx context.Context, name, registration string) (v domain.TechnicianView, err error) {
	const op = "technician.find_one"
	name, registration = strings.TrimSpace(name), strings.TrimSpace(registration)
	key := registration
	if key == "" {
		key = name
	}
	ctx, span := start(ctx, op,
		attribute.String("technician.name", name),
		attribute.String("technician.registration", registration),
	)
	defer span.End()
	defer func() { err = finish(ctx, span, op, key, err) }()

	if name == "" && registration == "" {
		return v, invalid(op, "", "name or registration_number is required")
	}

	t, err := repo.FindTechnician(ctx, s.DB, name, registration)
	switch {
	case err == nil:
		return domain.PresentTechnician(*t), nil
	case errors.Is(err, repo.ErrNotFound):
		return v, newError(KindNotFound, op, key, "technician not found", err)
	default:
		return v, newError(KindTransientFailure, op, key, "could not load technician", err)
	}
}

// Delete removes the technician with the given registration number and
// echoes it back. Semantics match EquipmentService.Delete.
func (s *TechnicianService) Delete(ctx context.Context, registration string) (_ string, err error) {
	const op = "technician.delete"
	registration = strings.TrimSpace(registration)
	ctx, span := start(ctx, op, attribute.String("technician.registration", registration))
	defer span.End()
	defer func() { err = finish(ctx, span, op, registration, err) }()

	linked := newError(KindDependencyExists, op, registration,
		fmt.Sprintf("technician %s is linked to ongoing maintenance", registration), nil)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.CountMaintenanceForTechnician(ctx, tx, registration)
		if err != nil {
			return err
		}
		if n > 0 {
			return linked
		}
		removed, err := repo.DeleteTechnician(ctx, tx, registration)
		if err != nil {
			return err
		}
		if removed == 0 {
			return newError(KindNotFound, op, registration, fmt.Sprintf("technician %q not found", registration), nil)
		}
		return nil
	})
	switch {
	case err == nil:
		return registration, nil
	case KindOf(err) != "":
		return "", err
	case errors.Is(err, repo.ErrDependencyExists):
		linked.Err = err
		return "", linked
	default:
		return "", newError(KindTransientFailure, op, registration, "could not delete technician", err)
	}
}
