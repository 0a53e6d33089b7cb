// Package services defines the business rules for equipment, technicians and
// maintenance work-orders. This file centralizes the service-level error
// taxonomy so every operation reports failures the same way.
//
// Each failure carries a stable Kind (machine-checkable), the operation and
// key it concerns, a human-readable message and, where one exists, the
// underlying cause. Translation into HTTP status codes is performed by the
// handler layer.
package services

import (
	"errors"
	"fmt"
)

// Kind is the stable, machine-checkable category of a service failure.
type Kind string

// Failure kinds. The string values are exposed to clients as error codes.
const (
	KindNotFound            Kind = "not_found"
	KindDuplicate           Kind = "duplicate"
	KindConflict            Kind = "conflict"
	KindDependencyExists    Kind = "dependency_exists"
	KindForeignKeyViolation Kind = "foreign_key_violation"
	KindConstraintViolation Kind = "constraint_violation"
	KindCreationFailed      Kind = "creation_failed"
	KindTransientFailure    Kind = "transient_failure"
)

// Error is the failure value returned by every service method.
type Error struct {
	Kind Kind   // category
	Op   string // operation, e.g. "equipment.delete"
	Key  string // natural key or id the operation targeted
	Msg  string // human-readable message, safe to show to clients
	Err  error  // underlying cause, never shown to clients
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so callers can test with the
// sentinels below: errors.Is(err, services.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons, one per Kind.
var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrDuplicate           = &Error{Kind: KindDuplicate}
	ErrConflict            = &Error{Kind: KindConflict}
	ErrDependencyExists    = &Error{Kind: KindDependencyExists}
	ErrForeignKeyViolation = &Error{Kind: KindForeignKeyViolation}
	ErrConstraintViolation = &Error{Kind: KindConstraintViolation}
	ErrCreationFailed      = &Error{Kind: KindCreationFailed}
	ErrTransientFailure    = &Error{Kind: KindTransientFailure}
)

// KindOf returns the Kind of err, or "" when err is not a service error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// MessageOf returns the client-safe message of err. Non-service errors get a
// generic message so internal details never leak.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Msg != "" {
		return se.Msg
	}
	return "internal error"
}

func newError(kind Kind, op, key, msg string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Key: key, Msg: msg, Err: cause}
}

// invalid builds a ConstraintViolation for input rejected before any I/O.
func invalid(op, key, msg string) *Error {
	return newError(KindConstraintViolation, op, key, msg, nil)
}
