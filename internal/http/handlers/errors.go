// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and stable; clients branch on them rather
// than on messages. Service failures reuse the service error kind as the
// code, so "not_found", "duplicate", "conflict", "dependency_exists",
// "foreign_key_violation", "constraint_violation", "creation_failed" and
// "transient_failure" reach clients verbatim.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "dependency_exists",
//	  "message": "equipment Press-01 is linked to ongoing maintenance"
//	}
package handlers

import (
	"net/http"

	"github.com/tbourn/go-maintenance-backend/internal/services"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeDuplicate           = string(services.KindDuplicate)
	ErrCodeDependencyExists    = string(services.KindDependencyExists)
	ErrCodeForeignKeyViolation = string(services.KindForeignKeyViolation)
	ErrCodeConstraintViolation = string(services.KindConstraintViolation)
	ErrCodeCreationFailed      = string(services.KindCreationFailed)
	ErrCodeTransientFailure    = string(services.KindTransientFailure)
)

// kindStatus maps service error kinds onto HTTP statuses.
var kindStatus = map[services.Kind]int{
	services.KindNotFound:            http.StatusNotFound,
	services.KindDuplicate:           http.StatusConflict,
	services.KindConflict:            http.StatusConflict,
	services.KindDependencyExists:    http.StatusConflict,
	services.KindForeignKeyViolation: http.StatusUnprocessableEntity,
	services.KindConstraintViolation: http.StatusBadRequest,
	services.KindCreationFailed:      http.StatusInternalServerError,
	services.KindTransientFailure:    http.StatusServiceUnavailable,
}

// statusOf returns the HTTP status and code for a service error. Errors
// without a kind are internal errors.
func statusOf(err error) (int, string) {
	kind := services.KindOf(err)
	if st, ok := kindStatus[kind]; ok {
		return st, string(kind)
	}
	return http.StatusInternalServerError, ErrCodeInternal
}
