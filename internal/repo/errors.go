package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// Store-level constraint failures. Repository functions wrap the driver
// error with one of these so callers can test with errors.Is while the
// original cause stays reachable through errors.Unwrap.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrDependencyExists    = errors.New("dependent rows exist")
)

// Postgres SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// classify maps a driver error onto the store sentinels. Errors that are not
// integrity violations are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isDuplicate(err):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case isForeignKey(err):
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	case isCheck(err):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return err
}

// classifyDelete is classify for deletes of parent rows: a foreign key
// rejection there means a child row still references the parent.
func classifyDelete(err error) error {
	if err != nil && isForeignKey(err) {
		return fmt.Errorf("%w: %w", ErrDependencyExists, err)
	}
	return classify(err)
}

// glebarez/sqlite translates only some codes; the message checks cover the
// rest ("UNIQUE constraint failed", "FOREIGN KEY constraint failed",
// "CHECK constraint failed", "NOT NULL constraint failed").

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if code, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

func isForeignKey(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if code, ok := pgCode(err); ok {
		return code == pgForeignKeyViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func isCheck(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgCheckViolation || code == pgNotNullViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "not null constraint")
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}
