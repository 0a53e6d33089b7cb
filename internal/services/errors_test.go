package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("wrapped: %w", newError(KindTransientFailure, "maintenance.delete", "3", "could not delete", cause))

	assert.ErrorIs(t, err, ErrTransientFailure)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindTransientFailure, KindOf(err))
	assert.Equal(t, "could not delete", MessageOf(err))
}

func TestError_Strings(t *testing.T) {
	e := &Error{Kind: KindNotFound, Op: "equipment.find_one", Msg: `equipment "x" not found`}
	assert.Equal(t, `equipment.find_one: equipment "x" not found`, e.Error())

	bare := &Error{Kind: KindConflict}
	assert.Equal(t, "conflict", bare.Error())

	withCause := &Error{Kind: KindCreationFailed, Msg: "could not create", Err: errors.New("boom")}
	assert.Equal(t, "could not create: boom", withCause.Error())
}

func TestKindOfAndMessageOf_NonServiceError(t *testing.T) {
	plain := errors.New("raw sql error")
	assert.Equal(t, Kind(""), KindOf(plain))
	assert.Equal(t, "internal error", MessageOf(plain))
	assert.Equal(t, "internal error", MessageOf(&Error{Kind: KindConflict}))
}
