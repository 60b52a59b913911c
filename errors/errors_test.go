package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapFormat(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(base, "Registry", "RegisterPack", "pack validation")

	require.Error(t, err)
	assert.Equal(t, "Registry.RegisterPack: pack validation failed: boom", err.Error())
	assert.True(t, errors.Is(err, base))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "a", "b", "c"))
	assert.NoError(t, WrapInvalid(nil, "a", "b", "c"))
	assert.NoError(t, WrapNotFound(nil, "a", "b", "c"))
	assert.NoError(t, WrapConflict(nil, "a", "b", "c"))
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		invalid   bool
		notFound  bool
		conflict  bool
		wantClass ErrorClass
	}{
		{
			name:      "wrapped invalid",
			err:       WrapInvalid(ErrMissingField, "Registry", "RegisterPack", "validation"),
			invalid:   true,
			wantClass: ErrorInvalid,
		},
		{
			name:      "wrapped not found",
			err:       WrapNotFound(ErrPackNotFound, "Registry", "UpdatePack", "lookup"),
			notFound:  true,
			wantClass: ErrorNotFound,
		},
		{
			name:      "wrapped conflict",
			err:       WrapConflict(ErrDuplicatePack, "Registry", "RegisterPack", "duplicate check"),
			conflict:  true,
			wantClass: ErrorConflict,
		},
		{
			name:      "bare sentinel duplicate",
			err:       fmt.Errorf("context: %w", ErrDuplicatePack),
			conflict:  true,
			wantClass: ErrorConflict,
		},
		{
			name:      "bare sentinel not found",
			err:       ErrPackNotFound,
			notFound:  true,
			wantClass: ErrorNotFound,
		},
		{
			name:      "unknown error defaults to invalid",
			err:       errors.New("mystery"),
			wantClass: ErrorInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, IsInvalid(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.conflict, IsConflict(tt.err))
			assert.Equal(t, tt.wantClass, Classify(tt.err))
		})
	}
}

func TestClassifiedErrorUnwrap(t *testing.T) {
	err := WrapConflict(ErrDuplicatePack, "Registry", "RegisterPack", "duplicate check")

	var ce *ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Registry", ce.Component)
	assert.Equal(t, "RegisterPack", ce.Operation)
	assert.True(t, errors.Is(err, ErrDuplicatePack))
}

func TestErrorClassString(t *testing.T) {
	assert.Equal(t, "invalid", ErrorInvalid.String())
	assert.Equal(t, "not_found", ErrorNotFound.String())
	assert.Equal(t, "conflict", ErrorConflict.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}
