package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "wrapped ErrNotFound", err: fmt.Errorf("find tour: %w", ErrNotFound), expected: true},
		{name: "ErrInvalidID", err: ErrInvalidID, expected: false},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsIntegrityViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("boom"), expected: false},
		{name: "ErrIntegrityViolation", err: ErrIntegrityViolation, expected: true},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: true},
		{name: "ErrInvalidEntity", err: ErrInvalidEntity, expected: true},
		{
			name:     "wrapped duplicate",
			err:      fmt.Errorf("%w: guides_email_key", ErrDuplicate),
			expected: true,
		},
		{name: "ErrNotFound", err: ErrNotFound, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsIntegrityViolation(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("tour", "save", "upsert failed", ErrDuplicate)

		assert.Equal(t, "save operation on tour failed: upsert failed: data integrity violation: entity already exists", err.Error())
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.True(t, IsIntegrityViolation(err))
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("guide", "delete", "no rows", nil)

		assert.Equal(t, "delete operation on guide failed: no rows", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
