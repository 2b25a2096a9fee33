package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInputRead", ErrInputRead},
		{"ErrMissingIdentifier", ErrMissingIdentifier},
		{"ErrInvalidIdentifier", ErrInvalidIdentifier},
		{"ErrLookupFailed", ErrLookupFailed},
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrResolverUnavailable", ErrResolverUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrInputRead,
		ErrMissingIdentifier,
		ErrInvalidIdentifier,
		ErrLookupFailed,
		ErrNotFound,
		ErrInvalidInput,
		ErrUnsupportedType,
		ErrResolverUnavailable,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WrappedLookupKeepsCause tests that a lookup failure wraps both kinds
func TestErrors_WrappedLookupKeepsCause(t *testing.T) {
	err := fmt.Errorf("%w: AS%d: %w", ErrLookupFailed, 111111, ErrNotFound)

	assert.True(t, errors.Is(err, ErrLookupFailed))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidIdentifier))
	assert.Equal(t, "failed to lookup ASN: AS111111: not found", err.Error())
}

// TestErrors_ParseFailureIsNotNotFound tests that the two kinds never overlap
func TestErrors_ParseFailureIsNotNotFound(t *testing.T) {
	err := fmt.Errorf("%w: %q", ErrInvalidIdentifier, "ASXXX")

	assert.True(t, errors.Is(err, ErrInvalidIdentifier))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrLookupFailed))
}
