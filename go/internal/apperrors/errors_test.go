package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_WrappedErrors(t *testing.T) {
	base := Validation("quantity", "must not be negative, got %d", -1)
	wrapped := fmt.Errorf("record score: %w", base)

	assert.Equal(t, KindValidation, KindOf(wrapped))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsConflict(wrapped))
	assert.Equal(t, "quantity", FieldOf(wrapped))
	assert.Equal(t, "VALIDATION: quantity: must not be negative, got -1", base.Error())
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestTransaction_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Transaction("run draft", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, err.Retryable())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNotFound_Message(t *testing.T) {
	err := NotFound("league", 42)
	assert.Equal(t, "NOT_FOUND: league 42 not found", err.Error())
	assert.False(t, err.Retryable())
}
