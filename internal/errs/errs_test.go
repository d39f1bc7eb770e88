package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("adding expense: %w", errs.Invalid("amount", "must be positive"))

	assert.True(t, errs.IsValidation(err))
	assert.False(t, errs.IsStore(err))
	assert.Contains(t, err.Error(), "amount: must be positive")
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.Store("creating expense", cause)

	assert.True(t, errs.IsStore(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "creating expense: connection refused", err.Error())
}
