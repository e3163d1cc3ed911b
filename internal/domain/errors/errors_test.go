package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_CopiesMatchCatalogEntry(t *testing.T) {
	detailed := ErrInsufficientStock.WithDetails("sku-42")
	renamed := ErrValidationFailed.WithMessage("Quantity must be positive")

	assert.ErrorIs(t, detailed, ErrInsufficientStock)
	assert.ErrorIs(t, renamed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrEmptyCart)

	assert.Equal(t, "Insufficient stock: sku-42", detailed.Error())
	assert.Empty(t, ErrInsufficientStock.Details(), "catalog entry must stay untouched")
	assert.Equal(t, "Validation failed", ErrValidationFailed.Message())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrOrderNotFound.WrapMessage("order lookup")

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, "order lookup: Order not found", err.Error())

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestConflictError(t *testing.T) {
	err := ConflictError("Slug")

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Slug already exists", err.Message())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	driver := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(driver, "failed to save cart")

	assert.ErrorIs(t, err, driver)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "failed to save cart")
}
