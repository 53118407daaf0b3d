package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("bad input")))
	assert.True(t, IsNotFound(NewNotFoundError("user")))
	assert.True(t, IsConflict(NewConflictError("taken")))
	assert.True(t, IsDatabase(NewDatabaseError("put", errors.New("boom"))))

	assert.False(t, IsValidation(NewNotFoundError("user")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NewValidationError("x"), http.StatusBadRequest},
		{NewNotFoundError("x"), http.StatusNotFound},
		{NewConflictError("x"), http.StatusConflict},
		{NewUnauthorizedError(""), http.StatusUnauthorized},
		{NewInternalError("x"), http.StatusInternalServerError},
		{NewTimeoutError("x"), http.StatusRequestTimeout},
		{NewDatabaseError("x", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus, tt.err.Error())
	}
}

func TestDuplicateUserError(t *testing.T) {
	err := NewDuplicateUserError("alice@example.com")

	assert.True(t, IsConflict(err))
	assert.True(t, IsDuplicateUser(err))
	assert.Equal(t, CodeDuplicateUser, err.Code)
	assert.Contains(t, err.Message, "alice@example.com")

	// A plain conflict is not a duplicate-user error
	assert.False(t, IsDuplicateUser(NewConflictError("other conflict")))
}

func TestCorruptRecordError(t *testing.T) {
	cause := errors.New("parsing time")
	err := NewCorruptRecordError("user-1", cause)

	assert.Equal(t, ErrorTypeInternal, err.Type)
	assert.Equal(t, CodeCorruptRecord, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestWrapPreservesAppError(t *testing.T) {
	inner := NewNotFoundError("user")
	wrapped := Wrap(inner, "loading profile")

	require.True(t, IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "loading profile")
}

func TestWrapPlainError(t *testing.T) {
	inner := errors.New("boom")
	wrapped := Wrap(inner, "saving")

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))
}

func TestErrorThroughFmtWrapping(t *testing.T) {
	inner := NewConflictError("taken")
	wrapped := fmt.Errorf("outer: %w", inner)

	assert.True(t, IsConflict(wrapped))
}
