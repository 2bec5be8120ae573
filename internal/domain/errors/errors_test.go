package errors

import (
	"net/http"
	"testing"

	"smartfit/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrInvalidTransition.WithDetails("completed -> processing")

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.False(t, errors.Is(err, ErrOrderNotFound))
	assert.Equal(t, "This order cannot move to the requested status: completed -> processing", err.Error())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrOrderNotFound.WrapMessage("reading order")

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError_SurfacesStoreText(t *testing.T) {
	cause := errors.New("PERMISSION_DENIED")
	err := NewDatabaseExecuteError(cause, "update transactions/u1/o1")

	assert.Equal(t, "PERMISSION_DENIED", err.Message())
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.True(t, errors.Is(err, cause))
}

func TestFriendlyAuthMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "rest code", err: errors.New("googleapi: Error 400: EMAIL_EXISTS"), want: "This email is already registered"},
		{name: "sdk code", err: errors.New("auth/email-already-in-use"), want: "This email is already registered"},
		{name: "bad password", err: errors.New("INVALID_PASSWORD"), want: "Invalid email or password"},
		{name: "weak", err: errors.New("WEAK_PASSWORD : Password should be at least 6 characters"), want: "Password should be at least 6 characters"},
		{name: "unknown falls back to raw", err: errors.New("quota exceeded for project"), want: "quota exceeded for project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyAuthMessage(tt.err))
		})
	}
}

func TestNewAuthProviderError(t *testing.T) {
	err := NewAuthProviderError(errors.New("INVALID_EMAIL"))

	assert.True(t, errors.Is(err, ErrAuthProvider))
	assert.Equal(t, "Please enter a valid email address", err.Message())
	assert.Equal(t, "INVALID_EMAIL", err.Details())
}
