package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	mockUC "smartfit/internal/mocks/usecase"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		query     string
		wantToken string
		wantOK    bool
	}{
		{name: "bearer header", header: "Bearer abc", wantToken: "abc", wantOK: true},
		{name: "scheme is case insensitive", header: "bearer abc", wantToken: "abc", wantOK: true},
		{name: "basic scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer  "},
		{name: "no scheme", header: "abc"},
		{name: "query fallback", query: "?access_token=xyz", wantToken: "xyz", wantOK: true},
		{name: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/stream"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			token, ok := bearerToken(c)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	session := mockUC.NewMockSessionUsecase(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{SessionUC: session})

	state := &usecase.AuthState{
		Authenticated: true,
		Role:          entity.RoleEmployee,
		UserID:        "emp-1",
		Actor:         entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee, ShopID: "shop-1"},
	}
	session.EXPECT().CheckAuth(mock.Anything, "abc").Return(state, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer abc")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var seen entity.Actor
	err := m.Authenticate(func(c echo.Context) error {
		seen, _ = GetActor(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, state.Actor, seen)
	uid, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "emp-1", uid)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	session := mockUC.NewMockSessionUsecase(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{SessionUC: session})

	session.EXPECT().CheckAuth(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{SessionUC: mockUC.NewMockSessionUsecase(t)})
	guard := m.RequireRole(entity.RoleShopOwner, entity.RoleAdmin)

	tests := []struct {
		name    string
		state   *usecase.AuthState
		wantErr error
	}{
		{name: "owner allowed", state: &usecase.AuthState{Role: entity.RoleShopOwner, UserID: "shop-1"}},
		{name: "admin allowed", state: &usecase.AuthState{Role: entity.RoleAdmin, UserID: "admin-1"}},
		{name: "customer forbidden", state: &usecase.AuthState{Role: entity.RoleCustomer, UserID: "cust-1"}, wantErr: domainerrors.ErrForbidden},
		{name: "anonymous", wantErr: domainerrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tt.state != nil {
				c.Set(authStateKey, tt.state)
			}

			called := false
			err := guard(func(echo.Context) error {
				called = true

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}
