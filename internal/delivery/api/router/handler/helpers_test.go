package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartfit/internal/delivery/api/middleware"
	"smartfit/internal/delivery/api/response"
	"smartfit/internal/delivery/api/validator"
	"smartfit/internal/domain/entity"
	mockUC "smartfit/internal/mocks/usecase"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "good-token"

var (
	customerAuth = &usecase.AuthState{
		Authenticated: true,
		Role:          entity.RoleCustomer,
		UserID:        "cust-1",
		Email:         "cust@example.com",
		Actor:         entity.Actor{UserID: "cust-1", Role: entity.RoleCustomer},
	}
	ownerAuth = &usecase.AuthState{
		Authenticated: true,
		Role:          entity.RoleShopOwner,
		UserID:        "shop-1",
		Actor:         entity.Actor{UserID: "shop-1", Role: entity.RoleShopOwner, ShopID: "shop-1"},
	}
	adminAuth = &usecase.AuthState{
		Authenticated: true,
		Role:          entity.RoleAdmin,
		UserID:        "admin-1",
		Actor:         entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
	}
)

// apiHarness runs handlers the way the server does: behind Authenticate and
// with the JSON error handler.
type apiHarness struct {
	echo    *echo.Echo
	session *mockUC.MockSessionUsecase
	auth    *middleware.AuthMiddleware
}

func newHarness(t *testing.T) apiHarness {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	session := mockUC.NewMockSessionUsecase(t)

	return apiHarness{
		echo:    e,
		session: session,
		auth:    middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{SessionUC: session}),
	}
}

type pathParams map[string]string

// call runs h without authentication.
func (a apiHarness) call(h echo.HandlerFunc, req *http.Request, params pathParams) *httptest.ResponseRecorder {
	return a.run(h, req, params)
}

// callAs runs h behind Authenticate with state as the resolved caller.
func (a apiHarness) callAs(state *usecase.AuthState, h echo.HandlerFunc, req *http.Request, params pathParams) *httptest.ResponseRecorder {
	a.session.EXPECT().CheckAuth(mock.Anything, testToken).Return(state, nil).Once()
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	return a.run(a.auth.Authenticate(h), req, params)
}

func (a apiHarness) run(h echo.HandlerFunc, req *http.Request, params pathParams) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := a.echo.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if err := h(c); err != nil {
		a.echo.HTTPErrorHandler(err, c)
	}

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
