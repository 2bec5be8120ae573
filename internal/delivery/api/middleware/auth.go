package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const authStateKey = "auth_state"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// AuthMiddleware resolves bearer tokens into an AuthState.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: params.SessionUC}
}

// Authenticate rejects requests without a valid bearer token and stores the
// resolved AuthState on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthenticated.WithDetails("missing bearer token")
		}

		state, err := m.sessionUC.CheckAuth(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(authStateKey, state)
		deliverycontext.SetUserID(c, state.UserID)

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).With(
			slog.String("user_id", state.UserID),
			slog.String("role", string(state.Role)),
		)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireRole allows the request through only when the caller has one of roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, ok := GetAuth(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !slices.Contains(roles, state.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetAuth returns the AuthState stored by Authenticate.
func GetAuth(c echo.Context) (*usecase.AuthState, bool) {
	state, ok := c.Get(authStateKey).(*usecase.AuthState)

	return state, ok && state != nil
}

// GetActor returns the caller as seen by the usecases.
func GetActor(c echo.Context) (entity.Actor, bool) {
	state, ok := GetAuth(c)
	if !ok {
		return entity.Actor{}, false
	}

	return state.Actor, true
}

// GetUserID returns the caller's uid.
func GetUserID(c echo.Context) (string, bool) {
	state, ok := GetAuth(c)
	if !ok || state.UserID == "" {
		return "", false
	}

	return state.UserID, true
}

// bearerToken reads the Authorization header. EventSource clients cannot set
// headers, so the access_token query parameter is accepted as a fallback.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		token := strings.TrimSpace(c.QueryParam("access_token"))

		return token, token != ""
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
