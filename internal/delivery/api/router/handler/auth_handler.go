package handler

import (
	"net/http"

	"smartfit/internal/delivery/api/middleware"
	"smartfit/internal/delivery/api/response"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC    usecase.SessionUsecase
	ActivationUC usecase.ActivationUsecase
}

// AuthHandler serves sign-in, registration and employee activation.
type AuthHandler struct {
	sessionUC    usecase.SessionUsecase
	activationUC usecase.ActivationUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC:    params.SessionUC,
		activationUC: params.ActivationUC,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login signs the user in and returns the session with the resolved role.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout revokes the caller's sessions.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.sessionUC.Logout(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Register creates a customer account.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterCustomerInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	customer, warnings, err := h.sessionUC.RegisterCustomer(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithWarnings(c, http.StatusCreated, customer, warnings)
}

// Activate swaps an employee's default credentials for their own.
func (h *AuthHandler) Activate(c echo.Context) error {
	var input usecase.ActivateEmployeeInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.activationUC.ActivateEmployee(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ChangePassword re-authenticates the caller and sets a new password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	auth, ok := middleware.GetAuth(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.ChangePasswordInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.sessionUC.ChangePassword(c.Request().Context(), auth, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated"})
}

// Me returns the caller's resolved auth state.
func (h *AuthHandler) Me(c echo.Context) error {
	auth, ok := middleware.GetAuth(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, auth)
}
