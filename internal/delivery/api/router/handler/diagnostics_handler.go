package handler

import (
	"net/http"

	"smartfit/internal/delivery/api/response"
	deliverycontext "smartfit/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// DiagnosticsHandler serves the /test routes that client developers use to
// check their tokens against the API. They are mounted only when enabled in config.
type DiagnosticsHandler struct{}

// NewDiagnosticsHandler is the constructor for DiagnosticsHandler
func NewDiagnosticsHandler() *DiagnosticsHandler {
	return &DiagnosticsHandler{}
}

// WhoAmI describes the caller the bearer token resolved to.
func (h *DiagnosticsHandler) WhoAmI(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId":    actor.UserID,
		"role":      actor.Role,
		"shopId":    actor.ShopID,
		"label":     actor.Label(),
		"shopStaff": actor.Role.IsShopStaff(),
		"admin":     actor.IsAdmin(),
		"requestId": deliverycontext.GetRequestID(c),
	})
}

// Ping answers without authentication and echoes the request id.
func (h *DiagnosticsHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":    "pong",
		"requestId": deliverycontext.GetRequestID(c),
	})
}
