package handler

import (
	"net/http"

	"smartfit/internal/delivery/api/middleware"
	"smartfit/internal/delivery/api/response"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request into dst and runs the echo validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(dst))
}

// actorOf returns the authenticated caller or ErrUnauthenticated.
func actorOf(c echo.Context) (entity.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return entity.Actor{}, domainerrors.ErrUnauthenticated
	}

	return actor, nil
}

// orderRefOf reads :kind/:userId/:orderId.
func orderRefOf(c echo.Context) (entity.OrderRef, error) {
	ref := entity.OrderRef{
		Kind:    entity.OrderKind(c.Param("kind")),
		UserID:  c.Param("userId"),
		OrderID: c.Param("orderId"),
	}
	if !ref.Kind.IsValid() {
		return ref, domainerrors.ErrValidationFailed.WithDetails("unknown order kind: " + c.Param("kind"))
	}
	if ref.UserID == "" || ref.OrderID == "" {
		return ref, domainerrors.ErrValidationFailed.WithDetails("user and order ids are required")
	}

	return ref, nil
}
