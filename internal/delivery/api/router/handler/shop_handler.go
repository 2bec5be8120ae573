package handler

import (
	"net/http"

	"smartfit/internal/delivery/api/response"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultNearbyRadiusKm = 10

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC       usecase.ShopUsecase
	ActivationUC usecase.ActivationUsecase
}

// ShopHandler serves shop discovery, the approval workflow and staff provisioning.
type ShopHandler struct {
	shopUC       usecase.ShopUsecase
	activationUC usecase.ActivationUsecase
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC:       params.ShopUC,
		activationUC: params.ActivationUC,
	}
}

// ProvisionRequest asks for default employee accounts.
type ProvisionRequest struct {
	Count int `json:"count" validate:"required,min=1,max=20"`
}

// Nearby lists approved shops within a radius of a point, closest first.
func (h *ShopHandler) Nearby(c echo.Context) error {
	var lat, lng float64
	radiusKm := float64(defaultNearbyRadiusKm)
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radiusKm", &radiusKm).
		BindError()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lng are required numbers")
	}

	shops, err := h.shopUC.NearbyShops(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// GetShop returns one shop.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), c.Param("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ListShops lists shop applications for admins, optionally by status.
func (h *ShopHandler) ListShops(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	shops, err := h.shopUC.ListShops(c.Request().Context(), actor, entity.ShopStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// ApproveShop approves a pending application.
func (h *ShopHandler) ApproveShop(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	shop, err := h.shopUC.ApproveShop(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// RejectShop rejects a pending application with a reason.
func (h *ShopHandler) RejectShop(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shopUC.RejectShop(c.Request().Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ReapplyShop resubmits a rejected application.
func (h *ShopHandler) ReapplyShop(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	shop, err := h.shopUC.ReapplyShop(c.Request().Context(), actor, c.Param("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ProvisionEmployees creates default employee accounts for a shop.
func (h *ShopHandler) ProvisionEmployees(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req ProvisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	accounts, err := h.activationUC.ProvisionDefaultAccounts(c.Request().Context(), actor, c.Param("shopId"), req.Count)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, accounts)
}

// ReconcileActivations finishes activations that stopped part way.
func (h *ShopHandler) ReconcileActivations(c echo.Context) error {
	result, err := h.activationUC.ReconcilePending(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
