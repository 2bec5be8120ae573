package handler

import (
	"net/http"

	"smartfit/internal/delivery/api/middleware"
	"smartfit/internal/delivery/api/response"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShoppingHandlerParams holds dependencies for ShoppingHandler, injected by Fx.
type ShoppingHandlerParams struct {
	fx.In

	ShoppingUC usecase.ShoppingUsecase
}

// ShoppingHandler serves the caller's wishlist and cart.
type ShoppingHandler struct {
	shoppingUC usecase.ShoppingUsecase
}

// NewShoppingHandler is the constructor for ShoppingHandler
func NewShoppingHandler(params ShoppingHandlerParams) *ShoppingHandler {
	return &ShoppingHandler{shoppingUC: params.ShoppingUC}
}

// WishlistToggleRequest names the product to add or remove.
type WishlistToggleRequest struct {
	ShopID string `json:"shopId" validate:"required"`
	ShoeID string `json:"shoeId" validate:"required"`
}

// GetWishlist returns the wishlist with current product data.
func (h *ShoppingHandler) GetWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	view, err := h.shoppingUC.HydrateWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ToggleWishlist adds the product when absent and removes it otherwise.
func (h *ShoppingHandler) ToggleWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req WishlistToggleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	added, err := h.shoppingUC.ToggleWishlist(c.Request().Context(), userID, req.ShopID, req.ShoeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"wishlisted": added})
}

// ListCart returns the caller's cart, newest first.
func (h *ShoppingHandler) ListCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	items, err := h.shoppingUC.ListCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// AddToCart adds a sized variant to the cart.
func (h *ShoppingHandler) AddToCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.AddToCartInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	item, err := h.shoppingUC.AddToCart(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// RemoveFromCart deletes one cart item.
func (h *ShoppingHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.shoppingUC.RemoveFromCart(c.Request().Context(), userID, c.Param("itemId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
