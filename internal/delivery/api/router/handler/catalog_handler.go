package handler

import (
	"net/http"

	"smartfit/internal/delivery/api/response"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves products, inventory and custom order quotes.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ListProducts searches products across every shop.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var filter usecase.ProductFilter
	if err := c.Bind(&filter); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed query")
	}

	products, err := h.catalogUC.ListAllProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// ListShopProducts lists one shop's products.
func (h *CatalogHandler) ListShopProducts(c echo.Context) error {
	products, err := h.catalogUC.ListShopProducts(c.Request().Context(), c.Param("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns one product with its stock status.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProductSummary(c.Request().Context(), c.Param("shopId"), c.Param("shoeId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Inventory returns per-size stock lines for shop staff.
func (h *CatalogHandler) Inventory(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	view, err := h.catalogUC.InventoryReport(c.Request().Context(), actor, c.Param("shopId"), c.Param("shoeId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Quote prices a set of customization choices.
func (h *CatalogHandler) Quote(c echo.Context) error {
	var req usecase.QuoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	quote, err := h.catalogUC.QuoteCustomOrder(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
