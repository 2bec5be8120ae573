package usecase

import (
	"context"

	"smartfit/internal/domain/catalog"
	"smartfit/internal/domain/entity"
)

// ProductSummary is a product with its derived stock and price display.
type ProductSummary struct {
	*entity.Product
	StockStatus  catalog.StockState `json:"stockStatus"`
	PriceDisplay string             `json:"priceDisplay"`
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Query       string `query:"q"`
	Brand       string `query:"brand"`
	Gender      string `query:"gender"`
	InStockOnly bool   `query:"inStock"`
}

// InventoryView is the per-size inventory of one product.
type InventoryView struct {
	ShopID   string                   `json:"shopId"`
	ShoeID   string                   `json:"shoeId"`
	ShoeName string                   `json:"shoeName"`
	Lines    []catalog.InventoryLine  `json:"lines"`
	Summary  catalog.InventorySummary `json:"summary"`
}

// QuoteRequest selects a base model and stored component options.
type QuoteRequest struct {
	Model     entity.ARModelID `json:"model" validate:"required"`
	BodyColor string           `json:"bodyColor"`
	Size      string           `json:"size"`
	Laces     string           `json:"laces"`
	Insole    string           `json:"insole"`
}

// CustomOrderQuote is the priced configuration of a customized shoe.
type CustomOrderQuote struct {
	Selections *entity.CustomSelections `json:"selections"`
	Breakdown  catalog.Breakdown        `json:"breakdown"`
	Total      string                   `json:"totalDisplay"`
	Days       int                      `json:"productionDays"`
}

// CatalogUsecase defines product listing, inventory and pricing operations.
type CatalogUsecase interface {
	GetProductSummary(ctx context.Context, shopID, shoeID string) (*ProductSummary, error)
	ListShopProducts(ctx context.Context, shopID string) ([]*ProductSummary, error)
	ListAllProducts(ctx context.Context, filter ProductFilter) ([]*ProductSummary, error)
	// InventoryReport is available to the owning shop's staff and admins.
	InventoryReport(ctx context.Context, actor entity.Actor, shopID, shoeID string) (*InventoryView, error)
	QuoteCustomOrder(ctx context.Context, req *QuoteRequest) (*CustomOrderQuote, error)
}
