package usecase

import (
	"context"

	"smartfit/internal/domain/entity"
)

// WishlistItem is a wishlist entry with its current product.
type WishlistItem struct {
	Entry   *entity.WishlistEntry `json:"entry"`
	Product *ProductSummary       `json:"product"`
}

// WishlistView is a hydrated wishlist. Removed lists entries whose product
// could not be read and that were dropped.
type WishlistView struct {
	Items       []*WishlistItem         `json:"items"`
	Removed     []*entity.WishlistEntry `json:"removed,omitempty"`
	Unavailable []*entity.WishlistEntry `json:"unavailable,omitempty"` // Kept; the product read failed transiently.
}

// AddToCartInput selects a product variant and size.
type AddToCartInput struct {
	ShopID     string `json:"shopId" validate:"required"`
	ShoeID     string `json:"shoeId" validate:"required"`
	VariantKey string `json:"variantKey" validate:"required"`
	SizeKey    string `json:"sizeKey" validate:"required"`
	Size       string `json:"size" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=99"`
}

// ShoppingUsecase defines wishlist and cart operations.
type ShoppingUsecase interface {
	// ToggleWishlist adds or removes a product and reports whether it is now wishlisted.
	ToggleWishlist(ctx context.Context, userID, shopID, shoeID string) (bool, error)
	// HydrateWishlist reads every wishlisted product in parallel. Entries that
	// fail to load are removed rather than failing the call.
	HydrateWishlist(ctx context.Context, userID string) (*WishlistView, error)
	AddToCart(ctx context.Context, userID string, input *AddToCartInput) (*entity.CartItem, error)
	ListCart(ctx context.Context, userID string) ([]*entity.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, itemID string) error
}
