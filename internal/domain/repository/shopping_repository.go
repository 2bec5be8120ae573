package repository

import (
	"context"

	"smartfit/internal/domain/entity"
)

// WishlistRepository persists membership entries under wishlist/{userId}/{shopId}/{shoeId}.
type WishlistRepository interface {
	ListWishlist(ctx context.Context, userID string) ([]*entity.WishlistEntry, error)
	// ToggleWishlist atomically adds the entry when absent or removes it when
	// present and reports whether it is now wishlisted.
	ToggleWishlist(ctx context.Context, entry *entity.WishlistEntry) (bool, error)
	RemoveWishlist(ctx context.Context, userID, shopID, shoeID string) error
}

// CartRepository persists cart items under carts/{userId}/{cartItemId}.
type CartRepository interface {
	ListCart(ctx context.Context, userID string) ([]*entity.CartItem, error)
	SaveCartItem(ctx context.Context, item *entity.CartItem) error
	// DeleteCartItem returns ErrNotFound when the item does not exist.
	DeleteCartItem(ctx context.Context, userID, itemID string) error
}
