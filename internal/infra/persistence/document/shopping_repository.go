package document

import (
	"context"
	"encoding/json"
	"log/slog"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
)

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	base
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(store docstore.Store, logger *slog.Logger) repository.WishlistRepository {
	return &wishlistRepository{base: base{store: store, logger: logger}}
}

// ListWishlist lists a user's entries. Entries are stored as any non-null value;
// keys carry the identity.
func (repo *wishlistRepository) ListWishlist(ctx context.Context, userID string) ([]*entity.WishlistEntry, error) {
	if err := validKey(userID); err != nil {
		return nil, err
	}

	shops, err := readChildren(ctx, repo.base, docstore.Join(pathWishlist, userID))
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.WishlistEntry, 0)
	for _, shopID := range sortedKeys(shops) {
		var shoes map[string]json.RawMessage
		if err := json.Unmarshal(shops[shopID], &shoes); err != nil {
			repo.log(ctx).Warn("Skipping malformed wishlist node",
				slog.String("path", docstore.Join(pathWishlist, userID, shopID)),
				slog.Any("error", err),
			)

			continue
		}

		for _, shoeID := range sortedKeys(shoes) {
			entry := &entity.WishlistEntry{}
			// Older clients store `true` instead of an object.
			_ = json.Unmarshal(shoes[shoeID], entry)
			entry.UserID, entry.ShopID, entry.ShoeID = userID, shopID, shoeID
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// ToggleWishlist atomically flips membership and reports whether the entry now exists.
func (repo *wishlistRepository) ToggleWishlist(ctx context.Context, entry *entity.WishlistEntry) (bool, error) {
	if err := validKey(entry.UserID, entry.ShopID, entry.ShoeID); err != nil {
		return false, err
	}

	var added bool
	err := repo.store.Transaction(ctx, docstore.Join(pathWishlist, entry.UserID, entry.ShopID, entry.ShoeID), func(node docstore.Node) (any, error) {
		var current any
		if err := node.Unmarshal(&current); err != nil {
			return nil, errors.WithStack(err)
		}

		added = current == nil
		if !added {
			return nil, nil
		}

		return entry, nil
	})
	if err != nil {
		return false, err
	}

	return added, nil
}

// RemoveWishlist deletes one entry.
func (repo *wishlistRepository) RemoveWishlist(ctx context.Context, userID, shopID, shoeID string) error {
	if err := validKey(userID, shopID, shoeID); err != nil {
		return err
	}

	return repo.store.Delete(ctx, docstore.Join(pathWishlist, userID, shopID, shoeID))
}

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	base
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store docstore.Store, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{base: base{store: store, logger: logger}}
}

// ListCart lists a user's cart items, oldest first.
func (repo *cartRepository) ListCart(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	if err := validKey(userID); err != nil {
		return nil, err
	}

	return readCollection(ctx, repo.base, docstore.Join(pathCarts, userID), func(key string, item *entity.CartItem) {
		item.ID = key
		item.UserID = userID
	})
}

// SaveCartItem writes carts/{userId}/{id}.
func (repo *cartRepository) SaveCartItem(ctx context.Context, item *entity.CartItem) error {
	if err := validKey(item.UserID, item.ID); err != nil {
		return err
	}

	return repo.store.Create(ctx, docstore.Join(pathCarts, item.UserID, item.ID), item.UserID, item)
}

// DeleteCartItem returns ErrNotFound when the item does not exist.
func (repo *cartRepository) DeleteCartItem(ctx context.Context, userID, itemID string) error {
	if err := validKey(userID, itemID); err != nil {
		return err
	}

	return repo.store.Transaction(ctx, docstore.Join(pathCarts, userID, itemID), func(node docstore.Node) (any, error) {
		var current any
		if err := node.Unmarshal(&current); err != nil {
			return nil, errors.WithStack(err)
		}
		if current == nil {
			return nil, domainerrors.ErrNotFound.WithDetails("cart item " + itemID)
		}

		return nil, nil
	})
}
