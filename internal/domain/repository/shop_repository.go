package repository

import (
	"context"

	"smartfit/internal/domain/entity"
)

// ShopRepository persists shops under shop/{shopId}. A shop's ID is its owner's UID.
type ShopRepository interface {
	// FindShop returns ErrShopNotFound when absent.
	FindShop(ctx context.Context, id string) (*entity.Shop, error)
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// UpdateShop atomically re-reads the shop and writes the result of fn.
	UpdateShop(ctx context.Context, id string, fn func(shop *entity.Shop) error) (*entity.Shop, error)
}
