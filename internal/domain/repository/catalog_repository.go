package repository

import (
	"context"

	"smartfit/internal/domain/entity"
)

// ProductRepository reads the shoe catalog under shoe/{shopId}/{shoeId}.
type ProductRepository interface {
	// FindProduct returns ErrProductNotFound when absent.
	FindProduct(ctx context.Context, shopID, shoeID string) (*entity.Product, error)
	ListShopProducts(ctx context.Context, shopID string) ([]*entity.Product, error)
	ListAllProducts(ctx context.Context) ([]*entity.Product, error)
}

// ARModelRepository persists the stored extension of each base AR model.
type ARModelRepository interface {
	// FindExtension returns an empty extension when nothing is stored for id.
	FindExtension(ctx context.Context, id entity.ARModelID) (*entity.ARModelExtension, error)

	// MergeBodyColor merges the given asset URLs into one body color entry.
	// Keys are asset names (see entity.AssetMain and friends).
	MergeBodyColor(ctx context.Context, id entity.ARModelID, colorKey string, assets map[string]string) error

	// DeleteBodyColor removes a body color entry.
	DeleteBodyColor(ctx context.Context, id entity.ARModelID, colorKey string) error

	// SaveComponentOption writes one laces or insoles option.
	SaveComponentOption(ctx context.Context, id entity.ARModelID, kind entity.ComponentKind, optionID string, option *entity.ComponentOption) error
}
