package usecase

import (
	"context"

	"smartfit/internal/domain/entity"
)

// NearbyShop is an approved shop and its distance from the query point.
type NearbyShop struct {
	*entity.Shop
	DistanceKm float64 `json:"distanceKm"`
}

// ShopUsecase defines the shop approval workflow.
type ShopUsecase interface {
	GetShop(ctx context.Context, shopID string) (*entity.Shop, error)
	// ListShops lists shops, optionally of one status. Admin only.
	ListShops(ctx context.Context, actor entity.Actor, status entity.ShopStatus) ([]*entity.Shop, error)
	ApproveShop(ctx context.Context, actor entity.Actor, shopID string) (*entity.Shop, error)
	RejectShop(ctx context.Context, actor entity.Actor, shopID, reason string) (*entity.Shop, error)
	// ReapplyShop returns a rejected shop to review. Owner only.
	ReapplyShop(ctx context.Context, actor entity.Actor, shopID string) (*entity.Shop, error)
	// NearbyShops lists approved shops within radiusKm, nearest first.
	NearbyShops(ctx context.Context, lat, lng, radiusKm float64) ([]*NearbyShop, error)
}
