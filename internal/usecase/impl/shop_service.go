package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const maxNearbyRadiusKm = 500

type shopService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger
	now      func() time.Time
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	Logger   *slog.Logger
}

// NewShopService creates the shop approval service.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shopRepo: params.ShopRepo,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shopService) GetShop(ctx context.Context, shopID string) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrapf(err, "find shop %s", shopID)
	}

	return shop, nil
}

func (srv *shopService) ListShops(ctx context.Context, actor entity.Actor, status entity.ShopStatus) ([]*entity.Shop, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown shop status " + string(status))
	}

	shops, err := srv.shopRepo.ListShops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list shops")
	}
	if status != "" {
		shops = slices.DeleteFunc(shops, func(shop *entity.Shop) bool { return shop.Status != status })
	}
	slices.SortStableFunc(shops, func(a, b *entity.Shop) int {
		return cmp.Compare(b.DateSubmitted, a.DateSubmitted)
	})

	return shops, nil
}

func (srv *shopService) ApproveShop(ctx context.Context, actor entity.Actor, shopID string) (*entity.Shop, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	now := srv.now().UnixMilli()
	shop, err := srv.shopRepo.UpdateShop(ctx, shopID, func(shop *entity.Shop) error {
		return shop.Approve(now)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "approve shop %s", shopID)
	}

	srv.log(ctx).Info("Shop approved", slog.String("shop_id", shopID), slog.String("by", actor.UserID))

	return shop, nil
}

func (srv *shopService) RejectShop(ctx context.Context, actor entity.Actor, shopID, reason string) (*entity.Shop, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrRejectionReasonRequired
	}

	now := srv.now().UnixMilli()
	shop, err := srv.shopRepo.UpdateShop(ctx, shopID, func(shop *entity.Shop) error {
		return shop.Reject(reason, now)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "reject shop %s", shopID)
	}

	srv.log(ctx).Info("Shop rejected",
		slog.String("shop_id", shopID),
		slog.String("by", actor.UserID),
		slog.String("reason", reason),
	)

	return shop, nil
}

func (srv *shopService) ReapplyShop(ctx context.Context, actor entity.Actor, shopID string) (*entity.Shop, error) {
	if actor.Role != entity.RoleShopOwner || actor.UserID != shopID {
		return nil, domainerrors.ErrForbidden.WithDetails("only the shop owner can reapply")
	}

	now := srv.now().UnixMilli()
	shop, err := srv.shopRepo.UpdateShop(ctx, shopID, func(shop *entity.Shop) error {
		return shop.Reapply(now)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "reapply shop %s", shopID)
	}

	srv.log(ctx).Info("Shop resubmitted for review", slog.String("shop_id", shopID))

	return shop, nil
}

func (srv *shopService) NearbyShops(ctx context.Context, lat, lng, radiusKm float64) ([]*usecase.NearbyShop, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}
	if radiusKm <= 0 || radiusKm > maxNearbyRadiusKm {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be between 0 and 500 km")
	}

	shops, err := srv.shopRepo.ListShops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list shops")
	}

	origin := orb.Point{lng, lat}
	nearby := make([]*usecase.NearbyShop, 0)
	for _, shop := range shops {
		if shop.Status != entity.ShopStatusApproved || !shop.HasLocation() {
			continue
		}

		km := geo.Distance(origin, orb.Point{shop.Longitude, shop.Latitude}) / 1000
		if km <= radiusKm {
			nearby = append(nearby, &usecase.NearbyShop{Shop: shop, DistanceKm: km})
		}
	}
	slices.SortFunc(nearby, func(a, b *usecase.NearbyShop) int {
		return cmp.Or(cmp.Compare(a.DistanceKm, b.DistanceKm), strings.Compare(a.ID, b.ID))
	})

	return nearby, nil
}
