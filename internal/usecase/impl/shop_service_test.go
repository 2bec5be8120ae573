package impl

import (
	"context"
	"testing"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
	mockRepo "smartfit/internal/mocks/repository"
	"smartfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixtures struct {
	service  usecase.ShopUsecase
	shopRepo *mockRepo.MockShopRepository
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)

	srv := NewShopService(ShopServiceParams{
		ShopRepo: shopRepo,
		Logger:   discardLogger(),
	}).(*shopService)
	srv.now = fixedClock(5_000)

	return shopServiceFixtures{service: srv, shopRepo: shopRepo}
}

// applyShopUpdate runs the update func against current like the repository would.
func applyShopUpdate(current entity.Shop) func(context.Context, string, func(*entity.Shop) error) (*entity.Shop, error) {
	return func(_ context.Context, _ string, fn func(*entity.Shop) error) (*entity.Shop, error) {
		shop := current
		if err := fn(&shop); err != nil {
			return nil, err
		}

		return &shop, nil
	}
}

func TestShopService_ApproveAndReject(t *testing.T) {
	tests := []struct {
		name       string
		status     entity.ShopStatus
		reject     bool
		reason     string
		wantStatus entity.ShopStatus
		wantErr    error
	}{
		{name: "approve pending", status: entity.ShopStatusPending, wantStatus: entity.ShopStatusApproved},
		{name: "reject pending", status: entity.ShopStatusPending, reject: true, reason: " blurry permit ", wantStatus: entity.ShopStatusRejected},
		{name: "approve rejected", status: entity.ShopStatusRejected, wantErr: domainerrors.ErrInvalidTransition},
		{name: "reject approved", status: entity.ShopStatusApproved, reject: true, reason: "late", wantErr: domainerrors.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopService(t)
			current := entity.Shop{ID: "shop-1", Status: tt.status}
			fx.shopRepo.EXPECT().UpdateShop(mock.Anything, "shop-1", mock.Anything).RunAndReturn(applyShopUpdate(current))

			var (
				shop *entity.Shop
				err  error
			)
			if tt.reject {
				shop, err = fx.service.RejectShop(context.Background(), admin, "shop-1", tt.reason)
			} else {
				shop, err = fx.service.ApproveShop(context.Background(), admin, "shop-1")
			}

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, shop.Status)
			assert.Equal(t, int64(5_000), shop.DateProcessed)
			if tt.reject {
				assert.Equal(t, "blurry permit", shop.RejectionReason)
			}
		})
	}
}

func TestShopService_RejectRequiresReasonAndAdmin(t *testing.T) {
	fx := createTestShopService(t)

	_, err := fx.service.RejectShop(context.Background(), entity.Actor{UserID: "root", Role: entity.RoleAdmin}, "shop-1", "   ")
	assert.True(t, errors.Is(err, domainerrors.ErrRejectionReasonRequired))

	_, err = fx.service.ApproveShop(context.Background(), entity.Actor{UserID: "shop-1", Role: entity.RoleShopOwner, ShopID: "shop-1"}, "shop-1")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShopService_ReapplyShop(t *testing.T) {
	shopOwner := entity.Actor{UserID: "shop-1", Role: entity.RoleShopOwner, ShopID: "shop-1"}

	t.Run("rejected shop returns to review", func(t *testing.T) {
		fx := createTestShopService(t)
		current := entity.Shop{ID: "shop-1", Status: entity.ShopStatusRejected, RejectionReason: "blurry", DateProcessed: 10}
		fx.shopRepo.EXPECT().UpdateShop(mock.Anything, "shop-1", mock.Anything).RunAndReturn(applyShopUpdate(current))

		shop, err := fx.service.ReapplyShop(context.Background(), shopOwner, "shop-1")
		require.NoError(t, err)
		assert.Equal(t, entity.ShopStatusPending, shop.Status)
		assert.Empty(t, shop.RejectionReason)
		assert.Zero(t, shop.DateProcessed)
		assert.Equal(t, int64(5_000), shop.DateSubmitted)
	})

	t.Run("other owners cannot reapply", func(t *testing.T) {
		fx := createTestShopService(t)

		_, err := fx.service.ReapplyShop(context.Background(), shopOwner, "shop-2")
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestShopService_ListShops(t *testing.T) {
	fx := createTestShopService(t)
	fx.shopRepo.EXPECT().ListShops(mock.Anything).Return([]*entity.Shop{
		{ID: "a", Status: entity.ShopStatusPending, DateSubmitted: 1},
		{ID: "b", Status: entity.ShopStatusApproved, DateSubmitted: 2},
		{ID: "c", Status: entity.ShopStatusPending, DateSubmitted: 3},
	}, nil)

	shops, err := fx.service.ListShops(context.Background(), entity.Actor{UserID: "root", Role: entity.RoleAdmin}, entity.ShopStatusPending)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "c", shops[0].ID)
	assert.Equal(t, "a", shops[1].ID)
}

func TestShopService_NearbyShops(t *testing.T) {
	fx := createTestShopService(t)
	// Around Manila: Makati is ~6 km from Intramuros, Quezon City ~11 km, Cebu ~570 km.
	fx.shopRepo.EXPECT().ListShops(mock.Anything).Return([]*entity.Shop{
		{ID: "qc", Status: entity.ShopStatusApproved, Latitude: 14.6760, Longitude: 121.0437},
		{ID: "makati", Status: entity.ShopStatusApproved, Latitude: 14.5547, Longitude: 121.0244},
		{ID: "cebu", Status: entity.ShopStatusApproved, Latitude: 10.3157, Longitude: 123.8854},
		{ID: "pending", Status: entity.ShopStatusPending, Latitude: 14.5995, Longitude: 120.9842},
		{ID: "nowhere", Status: entity.ShopStatusApproved},
	}, nil)

	shops, err := fx.service.NearbyShops(context.Background(), 14.5906, 120.9750, 20)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "makati", shops[0].ID)
	assert.Equal(t, "qc", shops[1].ID)
	assert.InDelta(t, 6, shops[0].DistanceKm, 1.5)
}

func TestShopService_NearbyShops_Validation(t *testing.T) {
	fx := createTestShopService(t)

	_, err := fx.service.NearbyShops(context.Background(), 95, 0, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.NearbyShops(context.Background(), 14, 121, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
