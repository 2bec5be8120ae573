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

type shoppingServiceFixtures struct {
	service      usecase.ShoppingUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	cartRepo     *mockRepo.MockCartRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestShoppingService(t *testing.T) shoppingServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	srv := NewShoppingService(ShoppingServiceParams{
		WishlistRepo: wishlistRepo,
		CartRepo:     cartRepo,
		ProductRepo:  productRepo,
		Logger:       discardLogger(),
	}).(*shoppingService)
	srv.now = fixedClock(42_000)

	return shoppingServiceFixtures{
		service:      srv,
		wishlistRepo: wishlistRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
	}
}

func TestShoppingService_ToggleWishlist(t *testing.T) {
	fx := createTestShoppingService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindProduct(ctx, "shop-1", "shoe-1").Return(sampleProduct(), nil)
	fx.wishlistRepo.EXPECT().
		ToggleWishlist(ctx, &entity.WishlistEntry{UserID: "cust-1", ShopID: "shop-1", ShoeID: "shoe-1", AddedAt: 42_000}).
		Return(true, nil)

	wishlisted, err := fx.service.ToggleWishlist(ctx, "cust-1", "shop-1", "shoe-1")
	require.NoError(t, err)
	assert.True(t, wishlisted)
}

func TestShoppingService_ToggleWishlist_UnknownProduct(t *testing.T) {
	fx := createTestShoppingService(t)
	fx.productRepo.EXPECT().FindProduct(mock.Anything, "shop-1", "gone").Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.ToggleWishlist(context.Background(), "cust-1", "shop-1", "gone")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestShoppingService_HydrateWishlist(t *testing.T) {
	fx := createTestShoppingService(t)
	ctx := context.Background()

	entries := []*entity.WishlistEntry{
		{UserID: "cust-1", ShopID: "shop-1", ShoeID: "shoe-1", AddedAt: 1},
		{UserID: "cust-1", ShopID: "shop-1", ShoeID: "deleted", AddedAt: 2},
		{UserID: "cust-1", ShopID: "shop-2", ShoeID: "flaky", AddedAt: 3},
		{UserID: "cust-1", ShopID: "shop-2", ShoeID: "shoe-2", AddedAt: 4},
		{UserID: "cust-1", ShopID: "shop-3", ShoeID: "garbled", AddedAt: 5},
	}
	second := sampleProduct()
	second.ShopID, second.ID = "shop-2", "shoe-2"

	fx.wishlistRepo.EXPECT().ListWishlist(ctx, "cust-1").Return(entries, nil)
	fx.productRepo.EXPECT().FindProduct(ctx, "shop-1", "shoe-1").Return(sampleProduct(), nil)
	fx.productRepo.EXPECT().FindProduct(ctx, "shop-1", "deleted").Return(nil, domainerrors.ErrProductNotFound)
	fx.productRepo.EXPECT().FindProduct(ctx, "shop-2", "flaky").Return(nil, errors.New("timeout"))
	fx.productRepo.EXPECT().FindProduct(ctx, "shop-2", "shoe-2").Return(second, nil)
	fx.productRepo.EXPECT().FindProduct(ctx, "shop-3", "garbled").
		Return(nil, domainerrors.ErrMalformedDocument.WithDetails("shoe/shop-3/garbled: price"))
	fx.wishlistRepo.EXPECT().RemoveWishlist(ctx, "cust-1", "shop-1", "deleted").Return(nil)
	fx.wishlistRepo.EXPECT().RemoveWishlist(ctx, "cust-1", "shop-3", "garbled").Return(errors.New("offline"))

	view, err := fx.service.HydrateWishlist(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "shoe-2", view.Items[0].Entry.ShoeID)
	assert.Equal(t, "shoe-1", view.Items[1].Entry.ShoeID)
	assert.NotEmpty(t, view.Items[0].Product.PriceDisplay)

	require.Len(t, view.Removed, 2)
	assert.Equal(t, "deleted", view.Removed[0].ShoeID)
	assert.Equal(t, "garbled", view.Removed[1].ShoeID)

	require.Len(t, view.Unavailable, 1)
	assert.Equal(t, "flaky", view.Unavailable[0].ShoeID)
}

func TestShoppingService_AddToCart(t *testing.T) {
	validInput := func() *usecase.AddToCartInput {
		return &usecase.AddToCartInput{ShopID: "shop-1", ShoeID: "shoe-1", VariantKey: "v1", SizeKey: "s40", Size: "40", Quantity: 2}
	}

	tests := []struct {
		name    string
		mutate  func(in *usecase.AddToCartInput)
		wantErr error
	}{
		{name: "valid", mutate: func(*usecase.AddToCartInput) {}},
		{name: "missing quantity", mutate: func(in *usecase.AddToCartInput) { in.Quantity = 0 }, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown variant", mutate: func(in *usecase.AddToCartInput) { in.VariantKey = "v9" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown size", mutate: func(in *usecase.AddToCartInput) { in.Size = "13" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "not enough stock", mutate: func(in *usecase.AddToCartInput) { in.Quantity = 50 }, wantErr: domainerrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShoppingService(t)
			input := validInput()
			tt.mutate(input)

			fx.productRepo.EXPECT().FindProduct(mock.Anything, "shop-1", "shoe-1").Return(sampleProduct(), nil).Maybe()
			if tt.wantErr == nil {
				fx.cartRepo.EXPECT().SaveCartItem(mock.Anything, mock.Anything).Return(nil)
			}

			item, err := fx.service.AddToCart(context.Background(), "cust-1", input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, item.ID)
			assert.Equal(t, "cust-1", item.UserID)
			assert.Equal(t, int64(42_000), item.AddedAt)
		})
	}
}

func TestShoppingService_RemoveFromCart(t *testing.T) {
	fx := createTestShoppingService(t)
	fx.cartRepo.EXPECT().DeleteCartItem(mock.Anything, "cust-1", "item-1").Return(domainerrors.ErrNotFound)

	err := fx.service.RemoveFromCart(context.Background(), "cust-1", "item-1")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	err = fx.service.RemoveFromCart(context.Background(), "cust-1", "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
