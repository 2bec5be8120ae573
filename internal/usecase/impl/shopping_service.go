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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const hydrateConcurrency = 8

type shoppingService struct {
	wishlistRepo repository.WishlistRepository
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	validate     *validator.Validate
	logger       *slog.Logger
	now          func() time.Time
}

// ShoppingServiceParams holds dependencies for ShoppingService, injected by Fx.
type ShoppingServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	CartRepo     repository.CartRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewShoppingService creates the wishlist and cart service.
func NewShoppingService(params ShoppingServiceParams) usecase.ShoppingUsecase {
	return &shoppingService{
		wishlistRepo: params.WishlistRepo,
		cartRepo:     params.CartRepo,
		productRepo:  params.ProductRepo,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *shoppingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shoppingService) ToggleWishlist(ctx context.Context, userID, shopID, shoeID string) (bool, error) {
	if strings.TrimSpace(shopID) == "" || strings.TrimSpace(shoeID) == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("shopId and shoeId are required")
	}

	if _, err := srv.productRepo.FindProduct(ctx, shopID, shoeID); err != nil {
		return false, errors.Wrapf(err, "find product %s/%s", shopID, shoeID)
	}

	wishlisted, err := srv.wishlistRepo.ToggleWishlist(ctx, &entity.WishlistEntry{
		UserID:  userID,
		ShopID:  shopID,
		ShoeID:  shoeID,
		AddedAt: srv.now().UnixMilli(),
	})
	if err != nil {
		return false, errors.Wrap(err, "toggle wishlist entry")
	}

	return wishlisted, nil
}

// HydrateWishlist loads the products of every entry with bounded parallelism.
// Entries whose product is gone or malformed are deleted and reported in
// Removed; entries whose read failed for another reason are kept in storage
// and reported in Unavailable.
func (srv *shoppingService) HydrateWishlist(ctx context.Context, userID string) (*usecase.WishlistView, error) {
	entries, err := srv.wishlistRepo.ListWishlist(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list wishlist")
	}

	products := make([]*entity.Product, len(entries))
	failures := make([]error, len(entries))

	g := new(errgroup.Group)
	g.SetLimit(hydrateConcurrency)
	for i, entry := range entries {
		g.Go(func() error {
			products[i], failures[i] = srv.productRepo.FindProduct(ctx, entry.ShopID, entry.ShoeID)

			return nil
		})
	}
	_ = g.Wait()

	view := &usecase.WishlistView{Items: make([]*usecase.WishlistItem, 0, len(entries))}
	for i, entry := range entries {
		logger := srv.log(ctx).With(
			slog.String("user_id", userID),
			slog.String("shop_id", entry.ShopID),
			slog.String("shoe_id", entry.ShoeID),
		)

		switch {
		case failures[i] == nil && products[i] != nil:
		case invalidWishlistProduct(failures[i]):
			logger.Warn("Dropping wishlist entry for a missing product", slog.Any("error", failures[i]))
			if err := srv.wishlistRepo.RemoveWishlist(ctx, userID, entry.ShopID, entry.ShoeID); err != nil {
				logger.Warn("Failed to remove wishlist entry", slog.Any("error", err))
			}
			view.Removed = append(view.Removed, entry)

			continue
		default:
			logger.Warn("Wishlist product could not be loaded", slog.Any("error", failures[i]))
			view.Unavailable = append(view.Unavailable, entry)

			continue
		}

		view.Items = append(view.Items, &usecase.WishlistItem{Entry: entry, Product: summarize(products[i])})
	}
	slices.SortStableFunc(view.Items, func(a, b *usecase.WishlistItem) int {
		return cmp.Compare(b.Entry.AddedAt, a.Entry.AddedAt)
	})

	return view, nil
}

// invalidWishlistProduct reports whether a failed product read means the entry
// can never resolve. A nil error with no product counts as missing.
func invalidWishlistProduct(err error) bool {
	return err == nil || errors.IsAny(err, domainerrors.ErrProductNotFound, domainerrors.ErrMalformedDocument)
}

func (srv *shoppingService) AddToCart(ctx context.Context, userID string, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cart item is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	product, err := srv.productRepo.FindProduct(ctx, input.ShopID, input.ShoeID)
	if err != nil {
		return nil, errors.Wrapf(err, "find product %s/%s", input.ShopID, input.ShoeID)
	}

	variant, ok := product.Variants[input.VariantKey]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown variant " + input.VariantKey)
	}
	entry, ok := variant.Sizes[input.SizeKey][input.Size]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown size " + input.Size)
	}
	if entry.Stock < input.Quantity {
		return nil, domainerrors.ErrConflict.WithDetails("not enough stock for size " + input.Size)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generate cart item id")
	}

	item := &entity.CartItem{
		ID:         id.String(),
		UserID:     userID,
		ShopID:     input.ShopID,
		ShoeID:     input.ShoeID,
		VariantKey: input.VariantKey,
		SizeKey:    input.SizeKey,
		Size:       input.Size,
		Quantity:   input.Quantity,
		AddedAt:    srv.now().UnixMilli(),
	}
	if err := srv.cartRepo.SaveCartItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "save cart item")
	}

	return item, nil
}

func (srv *shoppingService) ListCart(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.ListCart(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list cart")
	}
	slices.SortStableFunc(items, func(a, b *entity.CartItem) int {
		return cmp.Compare(b.AddedAt, a.AddedAt)
	})

	return items, nil
}

func (srv *shoppingService) RemoveFromCart(ctx context.Context, userID, itemID string) error {
	if err := checkKey("cart item id", itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.DeleteCartItem(ctx, userID, itemID); err != nil {
		return errors.Wrapf(err, "delete cart item %s", itemID)
	}

	return nil
}
