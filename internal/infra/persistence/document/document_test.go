package document

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store   docstore.Store
	watcher *docstore.Watcher
	logger  *slog.Logger
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	feed := docstore.NewChangeFeed()
	store := docstore.WithChangeFeed(docstore.NewMemoryStore(), feed)

	return testEnv{
		store:   store,
		watcher: docstore.NewWatcher(store, feed, time.Hour, logger),
		logger:  logger,
	}
}

func seedOrder(t *testing.T, store docstore.Store, path string, doc map[string]any) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), path, "", doc))
}

func TestOrderRepository_FindAndList(t *testing.T) {
	env := newTestEnv(t)
	repo := NewOrderRepository(env.store, env.watcher, env.logger)
	ctx := context.Background()

	seedOrder(t, env.store, "transactions/u1/o1", map[string]any{"status": "pending", "orderDate": 1, "totalAmount": 100})
	seedOrder(t, env.store, "transactions/u1/o2", map[string]any{"status": "shipped", "orderDate": 5})
	seedOrder(t, env.store, "transactions/u2/o3", map[string]any{"status": "completed", "orderDate": 3})
	seedOrder(t, env.store, "transactions/u2/bad", map[string]any{"status": "exploded"})

	order, err := repo.FindOrder(ctx, entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u1", OrderID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, entity.OrderKindStandard, order.Kind)
	assert.Equal(t, entity.StatusPending, order.Status)

	_, err = repo.FindOrder(ctx, entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u1", OrderID: "missing"})
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	_, err = repo.FindOrder(ctx, entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u2", OrderID: "bad"})
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedDocument))

	all, err := repo.ListOrders(ctx, entity.OrderKindStandard, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"o2", "o3", "o1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repo.ListOrders(ctx, entity.OrderKindStandard, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := repo.ListOrders(ctx, entity.OrderKindCustom, "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepository_ApplyStatusChangeKeepsUnknownFields(t *testing.T) {
	env := newTestEnv(t)
	repo := NewOrderRepository(env.store, env.watcher, env.logger)
	ctx := context.Background()
	ref := entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u1", OrderID: "o1"}

	seedOrder(t, env.store, "transactions/u1/o1", map[string]any{"status": "pending", "paymentMethod": "cod"})

	updated, err := repo.ApplyStatusChange(ctx, ref, func(current *entity.Order) (*entity.StatusChange, error) {
		assert.Equal(t, entity.StatusPending, current.Status)

		return &entity.StatusChange{
			Key:    "k1",
			Update: entity.StatusUpdate{Status: entity.StatusProcessing, Timestamp: 10, Message: "m"},
		}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProcessing, updated.Status)

	var raw map[string]any
	require.NoError(t, env.store.Read(ctx, "transactions/u1/o1", &raw))
	assert.Equal(t, "processing", raw["status"])
	assert.Equal(t, "cod", raw["paymentMethod"])
	assert.Contains(t, raw["statusUpdates"], "k1")
}

func TestOrderRepository_ApplyStatusChangeAbortWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	repo := NewOrderRepository(env.store, env.watcher, env.logger)
	ctx := context.Background()
	ref := entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u1", OrderID: "o1"}

	seedOrder(t, env.store, "transactions/u1/o1", map[string]any{"status": "completed"})

	_, err := repo.ApplyStatusChange(ctx, ref, func(current *entity.Order) (*entity.StatusChange, error) {
		return nil, domainerrors.ErrInvalidTransition
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	order, err := repo.FindOrder(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, order.Status)
	assert.Empty(t, order.StatusUpdates)

	_, err = repo.ApplyStatusChange(ctx, entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u1", OrderID: "nope"},
		func(*entity.Order) (*entity.StatusChange, error) { return nil, nil })
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderRepository_ShippingAndDeleteUpdate(t *testing.T) {
	env := newTestEnv(t)
	repo := NewOrderRepository(env.store, env.watcher, env.logger)
	ctx := context.Background()
	ref := entity.OrderRef{Kind: entity.OrderKindCustom, UserID: "u1", OrderID: "c1"}

	seedOrder(t, env.store, "customizedtransactions/u1/c1", map[string]any{
		"status":   "shipped",
		"shipping": map[string]any{"carrier": "LBC"},
		"statusUpdates": map[string]any{
			"a": map[string]any{"status": "processing", "timestamp": 1, "message": "p"},
			"b": map[string]any{"status": "shipped", "timestamp": 2, "message": "s"},
		},
	})

	require.NoError(t, repo.UpdateShipping(ctx, ref, &entity.ShippingDetails{TrackingNumber: "TN1"}))

	order, err := repo.FindOrder(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, "LBC", order.Shipping.Carrier)
	assert.Equal(t, "TN1", order.Shipping.TrackingNumber)

	before, err := repo.DeleteStatusUpdate(ctx, ref, "b")
	require.NoError(t, err)
	assert.Contains(t, before.StatusUpdates, "b")

	order, err = repo.FindOrder(ctx, ref)
	require.NoError(t, err)
	assert.NotContains(t, order.StatusUpdates, "b")
	assert.Equal(t, entity.StatusShipped, order.Status)

	_, err = repo.DeleteStatusUpdate(ctx, ref, "b")
	assert.True(t, errors.Is(err, domainerrors.ErrStatusUpdateNotFound))

	assert.True(t, errors.Is(repo.UpdateShipping(ctx, entity.OrderRef{Kind: entity.OrderKindCustom, UserID: "u1", OrderID: "zz"}, &entity.ShippingDetails{}), domainerrors.ErrOrderNotFound))
}

func TestOrderRepository_RejectsInvalidRef(t *testing.T) {
	env := newTestEnv(t)
	repo := NewOrderRepository(env.store, env.watcher, env.logger)

	_, err := repo.FindOrder(context.Background(), entity.OrderRef{Kind: "other", UserID: "u", OrderID: "o"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = repo.FindOrder(context.Background(), entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u.1", OrderID: "o"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderRepository_WatchOrders(t *testing.T) {
	env := newTestEnv(t)
	repo := NewOrderRepository(env.store, env.watcher, env.logger)
	ctx := context.Background()

	sub, err := repo.WatchOrders(ctx, entity.OrderKindStandard, "u1")
	require.NoError(t, err)
	defer sub.Close()

	next := func() []*entity.Order {
		select {
		case list := <-sub.C:
			require.NoError(t, list.Err)

			return list.Orders
		case <-time.After(2 * time.Second):
			t.Fatal("timed out")
		}

		return nil
	}

	assert.Empty(t, next())

	seedOrder(t, env.store, "transactions/u1/o1", map[string]any{"status": "pending"})
	orders := next()
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)

	sub.Close()
	sub.Close()
}

func TestProductRepository(t *testing.T) {
	env := newTestEnv(t)
	repo := NewProductRepository(env.store, env.logger)
	ctx := context.Background()

	require.NoError(t, env.store.Create(ctx, "shoe/s1/p1", "s1", map[string]any{"shoeName": "A"}))
	require.NoError(t, env.store.Create(ctx, "shoe/s2/p2", "s2", map[string]any{"shoeName": "B"}))

	p, err := repo.FindProduct(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "s1", p.ShopID)
	assert.Equal(t, "p1", p.ID)

	_, err = repo.FindProduct(ctx, "s1", "nope")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	shopProducts, err := repo.ListShopProducts(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, shopProducts, 1)
	assert.Equal(t, "B", shopProducts[0].ShoeName)

	all, err := repo.ListAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestARModelRepository(t *testing.T) {
	env := newTestEnv(t)
	repo := NewARModelRepository(env.store, env.logger)
	ctx := context.Background()

	ext, err := repo.FindExtension(ctx, entity.ModelClassic)
	require.NoError(t, err)
	assert.Empty(t, ext.BodyColors)

	_, err = repo.FindExtension(ctx, "boot")
	assert.True(t, errors.Is(err, domainerrors.ErrModelNotFound))

	require.NoError(t, repo.MergeBodyColor(ctx, entity.ModelClassic, "red", map[string]string{entity.AssetMain: "m.png"}))
	require.NoError(t, repo.MergeBodyColor(ctx, entity.ModelClassic, "red", map[string]string{entity.AssetDeepAR: "fx.deepar"}))
	require.NoError(t, repo.SaveComponentOption(ctx, entity.ModelClassic, entity.ComponentLaces, "waxed", &entity.ComponentOption{Price: 150, Colors: []string{"black"}}))

	ext, err = repo.FindExtension(ctx, entity.ModelClassic)
	require.NoError(t, err)
	assert.Equal(t, "m.png", ext.BodyColors["red"].Images.Main)
	assert.Equal(t, "fx.deepar", ext.BodyColors["red"].DeepARFile)
	assert.Equal(t, []string{"black"}, ext.Laces["waxed"].Colors)

	assert.Error(t, repo.MergeBodyColor(ctx, entity.ModelClassic, "red", map[string]string{"top": "x"}))

	require.NoError(t, repo.DeleteBodyColor(ctx, entity.ModelClassic, "red"))
	ext, err = repo.FindExtension(ctx, entity.ModelClassic)
	require.NoError(t, err)
	assert.NotContains(t, ext.BodyColors, "red")
}

func TestShopRepository_UpdateShop(t *testing.T) {
	env := newTestEnv(t)
	repo := NewShopRepository(env.store, env.logger)
	ctx := context.Background()

	require.NoError(t, env.store.Create(ctx, "shop/s1", "s1", map[string]any{"shopName": "Kicks", "status": "pending", "extra": "kept"}))

	shop, err := repo.UpdateShop(ctx, "s1", func(shop *entity.Shop) error {
		return shop.Reject("blurry permit", 42)
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusRejected, shop.Status)

	shop, err = repo.UpdateShop(ctx, "s1", func(shop *entity.Shop) error {
		return shop.Reapply(50)
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusPending, shop.Status)

	var raw map[string]any
	require.NoError(t, env.store.Read(ctx, "shop/s1", &raw))
	assert.Equal(t, "kept", raw["extra"])
	assert.NotContains(t, raw, "rejectionReason")
	assert.NotContains(t, raw, "dateProcessed")

	_, err = repo.UpdateShop(ctx, "nope", func(*entity.Shop) error { return nil })
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))

	shops, err := repo.ListShops(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "s1", shops[0].ID)
}

func TestWishlistRepository_Toggle(t *testing.T) {
	env := newTestEnv(t)
	repo := NewWishlistRepository(env.store, env.logger)
	ctx := context.Background()
	entry := &entity.WishlistEntry{UserID: "u1", ShopID: "s1", ShoeID: "p1", AddedAt: 1}

	added, err := repo.ToggleWishlist(ctx, entry)
	require.NoError(t, err)
	assert.True(t, added)

	require.NoError(t, env.store.Create(ctx, "wishlist/u1/s2/p9", "u1", true))

	entries, err := repo.ListWishlist(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p9", entries[1].ShoeID)

	added, err = repo.ToggleWishlist(ctx, entry)
	require.NoError(t, err)
	assert.False(t, added)

	entries, err = repo.ListWishlist(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCartRepository(t *testing.T) {
	env := newTestEnv(t)
	repo := NewCartRepository(env.store, env.logger)
	ctx := context.Background()

	item := &entity.CartItem{ID: "c1", UserID: "u1", ShopID: "s1", ShoeID: "p1", Quantity: 1}
	require.NoError(t, repo.SaveCartItem(ctx, item))

	items, err := repo.ListCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)

	require.NoError(t, repo.DeleteCartItem(ctx, "u1", "c1"))
	assert.True(t, errors.Is(repo.DeleteCartItem(ctx, "u1", "c1"), domainerrors.ErrNotFound))
}

func TestDeviceRepository(t *testing.T) {
	env := newTestEnv(t)
	repo := NewDeviceRepository(env.store, env.logger)
	ctx := context.Background()
	now := time.Now()

	d1 := &entity.UserDevice{ID: uuid.New(), UserID: "u1", FCMToken: "t1", DeviceID: "d1", Platform: "ios", IsActive: true, CreatedAt: now, UpdatedAt: now}
	d2 := &entity.UserDevice{ID: uuid.New(), UserID: "u1", FCMToken: "t2", DeviceID: "d2", Platform: "android", IsActive: true, CreatedAt: now.Add(time.Second), UpdatedAt: now}
	require.NoError(t, repo.CreateDevice(ctx, d1))
	require.NoError(t, repo.CreateDevice(ctx, d2))

	devices, err := repo.FindDevicesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, d2.ID, devices[0].ID)

	require.NoError(t, repo.DeactivateTokens(ctx, "u1", []string{"t2"}))
	active, err := repo.FindActiveDevicesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, d1.ID, active[0].ID)

	require.NoError(t, repo.UpdateFCMToken(ctx, "u1", d2.ID, "t3"))
	found, err := repo.FindDevice(ctx, "u1", d2.ID)
	require.NoError(t, err)
	assert.Equal(t, "t3", found.FCMToken)
	assert.True(t, found.IsActive)

	_, err = repo.FindDevice(ctx, "u1", uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestAccountRepositories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accounts := NewAccountRepository(env.store, env.logger)
	credentials := NewCredentialRepository(env.store, env.logger)
	activations := NewActivationRepository(env.store, env.logger)

	require.NoError(t, env.store.Create(ctx, "admins/a1", "a1", true))
	isAdmin, err := accounts.IsAdmin(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, isAdmin)
	isAdmin, err = accounts.IsAdmin(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, accounts.SaveCustomer(ctx, &entity.Customer{ID: "u1", Email: "u@x.com"}))
	customer, err := accounts.FindCustomer(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u@x.com", customer.Email)

	require.NoError(t, credentials.SaveCredential(ctx, &entity.Credential{UID: "u1", Email: "U@x.com", PasswordHash: "h"}))
	cred, err := credentials.FindByEmail(ctx, "u@X.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", cred.UID)
	_, err = credentials.FindByEmail(ctx, "other@x.com")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	require.NoError(t, activations.SaveActivation(ctx, &entity.Activation{ID: "a", UID: "u1", Stage: entity.ActivationRecordCreated, Employee: &entity.Employee{Email: "e@x.com"}}))
	require.NoError(t, activations.SaveActivation(ctx, &entity.Activation{ID: "b", UID: "u2", Stage: entity.ActivationCompleted, Employee: &entity.Employee{Email: "f@x.com"}}))
	pending, err := activations.ListPendingActivations(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a", pending[0].ID)
}
