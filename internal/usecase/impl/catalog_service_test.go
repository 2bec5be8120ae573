package impl

import (
	"context"
	"testing"

	"smartfit/config"
	"smartfit/internal/domain/catalog"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
	mockRepo "smartfit/internal/mocks/repository"
	"smartfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	modelRepo   *mockRepo.MockARModelRepository
}

func createTestCatalogService(t *testing.T, cfg *config.Config) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	modelRepo := mockRepo.NewMockARModelRepository(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			ProductRepo: productRepo,
			ARModelRepo: modelRepo,
			Config:      cfg,
			Logger:      discardLogger(),
		}),
		productRepo: productRepo,
		modelRepo:   modelRepo,
	}
}

func price(v float64) *float64 { return &v }

func sampleProduct() *entity.Product {
	return &entity.Product{
		ShopID:     "shop-1",
		ID:         "s1",
		ShoeName:   "Court Classic",
		ShoeBrand:  "Nike",
		ShoeGender: "Men",
		Variants: map[string]entity.Variant{
			"v1": {
				Color: "White",
				Price: price(1000),
				Sizes: map[string]map[string]entity.SizeEntry{
					"s40": {"40": {Stock: 12}},
					"s41": {"41": {Stock: 3, Price: price(1299.5)}},
				},
			},
		},
	}
}

func TestCatalogService_GetProductSummary(t *testing.T) {
	fx := createTestCatalogService(t, nil)
	fx.productRepo.EXPECT().FindProduct(mock.Anything, "shop-1", "s1").Return(sampleProduct(), nil)

	summary, err := fx.service.GetProductSummary(context.Background(), "shop-1", "s1")
	require.NoError(t, err)
	assert.Equal(t, catalog.InStock, summary.StockStatus)
	assert.Equal(t, "₱1,000 - ₱1,299.5", summary.PriceDisplay)
}

func TestCatalogService_ListAllProducts_Filter(t *testing.T) {
	soldOut := &entity.Product{ShopID: "shop-2", ID: "s2", ShoeName: "Trail Blazer", ShoeBrand: "Adidas"}

	tests := []struct {
		name   string
		filter usecase.ProductFilter
		want   []string
	}{
		{name: "no filter", filter: usecase.ProductFilter{}, want: []string{"s1", "s2"}},
		{name: "query matches name", filter: usecase.ProductFilter{Query: "trail"}, want: []string{"s2"}},
		{name: "brand is case insensitive", filter: usecase.ProductFilter{Brand: "nike"}, want: []string{"s1"}},
		{name: "in stock only", filter: usecase.ProductFilter{InStockOnly: true}, want: []string{"s1"}},
		{name: "nothing matches", filter: usecase.ProductFilter{Gender: "Kids"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t, nil)
			fx.productRepo.EXPECT().ListAllProducts(mock.Anything).Return([]*entity.Product{sampleProduct(), soldOut}, nil)

			got, err := fx.service.ListAllProducts(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := []string{}
			for _, summary := range got {
				ids = append(ids, summary.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalogService_InventoryReport(t *testing.T) {
	t.Run("shop staff", func(t *testing.T) {
		fx := createTestCatalogService(t, nil)
		fx.productRepo.EXPECT().FindProduct(mock.Anything, "shop-1", "s1").Return(sampleProduct(), nil)

		view, err := fx.service.InventoryReport(context.Background(),
			entity.Actor{UserID: "e1", Role: entity.RoleEmployee, ShopID: "shop-1"}, "shop-1", "s1")
		require.NoError(t, err)
		require.Len(t, view.Lines, 2)
		assert.Equal(t, catalog.LevelNormal, view.Lines[0].Level)
		assert.Equal(t, catalog.LevelLow, view.Lines[1].Level)
		assert.Equal(t, 15, view.Summary.TotalStock)
	})

	t.Run("other shop is forbidden", func(t *testing.T) {
		fx := createTestCatalogService(t, nil)

		_, err := fx.service.InventoryReport(context.Background(),
			entity.Actor{UserID: "e2", Role: entity.RoleEmployee, ShopID: "shop-2"}, "shop-1", "s1")
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestCatalogService_QuoteCustomOrder(t *testing.T) {
	extension := &entity.ARModelExtension{
		BodyColors: map[string]entity.BodyColor{"red": {}},
		Laces:      map[string]entity.ComponentOption{"waxed": {Price: 150, Days: 2}},
		Insoles:    map[string]entity.ComponentOption{"gel": {Price: 300, Days: 3}},
	}

	t.Run("default pricing", func(t *testing.T) {
		fx := createTestCatalogService(t, nil)
		fx.modelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelClassic).Return(extension, nil)

		quote, err := fx.service.QuoteCustomOrder(context.Background(), &usecase.QuoteRequest{
			Model:     entity.ModelClassic,
			BodyColor: "red",
			Laces:     "waxed",
			Insole:    "gel",
		})
		require.NoError(t, err)

		// 2500 + 450 = 2950, VAT 354, shipping 200.
		assert.Equal(t, catalog.FromPesos(2950), quote.Breakdown.Subtotal)
		assert.Equal(t, catalog.FromPesos(354), quote.Breakdown.VAT)
		assert.Equal(t, catalog.FromPesos(3504), quote.Breakdown.Total)
		assert.Equal(t, "₱3,504.00", quote.Total)
		assert.Equal(t, 10, quote.Days)
		assert.Equal(t, 150.0, quote.Selections.Laces.Price)
	})

	t.Run("configured pricing", func(t *testing.T) {
		cfg := &config.Config{Pricing: &config.PricingConfig{VATRate: 0, ShippingFee: 0}}
		fx := createTestCatalogService(t, cfg)
		fx.modelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelRunner).Return(&entity.ARModelExtension{}, nil)

		quote, err := fx.service.QuoteCustomOrder(context.Background(), &usecase.QuoteRequest{Model: entity.ModelRunner})
		require.NoError(t, err)
		assert.Equal(t, catalog.FromPesos(3000), quote.Breakdown.Total)
	})

	t.Run("unknown option", func(t *testing.T) {
		fx := createTestCatalogService(t, nil)
		fx.modelRepo.EXPECT().FindExtension(mock.Anything, entity.ModelClassic).Return(extension, nil)

		_, err := fx.service.QuoteCustomOrder(context.Background(), &usecase.QuoteRequest{Model: entity.ModelClassic, Laces: "gold"})
		assert.True(t, errors.Is(err, domainerrors.ErrComponentNotFound))
	})

	t.Run("unknown model", func(t *testing.T) {
		fx := createTestCatalogService(t, nil)

		_, err := fx.service.QuoteCustomOrder(context.Background(), &usecase.QuoteRequest{Model: "sandal"})
		assert.True(t, errors.Is(err, domainerrors.ErrModelNotFound))
	})
}
