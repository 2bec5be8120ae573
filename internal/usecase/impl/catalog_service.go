package impl

import (
	"context"
	"log/slog"
	"strings"

	"smartfit/config"
	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/catalog"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	modelRepo   repository.ARModelRepository
	pricing     catalog.Pricing
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ARModelRepo repository.ARModelRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService creates the catalog service. Custom order pricing comes from
// the pricing config section, falling back to the standard VAT and shipping fee.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	pricing := catalog.DefaultPricing()
	if params.Config != nil && params.Config.Pricing != nil {
		pricing = catalog.Pricing{
			VATRate:     params.Config.Pricing.VATRate,
			ShippingFee: params.Config.Pricing.ShippingFee,
		}
	}

	return &catalogService{
		productRepo: params.ProductRepo,
		modelRepo:   params.ARModelRepo,
		pricing:     pricing,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func summarize(product *entity.Product) *usecase.ProductSummary {
	return &usecase.ProductSummary{
		Product:      product,
		StockStatus:  catalog.StockStatus(product),
		PriceDisplay: catalog.PriceDisplay(product),
	}
}

func (srv *catalogService) GetProductSummary(ctx context.Context, shopID, shoeID string) (*usecase.ProductSummary, error) {
	product, err := srv.productRepo.FindProduct(ctx, shopID, shoeID)
	if err != nil {
		return nil, errors.Wrapf(err, "find product %s/%s", shopID, shoeID)
	}

	return summarize(product), nil
}

func (srv *catalogService) ListShopProducts(ctx context.Context, shopID string) ([]*usecase.ProductSummary, error) {
	products, err := srv.productRepo.ListShopProducts(ctx, shopID)
	if err != nil {
		return nil, errors.Wrapf(err, "list products of shop %s", shopID)
	}

	summaries := make([]*usecase.ProductSummary, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, summarize(product))
	}

	return summaries, nil
}

func (srv *catalogService) ListAllProducts(ctx context.Context, filter usecase.ProductFilter) ([]*usecase.ProductSummary, error) {
	products, err := srv.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	summaries := make([]*usecase.ProductSummary, 0, len(products))
	for _, product := range products {
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		if filter.Brand != "" && !strings.EqualFold(product.ShoeBrand, filter.Brand) {
			continue
		}
		if filter.Gender != "" && !strings.EqualFold(product.ShoeGender, filter.Gender) {
			continue
		}

		summary := summarize(product)
		if filter.InStockOnly && summary.StockStatus != catalog.InStock {
			continue
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func matchesQuery(product *entity.Product, query string) bool {
	for _, field := range []string{product.ShoeName, product.ShoeBrand, product.ShoeType, product.ShopName} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

func (srv *catalogService) InventoryReport(ctx context.Context, actor entity.Actor, shopID, shoeID string) (*usecase.InventoryView, error) {
	if err := requireShopAccess(actor, shopID); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindProduct(ctx, shopID, shoeID)
	if err != nil {
		return nil, errors.Wrapf(err, "find product %s/%s", shopID, shoeID)
	}

	lines, summary := catalog.InventoryReport(product)
	if lines == nil {
		lines = []catalog.InventoryLine{}
	}

	return &usecase.InventoryView{
		ShopID:   shopID,
		ShoeID:   shoeID,
		ShoeName: product.ShoeName,
		Lines:    lines,
		Summary:  summary,
	}, nil
}

func (srv *catalogService) QuoteCustomOrder(ctx context.Context, req *usecase.QuoteRequest) (*usecase.CustomOrderQuote, error) {
	if req == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quote request is required")
	}

	base, ok := entity.FindBaseModel(req.Model)
	if !ok {
		return nil, domainerrors.ErrModelNotFound.WithDetails(string(req.Model))
	}

	ext, err := srv.modelRepo.FindExtension(ctx, req.Model)
	if err != nil {
		return nil, errors.Wrapf(err, "find model %s", req.Model)
	}

	if req.BodyColor != "" {
		if _, ok := ext.BodyColors[req.BodyColor]; !ok {
			return nil, domainerrors.ErrComponentNotFound.WithDetails("body color " + req.BodyColor)
		}
	}

	selections := &entity.CustomSelections{
		Model:     base.ID,
		BodyColor: req.BodyColor,
		Size:      req.Size,
		BasePrice: base.BasePrice,
	}

	extraDays := 0
	pick := func(kind entity.ComponentKind, id string) (*entity.ComponentSelection, error) {
		if id == "" {
			return nil, nil
		}
		option, ok := ext.Options(kind)[id]
		if !ok {
			return nil, domainerrors.ErrComponentNotFound.WithDetails(string(kind) + " " + id)
		}
		extraDays = max(extraDays, option.Days)

		return &entity.ComponentSelection{ID: id, Price: option.Price}, nil
	}

	if selections.Laces, err = pick(entity.ComponentLaces, req.Laces); err != nil {
		return nil, err
	}
	if selections.Insole, err = pick(entity.ComponentInsoles, req.Insole); err != nil {
		return nil, err
	}

	breakdown := srv.pricing.PriceBreakdown(base.BasePrice, selections.ComponentPrices()...)
	srv.log(ctx).Debug("Quoted custom order",
		slog.String("model", string(base.ID)),
		slog.String("total", breakdown.Total.String()),
	)

	return &usecase.CustomOrderQuote{
		Selections: selections,
		Breakdown:  breakdown,
		Total:      breakdown.Total.String(),
		Days:       base.Days + extraDays,
	}, nil
}
