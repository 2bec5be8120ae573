package document

import (
	"context"
	"encoding/json"
	"log/slog"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	base
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store docstore.Store, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{base: base{store: store, logger: logger}}
}

func fillProduct(product *entity.Product, shopID, shoeID string) {
	if product.ShopID == "" {
		product.ShopID = shopID
	}
	if product.ID == "" {
		product.ID = shoeID
	}
}

// FindProduct returns ErrProductNotFound when absent.
func (repo *productRepository) FindProduct(ctx context.Context, shopID, shoeID string) (*entity.Product, error) {
	if err := validKey(shopID, shoeID); err != nil {
		return nil, err
	}

	product, err := readDoc[entity.Product](ctx, repo.base, docstore.Join(pathProducts, shopID, shoeID), domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}
	fillProduct(product, shopID, shoeID)

	return product, nil
}

// ListShopProducts lists the products of one shop.
func (repo *productRepository) ListShopProducts(ctx context.Context, shopID string) ([]*entity.Product, error) {
	if err := validKey(shopID); err != nil {
		return nil, err
	}

	return readCollection(ctx, repo.base, docstore.Join(pathProducts, shopID), func(key string, p *entity.Product) {
		fillProduct(p, shopID, key)
	})
}

// ListAllProducts lists every shop's products.
func (repo *productRepository) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	shops, err := readChildren(ctx, repo.base, pathProducts)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0)
	for _, shopID := range sortedKeys(shops) {
		var byID map[string]json.RawMessage
		if err := json.Unmarshal(shops[shopID], &byID); err != nil {
			repo.log(ctx).Warn("Skipping malformed shop catalog", slog.String("shop_id", shopID), slog.Any("error", err))

			continue
		}

		for _, shoeID := range sortedKeys(byID) {
			path := docstore.Join(pathProducts, shopID, shoeID)
			product, err := decode[entity.Product](path, byID[shoeID])
			if err != nil {
				repo.log(ctx).Warn("Skipping malformed product", slog.String("path", path), slog.Any("error", err))

				continue
			}
			fillProduct(product, shopID, shoeID)
			products = append(products, product)
		}
	}

	return products, nil
}

// arModelRepository implements the repository.ARModelRepository interface.
type arModelRepository struct {
	base
}

// NewARModelRepository is the constructor for arModelRepository.
func NewARModelRepository(store docstore.Store, logger *slog.Logger) repository.ARModelRepository {
	return &arModelRepository{base: base{store: store, logger: logger}}
}

func checkModel(id entity.ARModelID) error {
	if _, ok := entity.FindBaseModel(id); !ok {
		return domainerrors.ErrModelNotFound.WithDetails(string(id))
	}

	return nil
}

// FindExtension returns an empty extension when nothing is stored for id.
func (repo *arModelRepository) FindExtension(ctx context.Context, id entity.ARModelID) (*entity.ARModelExtension, error) {
	if err := checkModel(id); err != nil {
		return nil, err
	}

	ext, err := readDoc[entity.ARModelExtension](ctx, repo.base, docstore.Join(pathARModels, string(id)), docstore.ErrNotFound)
	if errors.Is(err, docstore.ErrNotFound) {
		return &entity.ARModelExtension{}, nil
	}

	return ext, err
}

// MergeBodyColor merges the given asset URLs into one body color entry.
func (repo *arModelRepository) MergeBodyColor(ctx context.Context, id entity.ARModelID, colorKey string, assets map[string]string) error {
	if err := checkModel(id); err != nil {
		return err
	}
	if err := validKey(colorKey); err != nil {
		return err
	}
	if len(assets) == 0 {
		return nil
	}

	patch := make(map[string]any, len(assets))
	for asset, url := range assets {
		switch asset {
		case entity.AssetDeepAR:
			patch[docstore.Join("bodyColors", colorKey, entity.AssetDeepAR)] = url
		case entity.AssetMain, entity.AssetFront, entity.AssetSide, entity.AssetBack:
			patch[docstore.Join("bodyColors", colorKey, "images", asset)] = url
		default:
			return domainerrors.ErrValidationFailed.WithDetails("unknown asset " + asset)
		}
	}

	return repo.store.Update(ctx, docstore.Join(pathARModels, string(id)), patch)
}

// DeleteBodyColor removes a body color entry.
func (repo *arModelRepository) DeleteBodyColor(ctx context.Context, id entity.ARModelID, colorKey string) error {
	if err := checkModel(id); err != nil {
		return err
	}
	if err := validKey(colorKey); err != nil {
		return err
	}

	return repo.store.Delete(ctx, docstore.Join(pathARModels, string(id), "bodyColors", colorKey))
}

// SaveComponentOption writes one laces or insoles option.
func (repo *arModelRepository) SaveComponentOption(ctx context.Context, id entity.ARModelID, kind entity.ComponentKind, optionID string, option *entity.ComponentOption) error {
	if err := checkModel(id); err != nil {
		return err
	}
	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown component " + string(kind))
	}
	if err := validKey(optionID); err != nil {
		return err
	}

	return repo.store.Create(ctx, docstore.Join(pathARModels, string(id), string(kind), optionID), "", option)
}
