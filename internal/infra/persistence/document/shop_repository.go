package document

import (
	"context"
	"log/slog"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/infra/docstore"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	base
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(store docstore.Store, logger *slog.Logger) repository.ShopRepository {
	return &shopRepository{base: base{store: store, logger: logger}}
}

func fillShop(shop *entity.Shop, id string) {
	if shop.ID == "" {
		shop.ID = id
	}
	if shop.Status == "" {
		shop.Status = entity.ShopStatusPending
	}
}

// FindShop returns ErrShopNotFound when absent.
func (repo *shopRepository) FindShop(ctx context.Context, id string) (*entity.Shop, error) {
	if err := validKey(id); err != nil {
		return nil, err
	}

	shop, err := readDoc[entity.Shop](ctx, repo.base, docstore.Join(pathShops, id), domainerrors.ErrShopNotFound)
	if err != nil {
		return nil, err
	}
	fillShop(shop, id)

	return shop, nil
}

// ListShops lists every shop.
func (repo *shopRepository) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	return readCollection(ctx, repo.base, pathShops, func(key string, shop *entity.Shop) {
		fillShop(shop, key)
	})
}

// UpdateShop atomically re-reads the shop and writes the status fields fn changed.
func (repo *shopRepository) UpdateShop(ctx context.Context, id string, fn func(shop *entity.Shop) error) (*entity.Shop, error) {
	if err := validKey(id); err != nil {
		return nil, err
	}

	path := docstore.Join(pathShops, id)

	var updated *entity.Shop
	err := repo.store.Transaction(ctx, path, func(node docstore.Node) (any, error) {
		var raw map[string]any
		if err := node.Unmarshal(&raw); err != nil {
			return nil, domainerrors.ErrMalformedDocument.WithDetails(path + ": " + err.Error())
		}
		if raw == nil {
			return nil, domainerrors.ErrShopNotFound
		}

		shop, err := decodeMap[entity.Shop](path, raw)
		if err != nil {
			return nil, err
		}
		fillShop(shop, id)

		if err := fn(shop); err != nil {
			return nil, err
		}

		raw["status"] = string(shop.Status)
		raw["rejectionReason"] = nilIfEmpty(shop.RejectionReason)
		raw["dateProcessed"] = nilIfZero(shop.DateProcessed)
		raw["dateSubmitted"] = nilIfZero(shop.DateSubmitted)
		updated = shop

		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
