// Package document implements the repositories on the hierarchical document store.
package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	deliverycontext "smartfit/internal/delivery/context"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
	"smartfit/internal/infra/persistence/model"
)

// Top-level collections of the document tree.
const (
	pathEmployees   = "employees"
	pathActivations = "employeeActivations"
	pathShops       = "shop"
	pathCustomers   = "customers"
	pathAdmins      = "admins"
	pathProducts    = "shoe"
	pathWishlist    = "wishlist"
	pathCarts       = "carts"
	pathDevices     = "devices"
	pathARModels    = "ar_customization_models"
	pathCredentials = "credentials"
)

// base holds what every repository needs.
type base struct {
	store  docstore.Store
	logger *slog.Logger
}

func (b base) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, b.logger)
}

// validKey rejects identifiers that cannot be used as a path segment before
// anything reaches the store.
func validKey(keys ...string) error {
	for _, key := range keys {
		if err := docstore.ValidateKey(key); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}

	return nil
}

// decode unmarshals raw into a new T and checks it against the document rules.
func decode[T any](path string, raw json.RawMessage) (*T, error) {
	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, domainerrors.ErrMalformedDocument.WithDetails(path + ": " + err.Error())
	}
	if err := model.Check(path, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// readDoc reads one document, mapping absence to notFound.
func readDoc[T any](ctx context.Context, b base, path string, notFound error) (*T, error) {
	var raw json.RawMessage
	if err := b.store.Read(ctx, path, &raw); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, notFound
		}

		return nil, err
	}

	return decode[T](path, raw)
}

// readChildren reads the raw children of a collection node. An absent node is empty.
func readChildren(ctx context.Context, b base, path string) (map[string]json.RawMessage, error) {
	children := map[string]json.RawMessage{}
	if err := b.store.Read(ctx, path, &children); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return map[string]json.RawMessage{}, nil
		}
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, domainerrors.ErrMalformedDocument.WithDetails(path + ": " + err.Error())
	}

	return children, nil
}

// sortedKeys returns map keys in ascending order so listings are deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// readCollection decodes every child of path. Malformed children are skipped
// with a warning so one bad record does not hide the rest.
func readCollection[T any](ctx context.Context, b base, path string, fill func(key string, doc *T)) ([]*T, error) {
	children, err := readChildren(ctx, b, path)
	if err != nil {
		return nil, err
	}

	docs := make([]*T, 0, len(children))
	for _, key := range sortedKeys(children) {
		childPath := docstore.Join(path, key)
		doc, err := decode[T](childPath, children[key])
		if err != nil {
			b.log(ctx).Warn("Skipping malformed document", slog.String("path", childPath), slog.Any("error", err))

			continue
		}
		if fill != nil {
			fill(key, doc)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// decodeMap is decode for a value already unmarshalled into a generic map.
func decodeMap[T any](path string, raw map[string]any) (*T, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return decode[T](path, encoded)
}

// nilIfEmpty maps an empty string to nil so the field is removed on write.
func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func nilIfZero(n int64) any {
	if n == 0 {
		return nil
	}

	return n
}
