package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	base
	watcher *docstore.Watcher
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store docstore.Store, watcher *docstore.Watcher, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{
		base:    base{store: store, logger: logger},
		watcher: watcher,
	}
}

func orderPath(ref entity.OrderRef) string {
	return docstore.Join(ref.Kind.Collection(), ref.UserID, ref.OrderID)
}

func checkRef(ref entity.OrderRef) error {
	if !ref.Kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order kind " + string(ref.Kind))
	}

	return validKey(ref.UserID, ref.OrderID)
}

// fillOrder sets the identifiers implied by the document's location.
func fillOrder(order *entity.Order, kind entity.OrderKind, userID, orderID string) {
	order.Kind = kind
	if order.ID == "" {
		order.ID = orderID
	}
	if order.UserID == "" {
		order.UserID = userID
	}
}

// FindOrder returns ErrOrderNotFound when the order does not exist.
func (repo *orderRepository) FindOrder(ctx context.Context, ref entity.OrderRef) (*entity.Order, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}

	order, err := readDoc[entity.Order](ctx, repo.base, orderPath(ref), domainerrors.ErrOrderNotFound)
	if err != nil {
		return nil, err
	}
	fillOrder(order, ref.Kind, ref.UserID, ref.OrderID)

	return order, nil
}

// ListOrders lists orders of one kind, newest first. An empty userID lists every user's orders.
func (repo *orderRepository) ListOrders(ctx context.Context, kind entity.OrderKind, userID string) ([]*entity.Order, error) {
	path, err := ordersPath(kind, userID)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := repo.store.Read(ctx, path, &raw); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return []*entity.Order{}, nil
		}

		return nil, err
	}

	return repo.collectOrders(ctx, kind, userID, raw)
}

func ordersPath(kind entity.OrderKind, userID string) (string, error) {
	if !kind.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown order kind " + string(kind))
	}
	if userID == "" {
		return kind.Collection(), nil
	}
	if err := validKey(userID); err != nil {
		return "", err
	}

	return docstore.Join(kind.Collection(), userID), nil
}

// collectOrders decodes a user's order node, or the whole collection when userID
// is empty. Malformed orders are skipped with a warning.
func (repo *orderRepository) collectOrders(ctx context.Context, kind entity.OrderKind, userID string, raw json.RawMessage) ([]*entity.Order, error) {
	byUser := map[string]json.RawMessage{}
	if userID != "" {
		byUser[userID] = raw
	} else if err := json.Unmarshal(raw, &byUser); err != nil {
		return nil, domainerrors.ErrMalformedDocument.WithDetails(kind.Collection() + ": " + err.Error())
	}

	orders := make([]*entity.Order, 0)
	for _, uid := range sortedKeys(byUser) {
		var byID map[string]json.RawMessage
		if err := json.Unmarshal(byUser[uid], &byID); err != nil {
			repo.log(ctx).Warn("Skipping malformed order node",
				slog.String("path", docstore.Join(kind.Collection(), uid)),
				slog.Any("error", err),
			)

			continue
		}

		for _, orderID := range sortedKeys(byID) {
			path := docstore.Join(kind.Collection(), uid, orderID)
			order, err := decode[entity.Order](path, byID[orderID])
			if err != nil {
				repo.log(ctx).Warn("Skipping malformed order", slog.String("path", path), slog.Any("error", err))

				continue
			}
			fillOrder(order, kind, uid, orderID)
			orders = append(orders, order)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].OrderDate != orders[j].OrderDate {
			return orders[i].OrderDate > orders[j].OrderDate
		}

		return orders[i].ID < orders[j].ID
	})

	return orders, nil
}

// orderNode is an order as read inside a transaction: the raw document, so
// fields this service does not model are written back untouched, and its typed view.
type orderNode struct {
	raw   map[string]any
	order *entity.Order
}

func readOrderNode(node docstore.Node, ref entity.OrderRef) (*orderNode, error) {
	var raw map[string]any
	if err := node.Unmarshal(&raw); err != nil {
		return nil, domainerrors.ErrMalformedDocument.WithDetails(orderPath(ref) + ": " + err.Error())
	}
	if raw == nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	order, err := decodeMap[entity.Order](orderPath(ref), raw)
	if err != nil {
		return nil, err
	}
	fillOrder(order, ref.Kind, ref.UserID, ref.OrderID)

	return &orderNode{raw: raw, order: order}, nil
}

func (n *orderNode) statusUpdates() map[string]any {
	updates, _ := n.raw["statusUpdates"].(map[string]any)
	if updates == nil {
		updates = map[string]any{}
		n.raw["statusUpdates"] = updates
	}

	return updates
}

// ApplyStatusChange atomically re-reads the order, asks fn for the change and
// writes the new status together with its timeline entry.
func (repo *orderRepository) ApplyStatusChange(ctx context.Context, ref entity.OrderRef, fn repository.StatusChangeFunc) (*entity.Order, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}

	var updated *entity.Order
	err := repo.store.Transaction(ctx, orderPath(ref), func(node docstore.Node) (any, error) {
		current, err := readOrderNode(node, ref)
		if err != nil {
			return nil, err
		}

		change, err := fn(current.order)
		if err != nil {
			return nil, err
		}

		current.statusUpdates()[change.Key] = change.Update
		current.raw["status"] = string(change.Update.Status)
		if change.RejectionReason != "" {
			current.raw["rejectionReason"] = change.RejectionReason
		}

		order := current.order
		order.Status = change.Update.Status
		if order.StatusUpdates == nil {
			order.StatusUpdates = map[string]entity.StatusUpdate{}
		}
		order.StatusUpdates[change.Key] = change.Update
		if change.RejectionReason != "" {
			order.RejectionReason = change.RejectionReason
		}
		updated = order

		return current.raw, nil
	})
	if err != nil {
		return nil, err
	}

	repo.log(ctx).Info("Order status changed",
		slog.String("order", ref.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// UpdateShipping merges the non-empty carrier fields into the order.
func (repo *orderRepository) UpdateShipping(ctx context.Context, ref entity.OrderRef, shipping *entity.ShippingDetails) error {
	if err := checkRef(ref); err != nil {
		return err
	}

	fields := map[string]string{
		"carrier":        shipping.Carrier,
		"trackingNumber": shipping.TrackingNumber,
		"shipDate":       shipping.ShipDate,
		"estDelivery":    shipping.EstDelivery,
		"notes":          shipping.Notes,
	}

	return repo.store.Transaction(ctx, orderPath(ref), func(node docstore.Node) (any, error) {
		current, err := readOrderNode(node, ref)
		if err != nil {
			return nil, err
		}

		merged, _ := current.raw["shipping"].(map[string]any)
		if merged == nil {
			merged = map[string]any{}
		}
		for key, value := range fields {
			if value != "" {
				merged[key] = value
			}
		}
		current.raw["shipping"] = merged

		return current.raw, nil
	})
}

// DeleteStatusUpdate removes one timeline entry and returns the order as it was before.
func (repo *orderRepository) DeleteStatusUpdate(ctx context.Context, ref entity.OrderRef, key string) (*entity.Order, error) {
	if err := checkRef(ref); err != nil {
		return nil, err
	}
	if err := validKey(key); err != nil {
		return nil, err
	}

	var before *entity.Order
	err := repo.store.Transaction(ctx, orderPath(ref), func(node docstore.Node) (any, error) {
		current, err := readOrderNode(node, ref)
		if err != nil {
			return nil, err
		}
		if _, ok := current.order.StatusUpdates[key]; !ok {
			return nil, domainerrors.ErrStatusUpdateNotFound.WithDetails(key)
		}

		delete(current.statusUpdates(), key)
		before = current.order

		return current.raw, nil
	})
	if err != nil {
		return nil, err
	}

	return before, nil
}

// WatchOrders streams the full order list of kind (optionally one user's) on every change.
func (repo *orderRepository) WatchOrders(ctx context.Context, kind entity.OrderKind, userID string) (*repository.Subscription[repository.OrderList], error) {
	path, err := ordersPath(kind, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub, err := repo.watcher.Subscribe(ctx, path)
	if err != nil {
		cancel()

		return nil, err
	}

	out := make(chan repository.OrderList, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)

		for snap := range sub.C {
			list := repository.OrderList{Orders: []*entity.Order{}}
			switch {
			case snap.Err != nil:
				list.Err = snap.Err
			case snap.Exists:
				list.Orders, list.Err = repo.collectOrders(ctx, kind, userID, snap.Data)
			}

			select {
			case out <- list:
			case <-ctx.Done():
				return
			}
		}
	}()

	return repository.NewSubscription(out, func() {
		cancel()
		sub.Close()
		<-done
	}), nil
}
