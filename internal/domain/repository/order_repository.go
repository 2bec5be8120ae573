package repository

import (
	"context"

	"smartfit/internal/domain/entity"
)

// StatusChangeFunc computes the change to apply to the current order. It runs
// inside the store transaction and may run more than once. Returning an error
// aborts without writing.
type StatusChangeFunc func(current *entity.Order) (*entity.StatusChange, error)

// OrderList is one rebuilt view of a watched order collection.
type OrderList struct {
	Orders []*entity.Order
	Err    error
}

// OrderRepository defines order persistence over transactions/ and
// customizedtransactions/.
type OrderRepository interface {
	// FindOrder returns ErrOrderNotFound when the order does not exist.
	FindOrder(ctx context.Context, ref entity.OrderRef) (*entity.Order, error)

	// ListOrders lists orders of one kind. An empty userID lists every user's orders.
	ListOrders(ctx context.Context, kind entity.OrderKind, userID string) ([]*entity.Order, error)

	// ApplyStatusChange atomically re-reads the order, asks fn for the change and
	// writes the new status together with its timeline entry.
	ApplyStatusChange(ctx context.Context, ref entity.OrderRef, fn StatusChangeFunc) (*entity.Order, error)

	// UpdateShipping merges carrier details into the order.
	UpdateShipping(ctx context.Context, ref entity.OrderRef, shipping *entity.ShippingDetails) error

	// DeleteStatusUpdate removes one timeline entry and returns the order as it was before.
	DeleteStatusUpdate(ctx context.Context, ref entity.OrderRef, key string) (*entity.Order, error)

	// WatchOrders streams the full order list of kind (optionally one user's) on every change.
	WatchOrders(ctx context.Context, kind entity.OrderKind, userID string) (*Subscription[OrderList], error)
}
