// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"smartfit/internal/domain/entity"
	"smartfit/internal/domain/repository"
)

// TrackingUpdateInput is a shipping progress report added to an order's timeline.
type TrackingUpdateInput struct {
	Status   entity.OrderStatus `json:"status" validate:"required"`
	Message  string             `json:"message" validate:"max=500"`
	Location string             `json:"location" validate:"max=200"`
	// Timestamp is Unix milliseconds. Zero means now.
	Timestamp int64 `json:"timestamp" validate:"gte=0"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Kind   entity.OrderKind   `query:"kind"`
	Status entity.OrderStatus `query:"status"`
}

// DeleteUpdateResult is the outcome of removing a timeline entry.
type DeleteUpdateResult struct {
	Order   *entity.Order        `json:"order"`
	Removed entity.TimelineEntry `json:"removed"`
	// StatusStale is set when the removed entry was the one that produced the
	// order's current status. The status is left unchanged.
	StatusStale bool `json:"statusStale"`
}

// OrderUsecase defines the order lifecycle operations.
type OrderUsecase interface {
	GetOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef) (*entity.Order, error)
	ListOrders(ctx context.Context, actor entity.Actor, filter OrderFilter) ([]*entity.Order, error)
	// Timeline returns the order's status updates newest first.
	Timeline(ctx context.Context, actor entity.Actor, ref entity.OrderRef) ([]entity.TimelineEntry, error)

	// ProcessOrder moves a pending order to processing.
	ProcessOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef) (*entity.Order, error)
	// CompleteOrder marks an order completed.
	CompleteOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef) (*entity.Order, error)
	// RejectOrder rejects a pending order. Admin only; reason is required.
	RejectOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef, reason string) (*entity.Order, error)
	// CancelOrder cancels a pending order on behalf of its customer.
	CancelOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef, reason string) (*entity.Order, error)
	// AddTrackingUpdate appends a shipping update whose status becomes the order status.
	AddTrackingUpdate(ctx context.Context, actor entity.Actor, ref entity.OrderRef, input *TrackingUpdateInput) (*entity.Order, error)
	// UpdateShipping merges carrier details without changing the status.
	UpdateShipping(ctx context.Context, actor entity.Actor, ref entity.OrderRef, shipping *entity.ShippingDetails) (*entity.Order, error)
	// DeleteStatusUpdate removes one timeline entry without recomputing the status.
	DeleteStatusUpdate(ctx context.Context, actor entity.Actor, ref entity.OrderRef, updateID string) (*DeleteUpdateResult, error)

	// WatchOrders streams the orders visible to actor. The caller must Close the subscription.
	WatchOrders(ctx context.Context, actor entity.Actor, kind entity.OrderKind) (*repository.Subscription[repository.OrderList], error)
	// TrackingQR renders a PNG QR code for the order.
	TrackingQR(ctx context.Context, actor entity.Actor, ref entity.OrderRef) ([]byte, error)
}
