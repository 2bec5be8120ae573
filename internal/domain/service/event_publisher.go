package service

import (
	"context"

	"smartfit/internal/domain/entity"
)

// OrderStatusEvent is published after an order changes status and is
// processed by the notification worker.
type OrderStatusEvent struct {
	RequestID string             `json:"request_id,omitempty"` // For distributed tracing
	EventID   string             `json:"event_id"`
	Order     entity.OrderRef    `json:"order"`
	Status    entity.OrderStatus `json:"status"`
	Previous  entity.OrderStatus `json:"previous_status,omitempty"`
	Message   string             `json:"message"`
	ShopID    string             `json:"shop_id,omitempty"`
	ShoeName  string             `json:"shoe_name,omitempty"`
	Email     string             `json:"email,omitempty"`
	Timestamp int64              `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderStatusEvent publishes an order status event for async processing
	PublishOrderStatusEvent(ctx context.Context, event *OrderStatusEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
