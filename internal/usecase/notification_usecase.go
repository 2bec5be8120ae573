package usecase

import (
	"context"

	"smartfit/internal/domain/service"
)

// NotificationResult summarizes the delivery of one order status event.
type NotificationResult struct {
	Devices       int  `json:"devices"`
	Sent          int  `json:"sent"`
	Failed        int  `json:"failed"`
	InvalidTokens int  `json:"invalidTokens"`
	EmailSent     bool `json:"emailSent"`
}

// NotificationUsecase delivers order status events to customers.
type NotificationUsecase interface {
	// NotifyOrderStatus pushes the event to the customer's active devices and emails them.
	NotifyOrderStatus(ctx context.Context, event *service.OrderStatusEvent) (*NotificationResult, error)
}
