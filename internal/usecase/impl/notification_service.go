package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strconv"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"

	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	mailer          service.Mailer
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Mailer          service.Mailer
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		mailer:          params.Mailer,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyOrderStatus pushes the event to every active device of the order's
// customer in batches and then emails the address on the order. Delivery
// failures are counted, not returned; only failing to look up devices is an error.
func (s *notificationService) NotifyOrderStatus(ctx context.Context, event *service.OrderStatusEvent) (*usecase.NotificationResult, error) {
	if event == nil || event.Order.UserID == "" || !event.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order status event is incomplete")
	}

	logger := s.log(ctx).With(
		slog.String("event_id", event.EventID),
		slog.String("order", event.Order.String()),
		slog.String("status", event.Status.String()),
	)

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.Order.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	result := &usecase.NotificationResult{Devices: len(devices)}

	tokens := make([]string, 0, len(devices))
	seen := make(map[string]struct{}, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		if _, ok := seen[device.FCMToken]; ok {
			continue
		}
		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	msg := pushMessage(event)
	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		batch := tokens[i:min(i+firebaseBatchSize, len(tokens))]

		sent, failed, invalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, msg)
		if err != nil {
			// Log error but continue with other batches
			logger.Warn("Push batch failed", slog.Int("size", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		result.InvalidTokens = len(invalidTokens)
		if err := s.deviceRepo.DeactivateTokens(ctx, event.Order.UserID, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
	}

	if event.Email != "" {
		if err := s.mailer.Send(ctx, statusEmail(event)); err != nil {
			logger.Warn("Failed to send order status email", slog.Any("error", err))
		} else {
			result.EmailSent = true
		}
	}

	logger.Info("Order status notification delivered",
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
		slog.Bool("email_sent", result.EmailSent),
	)

	return result, nil
}

func pushMessage(event *service.OrderStatusEvent) *service.PushMessage {
	return &service.PushMessage{
		Title: orderTitle(event),
		Body:  event.Message,
		Data: map[string]string{
			"event_id":  event.EventID,
			"kind":      string(event.Order.Kind),
			"order_id":  event.Order.OrderID,
			"status":    event.Status.String(),
			"shop_id":   event.ShopID,
			"timestamp": strconv.FormatInt(event.Timestamp, 10),
		},
	}
}

func orderTitle(event *service.OrderStatusEvent) string {
	name := event.ShoeName
	if name == "" {
		name = "Your order"
	}
	if event.Order.Kind == entity.OrderKindCustom {
		name += " (custom)"
	}

	return fmt.Sprintf("%s is now %s", name, event.Status)
}

func statusEmail(event *service.OrderStatusEvent) *service.Email {
	subject := fmt.Sprintf("Order %s: %s", event.Order.OrderID, event.Status)
	text := fmt.Sprintf("%s\n\n%s\n\nOrder ID: %s", orderTitle(event), event.Message, event.Order.OrderID)

	return &service.Email{
		To:        event.Email,
		Subject:   subject,
		PlainText: text,
		HTML: fmt.Sprintf("<p><strong>%s</strong></p><p>%s</p><p>Order ID: %s</p>",
			html.EscapeString(orderTitle(event)),
			html.EscapeString(event.Message),
			html.EscapeString(event.Order.OrderID),
		),
	}
}
