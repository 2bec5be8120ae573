package notification

import (
	"context"
	"log/slog"

	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// maxMulticastTokens is the FCM limit for one multicast request.
const maxMulticastTokens = 500

// messagingClient is the subset of *messaging.Client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseService creates a notification service on the app's messaging client
func NewFirebaseService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil {
		return nil, errors.New("firebase app is not configured")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

func toNotification(msg *service.PushMessage) *messaging.Notification {
	return &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token string, msg *service.PushMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: toNotification(msg),
		Data:         msg.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: toNotification(msg),
		Data:         msg.Data,
	})
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		} else {
			s.logger.Warn("Push delivery failed", slog.Int("index", idx), slog.Any("error", sendResponse.Error))
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}
