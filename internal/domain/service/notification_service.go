package service

import (
	"context"
)

// PushMessage is the content of a device push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// NotificationService sends push notifications to FCM device tokens.
type NotificationService interface {
	// SendBatchNotification sends msg to up to 500 tokens and reports the tokens
	// the provider rejected as invalid or unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, msg *PushMessage) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends msg to one token.
	SendSingleNotification(ctx context.Context, token string, msg *PushMessage) error
}
