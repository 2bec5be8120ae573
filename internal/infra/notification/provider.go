package notification

import (
	"context"
	"log/slog"

	"smartfit/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// NotificationParams holds dependencies for NewNotificationService, injected by Fx
type NotificationParams struct {
	fx.In

	Ctx    context.Context
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewNotificationService uses FCM when a Firebase app is available and logs otherwise.
func NewNotificationService(params NotificationParams) (service.NotificationService, error) {
	if params.App == nil {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return NewLogService(params.Logger), nil
	}

	return NewFirebaseService(params.Ctx, params.App, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
