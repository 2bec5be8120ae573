package notification

import (
	"context"
	"log/slog"

	"smartfit/internal/domain/service"
)

// logService records pushes instead of sending them. Used when Firebase is not configured.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a NotificationService that only logs.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token string, msg *service.PushMessage) error {
	s.logger.Info("[LogPush] Notification", slog.String("token", token), slog.String("title", msg.Title))

	return nil
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (int, int, []string, error) {
	s.logger.Info("[LogPush] Batch notification",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return len(tokens), 0, nil, nil
}
