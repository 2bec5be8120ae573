package mail

import (
	"context"
	"log/slog"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/service"
)

// logMailer writes messages to the log instead of sending them.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer for local development.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, email *service.Email) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("[LogMailer] Mail not sent",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.PlainText),
	)

	return nil
}
