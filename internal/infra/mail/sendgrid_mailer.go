// Package mail delivers transactional email through SendGrid, or to the log in development.
package mail

import (
	"context"
	"html"
	"log/slog"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sender is the part of the SendGrid client the mailer uses.
type sender interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// sendGridMailer implements service.Mailer on the SendGrid v3 API.
type sendGridMailer struct {
	client sender
	from   *sgmail.Email
	logger *slog.Logger
}

// NewSendGridMailer creates a mailer sending from fromAddress.
func NewSendGridMailer(apiKey, fromName, fromAddress string, logger *slog.Logger) (service.Mailer, error) {
	if apiKey == "" {
		return nil, errors.New("sendgrid api key is empty")
	}
	if fromAddress == "" {
		return nil, errors.New("from address is empty")
	}

	return newSendGridMailer(sendgrid.NewSendClient(apiKey), fromName, fromAddress, logger), nil
}

func newSendGridMailer(client sender, fromName, fromAddress string, logger *slog.Logger) *sendGridMailer {
	return &sendGridMailer{
		client: client,
		from:   sgmail.NewEmail(fromName, fromAddress),
		logger: logger,
	}
}

// Send delivers email. A status of 400 or above is an error carrying the response body.
func (m *sendGridMailer) Send(ctx context.Context, email *service.Email) error {
	if email.To == "" {
		return errors.New("to address is empty")
	}

	htmlContent := email.HTML
	if htmlContent == "" {
		htmlContent = "<pre>" + html.EscapeString(email.PlainText) + "</pre>"
	}

	message := sgmail.NewSingleEmail(
		m.from,
		email.Subject,
		sgmail.NewEmail(email.ToName, email.To),
		email.PlainText,
		htmlContent,
	)

	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		logger.Error("SendGrid request failed", slog.String("to", email.To), slog.Any("error", err))

		return errors.Wrap(err, "sendgrid send error")
	}
	if response.StatusCode >= 400 {
		logger.Error("SendGrid rejected message",
			slog.Int("status", response.StatusCode),
			slog.String("body", response.Body),
		)

		return errors.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	logger.Info("Mail sent",
		slog.Int("status", response.StatusCode),
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
	)

	return nil
}
