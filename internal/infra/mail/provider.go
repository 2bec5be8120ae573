package mail

import (
	"log/slog"

	"smartfit/config"
	"smartfit/internal/domain/constants"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"go.uber.org/fx"
)

// MailerParams holds dependencies for NewMailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer creates the Mailer selected by mail.provider.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail

	switch cfg.Provider {
	case "", constants.MailProviderLog:
		params.Logger.Info("Using log mailer")

		return NewLogMailer(params.Logger), nil
	case constants.MailProviderSendGrid:
		params.Logger.Info("Using SendGrid mailer", slog.String("from", cfg.FromAddress))

		return NewSendGridMailer(cfg.APIKey, cfg.FromName, cfg.FromAddress, params.Logger)
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer),
)
