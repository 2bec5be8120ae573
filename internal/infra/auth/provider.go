package auth

import (
	"context"
	"log/slog"

	"smartfit/config"
	"smartfit/internal/domain/constants"
	"smartfit/internal/domain/repository"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// IdentityParams holds dependencies for NewIdentityProvider, injected by Fx
type IdentityParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	App         *firebase.App `optional:"true"`
	Credentials repository.CredentialRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Mailer      service.Mailer
}

// NewIdentityProvider creates the IdentityProvider selected by auth.provider.
func NewIdentityProvider(params IdentityParams) (service.IdentityProvider, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case constants.AuthProviderLocal:
		params.Logger.Info("Using local identity provider")

		return NewLocalIdentity(params.Credentials, params.Hasher, params.Tokens, params.Mailer, params.Logger), nil
	case constants.AuthProviderFirebase:
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseIdentity(params.Ctx, params.App, cfg.WebAPIKey, params.Mailer, params.Logger)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBcryptHasher,
		NewJWTService,
		NewIdentityProvider,
	),
)
