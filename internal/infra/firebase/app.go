// Package firebase initializes the shared Firebase app used by the database,
// auth and messaging clients.
package firebase

import (
	"context"
	"log/slog"

	"smartfit/config"
	"smartfit/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for NewApp, injected by Fx
type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp creates the Firebase app. It returns a nil app when Firebase is not
// configured; consumers that require it fail at construction instead.
func NewApp(params AppParams) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "" && cfg.DatabaseURL == "") {
		params.Logger.Info("Firebase not configured")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// Module provides the Firebase app FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewApp),
)
