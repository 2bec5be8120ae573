package main

import (
	"context"
	"log/slog"
	"os"

	"smartfit/config"
	"smartfit/internal/delivery"
	"smartfit/internal/delivery/worker"
	"smartfit/internal/delivery/worker/handler"
	"smartfit/internal/infra/auth"
	"smartfit/internal/infra/docstore"
	"smartfit/internal/infra/firebase"
	logs "smartfit/internal/infra/log"
	"smartfit/internal/infra/mail"
	"smartfit/internal/infra/notification"
	"smartfit/internal/infra/persistence/document"
	"smartfit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
		docstore.Module,
	)
}

func injectRepo() fx.Option {
	return document.Module
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		mail.Module,
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewActivationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			worker.NewReconciler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
