package main

import (
	"context"
	"log/slog"
	"os"

	"smartfit/config"
	"smartfit/internal/delivery"
	"smartfit/internal/delivery/api"
	"smartfit/internal/delivery/api/middleware"
	"smartfit/internal/delivery/api/router/handler"
	"smartfit/internal/infra/auth"
	"smartfit/internal/infra/docstore"
	"smartfit/internal/infra/firebase"
	logs "smartfit/internal/infra/log"
	"smartfit/internal/infra/mail"
	"smartfit/internal/infra/notification"
	"smartfit/internal/infra/persistence/document"
	"smartfit/internal/infra/pubsub"
	"smartfit/internal/infra/qrcode"
	"smartfit/internal/infra/storage"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		storage.Module,
		pubsub.Module,
		notification.Module,
		qrcode.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewActivationService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewCustomizationService,
			impl.NewShopService,
			impl.NewShoppingService,
			impl.NewDeviceService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
			handler.NewCustomizationHandler,
			handler.NewShoppingHandler,
			handler.NewShopHandler,
			handler.NewDeviceHandler,
			handler.NewDiagnosticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
