package worker

import (
	"log/slog"
	"net/http"

	"smartfit/config"
	"smartfit/internal/delivery"
	"smartfit/internal/delivery/middleware"
	"smartfit/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// pushBodyLimit bounds one push envelope; order status events are small.
const pushBodyLimit = "256K"

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Reconciler  *Reconciler
}

// NewServer builds the worker's HTTP surface: Pub/Sub pushes and on-demand reconcile.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))
	e.POST("/reconcile", params.Reconciler.HandleReconcile)

	return delivery.NewEchoServer(params.Lc, "worker", params.Cfg.HTTP.Port, e, params.Logger), nil
}
