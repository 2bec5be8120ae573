package api

import (
	"log/slog"

	"smartfit/config"
	"smartfit/internal/delivery"
	apimiddleware "smartfit/internal/delivery/api/middleware"
	"smartfit/internal/delivery/api/router"
	"smartfit/internal/delivery/api/validator"
	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

// NewServer builds the customer, shop and admin API. It speaks h2c so SSE
// order streams can share one connection with ordinary calls.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Recover first, then the request ID so the logger can include it.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, deliverycontext.HeaderXRequestID},
			ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	)
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return delivery.NewEchoServer(params.Lc, "API", params.Cfg.HTTP.Port, e, params.Logger,
		delivery.WithH2C(&http2.Server{IdleTimeout: timeouts.IdleTimeout}),
	), nil
}
