package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"smartfit/internal/domain/lifecycle"
	"smartfit/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance on a port and shuts it down with the app.
type EchoServer struct {
	name   string
	port   int
	h2c    *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// EchoOption customizes an EchoServer.
type EchoOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 in addition to HTTP/1.1.
func WithH2C(h2 *http2.Server) EchoOption {
	return func(s *EchoServer) { s.h2c = h2 }
}

// NewEchoServer wraps e and registers its graceful shutdown on lc.
func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger, opts ...EchoOption) *EchoServer {
	e.HideBanner = true
	e.HidePort = true

	s := &EchoServer{name: name, port: port, echo: e, logger: logger}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s
}

// Serve blocks until the server is shut down.
func (s *EchoServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting "+s.name+" server", slog.String("host_port", hostPort), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(hostPort, s.h2c)
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down " + s.name + " server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
