package worker

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"smartfit/config"
	"smartfit/internal/domain/lifecycle"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Reconciler periodically finishes employee activations left part way.
type Reconciler struct {
	activationUC usecase.ActivationUsecase
	interval     time.Duration
	logger       *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ReconcilerParams holds dependencies for the Reconciler
type ReconcilerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ActivationUC usecase.ActivationUsecase
}

// NewReconciler registers the reconcile loop on the app lifecycle. A zero
// interval disables it.
func NewReconciler(params ReconcilerParams) *Reconciler {
	r := &Reconciler{
		activationUC: params.ActivationUC,
		logger:       params.Logger,
	}
	if params.Cfg.Activation != nil {
		r.interval = params.Cfg.Activation.ReconcileInterval
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.Start()

			return nil
		},
		OnStop: r.Stop,
	})

	return r
}

// Start launches the loop.
func (r *Reconciler) Start() {
	if r.interval <= 0 {
		r.logger.Info("[Worker] Activation reconciler disabled")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight pass to return.
func (r *Reconciler) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reconciler) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = r.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single reconcile pass and logs its outcome.
func (r *Reconciler) RunOnce(ctx context.Context) (*usecase.ReconcileResult, error) {
	passCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout*3)
	defer cancel()

	result, err := r.activationUC.ReconcilePending(passCtx)
	if err != nil {
		r.logger.Error("[Worker] Activation reconcile failed", slog.Any("error", err))

		return nil, err
	}
	if result.Examined > 0 {
		r.logger.Info("[Worker] Activation reconcile finished",
			slog.Int("examined", result.Examined),
			slog.Int("completed", result.Completed),
			slog.Int("failed", result.Failed),
		)
	}

	return result, nil
}

// HandleReconcile runs a pass on demand and answers with its counts.
func (r *Reconciler) HandleReconcile(c echo.Context) error {
	result, err := r.RunOnce(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "reconcile failed"})
	}

	return c.JSON(http.StatusOK, result)
}
