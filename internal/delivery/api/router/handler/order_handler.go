package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"smartfit/internal/delivery/api/response"
	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const streamHeartbeat = 25 * time.Second

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order views and fulfilment actions.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ReasonRequest carries the free-text reason for reject and cancel.
type ReasonRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// ListOrders returns the orders visible to the caller.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var filter usecase.OrderFilter
	if err := c.Bind(&filter); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed query")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// StreamOrders pushes the caller's order list as server-sent events each time
// it changes. The stream ends when the client disconnects.
func (h *OrderHandler) StreamOrders(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	kind := entity.OrderKind(c.QueryParam("kind"))
	if kind == "" {
		kind = entity.OrderKindStandard
	}

	ctx := c.Request().Context()
	sub, err := h.orderUC.WatchOrders(ctx, actor, kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer sub.Close()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	res := c.Response()
	// Streams outlive the server's write timeout.
	if err := http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Order stream keeps the server write deadline", slog.Any("error", err))
	}
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case list, ok := <-sub.C:
			if !ok {
				return nil
			}
			if err := writeOrderEvent(res, list); err != nil {
				logger.Debug("Order stream closed", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}

func writeOrderEvent(res *echo.Response, list repository.OrderList) error {
	event, payload := "orders", any(list.Orders)
	if list.Err != nil {
		event, payload = "error", map[string]string{"message": list.Err.Error()}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data)

	return errors.WithStack(err)
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.GetOrder(c.Request().Context(), actor, ref)
	})
}

// Timeline returns the order's status history, newest first.
func (h *OrderHandler) Timeline(c echo.Context) error {
	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.Timeline(c.Request().Context(), actor, ref)
	})
}

// TrackingQR renders the order's tracking QR code as PNG.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	ref, err := orderRefOf(c)
	if err != nil {
		return err
	}

	png, err := h.orderUC.TrackingQR(c.Request().Context(), actor, ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ProcessOrder moves a pending order to processing.
func (h *OrderHandler) ProcessOrder(c echo.Context) error {
	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.ProcessOrder(c.Request().Context(), actor, ref)
	})
}

// CompleteOrder closes an order that is processing or out with the carrier.
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.CompleteOrder(c.Request().Context(), actor, ref)
	})
}

// RejectOrder rejects an order with a reason.
func (h *OrderHandler) RejectOrder(c echo.Context) error {
	var req ReasonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.RejectOrder(c.Request().Context(), actor, ref, req.Reason)
	})
}

// CancelOrder cancels an order on the customer's behalf.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	var req ReasonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.CancelOrder(c.Request().Context(), actor, ref, req.Reason)
	})
}

// AddTrackingUpdate appends a status update to the timeline.
func (h *OrderHandler) AddTrackingUpdate(c echo.Context) error {
	var input usecase.TrackingUpdateInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.AddTrackingUpdate(c.Request().Context(), actor, ref, &input)
	})
}

// UpdateShipping replaces the order's carrier details.
func (h *OrderHandler) UpdateShipping(c echo.Context) error {
	var shipping entity.ShippingDetails
	if err := c.Bind(&shipping); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.UpdateShipping(c.Request().Context(), actor, ref, &shipping)
	})
}

// DeleteStatusUpdate removes one timeline entry.
func (h *OrderHandler) DeleteStatusUpdate(c echo.Context) error {
	return h.withRef(c, func(actor entity.Actor, ref entity.OrderRef) (any, error) {
		return h.orderUC.DeleteStatusUpdate(c.Request().Context(), actor, ref, c.Param("updateId"))
	})
}

// withRef resolves the caller and the order path parameters, runs fn and
// writes its result.
func (h *OrderHandler) withRef(c echo.Context, fn func(entity.Actor, entity.OrderRef) (any, error)) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	ref, err := orderRefOf(c)
	if err != nil {
		return err
	}

	result, err := fn(actor, ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
