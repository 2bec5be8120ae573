package impl

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService creates the order lifecycle service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// transition describes one status change requested by an actor.
type transition struct {
	next      entity.OrderStatus
	message   string
	location  string
	timestamp int64
	reason    string
	// authorize runs against the order as re-read inside the transaction.
	authorize func(current *entity.Order) error
}

func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef) (*entity.Order, error) {
	if err := checkOrderRef(ref); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindOrder(ctx, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "find order %s", ref)
	}
	if !canViewOrder(actor, order) {
		return nil, domainerrors.ErrForbidden.WithDetails("order " + ref.String())
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, actor entity.Actor, filter usecase.OrderFilter) ([]*entity.Order, error) {
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order kind: " + string(filter.Kind))
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + filter.Status.String())
	}

	kinds := []entity.OrderKind{entity.OrderKindStandard, entity.OrderKindCustom}
	if filter.Kind != "" {
		kinds = []entity.OrderKind{filter.Kind}
	}

	orders := []*entity.Order{}
	for _, kind := range kinds {
		userID := ""
		switch {
		case actor.IsAdmin():
		case actor.Role.IsShopStaff():
			if kind == entity.OrderKindCustom {
				continue
			}
		default:
			userID = actor.UserID
		}

		list, err := srv.orderRepo.ListOrders(ctx, kind, userID)
		if err != nil {
			return nil, errors.Wrapf(err, "list %s orders", kind)
		}
		for _, order := range list {
			if !canViewOrder(actor, order) {
				continue
			}
			if filter.Status != "" && order.Status != filter.Status {
				continue
			}
			orders = append(orders, order)
		}
	}

	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		return cmp.Compare(b.OrderDate, a.OrderDate)
	})

	return orders, nil
}

func (srv *orderService) Timeline(ctx context.Context, actor entity.Actor, ref entity.OrderRef) ([]entity.TimelineEntry, error) {
	order, err := srv.GetOrder(ctx, actor, ref)
	if err != nil {
		return nil, err
	}

	return order.Timeline(), nil
}

func (srv *orderService) ProcessOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef) (*entity.Order, error) {
	return srv.apply(ctx, actor, ref, transition{
		next:      entity.StatusProcessing,
		message:   "Order is being processed by " + actor.Label(),
		authorize: srv.fulfilment(actor),
	})
}

func (srv *orderService) CompleteOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef) (*entity.Order, error) {
	return srv.apply(ctx, actor, ref, transition{
		next:      entity.StatusCompleted,
		message:   "Order has been completed by " + actor.Label(),
		authorize: srv.fulfilment(actor),
	})
}

func (srv *orderService) RejectOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef, reason string) (*entity.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrRejectionReasonRequired
	}

	return srv.apply(ctx, actor, ref, transition{
		next:      entity.StatusRejected,
		message:   "Order rejected: " + reason,
		reason:    reason,
		authorize: srv.fulfilment(actor),
	})
}

func (srv *orderService) CancelOrder(ctx context.Context, actor entity.Actor, ref entity.OrderRef, reason string) (*entity.Order, error) {
	message := "Order cancelled by " + actor.Label()
	if reason = strings.TrimSpace(reason); reason != "" {
		message += ": " + reason
	}

	return srv.apply(ctx, actor, ref, transition{
		next:    entity.StatusCancelled,
		message: message,
		authorize: func(current *entity.Order) error {
			if actor.IsAdmin() {
				return nil
			}
			if current.UserID != actor.UserID {
				return domainerrors.ErrForbidden.WithDetails("only the customer can cancel this order")
			}
			if current.Status != entity.StatusPending {
				return domainerrors.ErrInvalidTransition.WithDetails("only pending orders can be cancelled")
			}

			return nil
		},
	})
}

func (srv *orderService) AddTrackingUpdate(ctx context.Context, actor entity.Actor, ref entity.OrderRef, input *usecase.TrackingUpdateInput) (*entity.Order, error) {
	if input == nil || !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a valid status is required")
	}
	if input.Timestamp < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("timestamp must not be negative")
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		message = "Order is " + input.Status.String()
	}

	return srv.apply(ctx, actor, ref, transition{
		next:      input.Status,
		message:   message,
		location:  strings.TrimSpace(input.Location),
		timestamp: input.Timestamp,
		authorize: srv.fulfilment(actor),
	})
}

func (srv *orderService) UpdateShipping(ctx context.Context, actor entity.Actor, ref entity.OrderRef, shipping *entity.ShippingDetails) (*entity.Order, error) {
	if shipping == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shipping details are required")
	}
	if err := srv.checkFulfilment(ctx, actor, ref); err != nil {
		return nil, err
	}

	if err := srv.orderRepo.UpdateShipping(ctx, ref, shipping); err != nil {
		return nil, errors.Wrapf(err, "update shipping of order %s", ref)
	}

	order, err := srv.orderRepo.FindOrder(ctx, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "reload order %s", ref)
	}

	return order, nil
}

func (srv *orderService) DeleteStatusUpdate(ctx context.Context, actor entity.Actor, ref entity.OrderRef, updateID string) (*usecase.DeleteUpdateResult, error) {
	if strings.TrimSpace(updateID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("update id is required")
	}
	if err := srv.checkFulfilment(ctx, actor, ref); err != nil {
		return nil, err
	}

	before, err := srv.orderRepo.DeleteStatusUpdate(ctx, ref, updateID)
	if err != nil {
		return nil, errors.Wrapf(err, "delete update %s of order %s", updateID, ref)
	}

	removed := before.StatusUpdates[updateID]
	latest, _ := before.LatestUpdate()
	stale := latest.Key == updateID && removed.Status == before.Status

	after := *before
	after.StatusUpdates = maps.Clone(before.StatusUpdates)
	delete(after.StatusUpdates, updateID)

	if stale {
		srv.log(ctx).Warn("Removed the update that set the current order status",
			slog.String("order", ref.String()),
			slog.String("status", before.Status.String()),
		)
	}

	return &usecase.DeleteUpdateResult{
		Order:       &after,
		Removed:     entity.TimelineEntry{Key: updateID, StatusUpdate: removed},
		StatusStale: stale,
	}, nil
}

func (srv *orderService) WatchOrders(ctx context.Context, actor entity.Actor, kind entity.OrderKind) (*repository.Subscription[repository.OrderList], error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order kind: " + string(kind))
	}

	switch {
	case actor.IsAdmin():
		return srv.orderRepo.WatchOrders(ctx, kind, "")
	case actor.Role.IsShopStaff():
		if kind == entity.OrderKindCustom {
			return nil, domainerrors.ErrForbidden.WithDetails("custom orders are managed by admins")
		}

		return srv.watchShopOrders(ctx, actor)
	default:
		return srv.orderRepo.WatchOrders(ctx, kind, actor.UserID)
	}
}

// watchShopOrders narrows the standard order stream to one shop.
func (srv *orderService) watchShopOrders(ctx context.Context, actor entity.Actor) (*repository.Subscription[repository.OrderList], error) {
	ctx, cancel := context.WithCancel(ctx)
	inner, err := srv.orderRepo.WatchOrders(ctx, entity.OrderKindStandard, "")
	if err != nil {
		cancel()

		return nil, err
	}

	out := make(chan repository.OrderList, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)

		for list := range inner.C {
			filtered := repository.OrderList{Orders: []*entity.Order{}, Err: list.Err}
			for _, order := range list.Orders {
				if canViewOrder(actor, order) {
					filtered.Orders = append(filtered.Orders, order)
				}
			}

			select {
			case out <- filtered:
			case <-ctx.Done():
				return
			}
		}
	}()

	return repository.NewSubscription(out, func() {
		cancel()
		inner.Close()
		<-done
	}), nil
}

func (srv *orderService) TrackingQR(ctx context.Context, actor entity.Actor, ref entity.OrderRef) ([]byte, error) {
	if _, err := srv.GetOrder(ctx, actor, ref); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateOrderQR(ref)
	if err != nil {
		return nil, errors.Wrapf(err, "generate QR code for order %s", ref)
	}

	return png, nil
}

func (srv *orderService) fulfilment(actor entity.Actor) func(*entity.Order) error {
	return func(current *entity.Order) error {
		if !canFulfilOrder(actor, current) {
			return domainerrors.ErrForbidden.WithDetails("cannot update order " + current.Ref().String())
		}

		return nil
	}
}

func (srv *orderService) checkFulfilment(ctx context.Context, actor entity.Actor, ref entity.OrderRef) error {
	if err := checkOrderRef(ref); err != nil {
		return err
	}

	order, err := srv.orderRepo.FindOrder(ctx, ref)
	if err != nil {
		return errors.Wrapf(err, "find order %s", ref)
	}

	return srv.fulfilment(actor)(order)
}

// apply writes the status and its timeline entry in one transaction and then
// announces the change.
func (srv *orderService) apply(ctx context.Context, actor entity.Actor, ref entity.OrderRef, t transition) (*entity.Order, error) {
	if err := checkOrderRef(ref); err != nil {
		return nil, err
	}

	key, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generate update key")
	}

	requested := t.timestamp
	if requested == 0 {
		requested = srv.now().UnixMilli()
	}

	var previous entity.OrderStatus
	order, err := srv.orderRepo.ApplyStatusChange(ctx, ref, func(current *entity.Order) (*entity.StatusChange, error) {
		if err := t.authorize(current); err != nil {
			return nil, err
		}
		if err := entity.ValidateStatusTransition(current.Status, t.next); err != nil {
			return nil, err
		}
		previous = current.Status

		return &entity.StatusChange{
			Key: key.String(),
			Update: entity.StatusUpdate{
				Status:    t.next,
				Timestamp: current.NextTimestamp(requested),
				Message:   t.message,
				Location:  t.location,
				AddedBy:   actor.Label(),
			},
			RejectionReason: t.reason,
		}, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "move order %s to %s", ref, t.next)
	}

	srv.log(ctx).Info("Order transitioned",
		slog.String("order", ref.String()),
		slog.String("from", previous.String()),
		slog.String("to", t.next.String()),
		slog.String("actor", actor.UserID),
	)
	srv.publish(ctx, order, previous, order.StatusUpdates[key.String()])

	return order, nil
}

// publish is best effort; the transition has already been stored.
func (srv *orderService) publish(ctx context.Context, order *entity.Order, previous entity.OrderStatus, update entity.StatusUpdate) {
	eventID, err := uuid.NewV7()
	if err != nil {
		srv.log(ctx).Warn("Failed to generate event id", slog.Any("error", err))

		return
	}

	event := &service.OrderStatusEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   eventID.String(),
		Order:     order.Ref(),
		Status:    order.Status,
		Previous:  previous,
		Message:   update.Message,
		ShopID:    order.ShopID(),
		Timestamp: update.Timestamp,
	}
	if order.Item != nil {
		event.ShoeName = order.Item.ShoeName
	}
	if order.ShippingInfo != nil {
		event.Email = order.ShippingInfo.Email
	}

	if err := srv.publisher.PublishOrderStatusEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order status event",
			slog.String("order", order.Ref().String()),
			slog.Any("error", err),
		)
	}
}
