// Package handler holds the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"smartfit/config"
	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/constants"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	"smartfit/internal/infra/pubsub"
	"smartfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const recentEventCapacity = 1024

// errRedeliver marks a failure worth another delivery attempt.
var errRedeliver = errors.New("redeliver")

// PushHandler turns pushed order status events into customer notifications.
// Pub/Sub treats any non-2xx answer as a nack, so only transient failures
// answer 503; broken messages are acknowledged and logged.
type PushHandler struct {
	verifyPushAuth bool
	maxDeliveries  int
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
	verify         func(*http.Request) error
	delivered      *recentIDs
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config

	var maxDeliveries int
	// Only Google push requests outside development carry an OIDC token.
	verifyPushAuth := false
	if cfg.PubSub != nil {
		maxDeliveries = cfg.PubSub.PushAttempts
		verifyPushAuth = cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		maxDeliveries:  maxDeliveries,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		verify:         verifyPushToken,
		delivered:      newRecentIDs(recentEventCapacity),
	}
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("Rejected push without a valid token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	envelope, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("Dropping undecodable push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	requestID := pickRequestID(c.Request().Context(), envelope, event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("event_id", event.EventID),
		slog.String("order", event.Order.String()),
		slog.Int("delivery_attempt", envelope.DeliveryAttempt),
	)
	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	if h.delivered.Contains(event.EventID) {
		logger.Info("Skipping redelivered event")

		return c.NoContent(http.StatusOK)
	}

	result, err := h.notify(ctx, event)
	switch {
	case err == nil:
		h.delivered.Add(event.EventID)
		logger.Info("Order status event delivered",
			slog.String("status", event.Status.String()),
			slog.Int("devices", result.Devices),
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
			slog.Int("invalid_tokens", result.InvalidTokens),
			slog.Bool("email_sent", result.EmailSent),
		)

		return c.NoContent(http.StatusOK)

	case errors.Is(err, errRedeliver) && !h.lastAttempt(envelope):
		logger.Warn("Order status event failed, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)

	default:
		logger.Error("Giving up on order status event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

// notify runs the usecase. Invalid events are final; everything else may succeed later.
func (h *PushHandler) notify(ctx context.Context, event *service.OrderStatusEvent) (*usecase.NotificationResult, error) {
	result, err := h.notificationUC.NotifyOrderStatus(ctx, event)
	if err == nil {
		return result, nil
	}
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return nil, err
	}

	return nil, errors.Join(errRedeliver, err)
}

func (h *PushHandler) lastAttempt(envelope *pubsub.PushEnvelope) bool {
	return h.maxDeliveries > 0 && envelope.DeliveryAttempt >= h.maxDeliveries
}

func decodePush(c echo.Context) (*pubsub.PushEnvelope, *service.OrderStatusEvent, error) {
	envelope := new(pubsub.PushEnvelope)
	if err := json.NewDecoder(c.Request().Body).Decode(envelope); err != nil {
		return nil, nil, errors.Wrap(err, "decode push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	event := new(service.OrderStatusEvent)
	if err := json.Unmarshal(data, event); err != nil {
		return nil, nil, errors.Wrap(err, "decode order status event")
	}
	if event.EventID == "" {
		event.EventID = envelope.Message.MessageID
	}

	return envelope, event, nil
}

// pickRequestID prefers the message attribute, then the event payload, then
// the X-Request-Id of the push request itself.
func pickRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.OrderStatusEvent) string {
	if requestID := envelope.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPushToken validates the OIDC token Pub/Sub attaches to authenticated
// push requests. The audience is the endpoint URL.
func verifyPushToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	payload, err := idtoken.Validate(req.Context(), token, scheme+"://"+req.Host+req.URL.Path)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("unexpected issuer %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}

// recentIDs remembers the last n delivered event ids so redeliveries of an
// already handled event do not notify twice.
type recentIDs struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	order []string
	next  int
}

func newRecentIDs(n int) *recentIDs {
	return &recentIDs{ids: make(map[string]struct{}, n), order: make([]string, n)}
}

func (r *recentIDs) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ids[id]

	return ok
}

func (r *recentIDs) Add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; ok {
		return
	}
	if evicted := r.order[r.next]; evicted != "" {
		delete(r.ids, evicted)
	}
	r.order[r.next] = id
	r.ids[id] = struct{}{}
	r.next = (r.next + 1) % len(r.order)
}
