package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/order-status-push"
	localRetryDelay   = 200 * time.Millisecond
)

// PushEnvelope is the body Cloud Pub/Sub posts to push subscribers.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
	// DeliveryAttempt counts from 1, as on subscriptions with a dead letter policy
	DeliveryAttempt int `json:"deliveryAttempt,omitempty"`
}

// localPublisher posts push envelopes straight to the worker so development
// runs without Pub/Sub. Like a push subscription it redelivers on 5xx and
// transport errors and delivers one message at a time to keep ordering.
type localPublisher struct {
	endpoint string
	attempts int
	client   *http.Client
	logger   *slog.Logger

	mu sync.Mutex
}

// NewLocalPublisher creates a publisher that pushes to endpoint, trying each
// message up to attempts times.
func NewLocalPublisher(endpoint string, attempts int, logger *slog.Logger) service.EventPublisher {
	if attempts < 1 {
		attempts = 1
	}

	return &localPublisher{
		endpoint: endpoint,
		attempts: attempts,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

func (p *localPublisher) PublishOrderStatusEvent(ctx context.Context, event *service.OrderStatusEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	envelope := PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = event.EventID
	envelope.Message.OrderingKey = msg.orderingKey
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	p.mu.Lock()
	defer p.mu.Unlock()

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		envelope.DeliveryAttempt = attempt

		retry, err := p.push(ctx, &envelope, event.RequestID)
		if err == nil {
			logger.Debug("Order status event pushed",
				slog.String("event_id", event.EventID),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		lastErr = err
		if !retry {
			break
		}

		logger.Warn("Worker asked for redelivery",
			slog.String("event_id", event.EventID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(localRetryDelay * time.Duration(attempt)):
		}
	}

	return lastErr
}

// push sends one delivery attempt and reports whether a failure is worth retrying.
func (p *localPublisher) push(ctx context.Context, envelope *PushEnvelope, requestID string) (bool, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return false, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return true, errors.Wrap(err, "push to worker")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return true, errors.Errorf("worker returned status %d", resp.StatusCode)
	default:
		return false, errors.Errorf("worker rejected message with status %d", resp.StatusCode)
	}
}

func (p *localPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
