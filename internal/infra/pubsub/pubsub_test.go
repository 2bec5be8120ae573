package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"smartfit/config"
	"smartfit/internal/domain/entity"
	"smartfit/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.OrderStatusEvent {
	return &service.OrderStatusEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Order:     entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "u1", OrderID: "o1"},
		Status:    entity.StatusShipped,
		Previous:  entity.StatusProcessing,
		Message:   "Order shipped",
		ShopID:    "shop-1",
		Timestamp: 1700000000000,
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEncodeEvent(t *testing.T) {
	msg, err := encodeEvent(testEvent())
	require.NoError(t, err)

	assert.Equal(t, "standard/u1/o1", msg.orderingKey)
	assert.Equal(t, map[string]string{
		AttrEventID:   "evt-1",
		AttrOrderKind: "standard",
		AttrUserID:    "u1",
		AttrStatus:    "shipped",
		AttrShopID:    "shop-1",
		AttrRequestID: "req-1",
	}, msg.attributes)

	_, err = encodeEvent(nil)
	assert.Error(t, err)
}

func TestLocalPublisher_Publish(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalPublisher(server.URL, 3, discard())

	require.NoError(t, publisher.PublishOrderStatusEvent(context.Background(), testEvent()))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "standard/u1/o1", received.Message.OrderingKey)
	assert.Equal(t, 1, received.DeliveryAttempt)
	assert.Equal(t, "shipped", received.Message.Attributes[AttrStatus])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.OrderStatusEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, testEvent().Order, event.Order)
	assert.Equal(t, entity.StatusProcessing, event.Previous)
}

func TestLocalPublisher_Redelivery(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		attempts  int
		wantCalls int32
		wantErr   string
	}{
		{name: "succeeds after a retryable failure", statuses: []int{503, 200}, attempts: 3, wantCalls: 2},
		{name: "gives up after all attempts", statuses: []int{500, 500, 500}, attempts: 3, wantCalls: 3, wantErr: "status 500"},
		{name: "client error is not retried", statuses: []int{400}, attempts: 3, wantCalls: 1, wantErr: "rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				w.WriteHeader(tt.statuses[int(n)-1])
			}))
			defer server.Close()

			publisher := NewLocalPublisher(server.URL, tt.attempts, discard())
			err := publisher.PublishOrderStatusEvent(context.Background(), testEvent())

			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewEventPublisher(t *testing.T) {
	logger := discard()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "local with custom attempts", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push", PushAttempts: 5}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
