package pubsub

import (
	"encoding/json"

	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
)

// Attribute keys carried on every order status message.
const (
	AttrEventID   = "event_id"
	AttrOrderKind = "order_kind"
	AttrUserID    = "user_id"
	AttrStatus    = "status"
	AttrShopID    = "shop_id"
	AttrRequestID = "request_id"
)

// outbound is an order status event ready for either transport.
type outbound struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeEvent serializes event. Events for one order share an ordering key so
// a customer never sees "delivered" before "shipped".
func encodeEvent(event *service.OrderStatusEvent) (*outbound, error) {
	if event == nil {
		return nil, errors.New("nil order status event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode order status event")
	}

	attributes := map[string]string{
		AttrEventID:   event.EventID,
		AttrOrderKind: string(event.Order.Kind),
		AttrUserID:    event.Order.UserID,
		AttrStatus:    string(event.Status),
	}
	if event.ShopID != "" {
		attributes[AttrShopID] = event.ShopID
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return &outbound{
		data:        data,
		attributes:  attributes,
		orderingKey: event.Order.String(),
	}, nil
}
