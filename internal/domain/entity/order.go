package entity

import (
	"slices"
	"strings"
)

// OrderKind distinguishes catalog orders from AR-customized orders.
type OrderKind string

const (
	OrderKindStandard OrderKind = "standard"
	OrderKindCustom   OrderKind = "custom"
)

// IsValid checks if the kind is a known value.
func (k OrderKind) IsValid() bool {
	return k == OrderKindStandard || k == OrderKindCustom
}

// Collection returns the store collection holding orders of this kind.
func (k OrderKind) Collection() string {
	if k == OrderKindCustom {
		return "customizedtransactions"
	}

	return "transactions"
}

// OrderRef identifies one order document.
type OrderRef struct {
	Kind    OrderKind `json:"kind"`
	UserID  string    `json:"userId"`
	OrderID string    `json:"orderId"`
}

// String renders the reference as a stable slash-delimited key.
func (r OrderRef) String() string {
	return strings.Join([]string{string(r.Kind), r.UserID, r.OrderID}, "/")
}

// Order is a customer purchase, either a catalog item or a customized shoe.
type Order struct {
	ID              string                  `json:"orderId"`
	UserID          string                  `json:"userId"`
	Kind            OrderKind               `json:"kind"`
	Status          OrderStatus             `json:"status"`
	TotalAmount     float64                 `json:"totalAmount"`
	Item            *OrderItem              `json:"item,omitempty"`
	Selections      *CustomSelections       `json:"selections,omitempty"`
	ShippingInfo    *ShippingInfo           `json:"shippingInfo,omitempty"`
	Shipping        *ShippingDetails        `json:"shipping,omitempty"`
	StatusUpdates   map[string]StatusUpdate `json:"statusUpdates,omitempty"`
	RejectionReason string                  `json:"rejectionReason,omitempty"`
	OrderDate       int64                   `json:"orderDate,omitempty"` // Unix milliseconds.
}

// OrderItem is the product snapshot taken at checkout.
type OrderItem struct {
	ShopID     string  `json:"shopId"`
	ShopName   string  `json:"shopName,omitempty"`
	ShoeID     string  `json:"shoeId"`
	ShoeName   string  `json:"name"`
	VariantKey string  `json:"variantKey,omitempty"`
	Color      string  `json:"color,omitempty"`
	Size       string  `json:"size,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Image      string  `json:"imageUrl,omitempty"`
}

// ShippingInfo is the address and contact snapshot taken at checkout.
type ShippingInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	ZIP       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
}

// ShippingDetails holds carrier information added while fulfilling.
type ShippingDetails struct {
	Carrier        string `json:"carrier,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	ShipDate       string `json:"shipDate,omitempty"`
	EstDelivery    string `json:"estDelivery,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// StatusUpdate is one timeline entry.
type StatusUpdate struct {
	Status    OrderStatus `json:"status"`
	Timestamp int64       `json:"timestamp"` // Unix milliseconds.
	Message   string      `json:"message"`
	Location  string      `json:"location,omitempty"`
	AddedBy   string      `json:"addedBy,omitempty"`
}

// TimelineEntry is a StatusUpdate together with its key.
type TimelineEntry struct {
	Key string `json:"key"`
	StatusUpdate
}

// Ref returns the reference addressing this order.
func (o *Order) Ref() OrderRef {
	return OrderRef{Kind: o.Kind, UserID: o.UserID, OrderID: o.ID}
}

// ShopID returns the shop fulfilling a standard order, or empty for custom orders.
func (o *Order) ShopID() string {
	if o.Item == nil {
		return ""
	}

	return o.Item.ShopID
}

// Timeline returns status updates newest first. Ties keep a stable key order.
func (o *Order) Timeline() []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(o.StatusUpdates))
	for key, update := range o.StatusUpdates {
		entries = append(entries, TimelineEntry{Key: key, StatusUpdate: update})
	}

	slices.SortFunc(entries, func(a, b TimelineEntry) int {
		if a.Timestamp != b.Timestamp {
			if a.Timestamp > b.Timestamp {
				return -1
			}

			return 1
		}

		return strings.Compare(b.Key, a.Key)
	})

	return entries
}

// LatestUpdate returns the newest timeline entry, if any.
func (o *Order) LatestUpdate() (TimelineEntry, bool) {
	timeline := o.Timeline()
	if len(timeline) == 0 {
		return TimelineEntry{}, false
	}

	return timeline[0], true
}

// NextTimestamp returns now, bumped so it is never older than an existing entry.
func (o *Order) NextTimestamp(now int64) int64 {
	if latest, ok := o.LatestUpdate(); ok && latest.Timestamp > now {
		return latest.Timestamp
	}

	return now
}

// StatusChange describes one lifecycle transition to be applied atomically.
type StatusChange struct {
	Key             string
	Update          StatusUpdate
	RejectionReason string
}
