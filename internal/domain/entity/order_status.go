package entity

import (
	"slices"

	domainerrors "smartfit/internal/domain/errors"
)

// OrderStatus is the coarse lifecycle state of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusProcessing     OrderStatus = "processing"
	StatusShipped        OrderStatus = "shipped"
	StatusInTransit      OrderStatus = "in transit"
	StatusOutForDelivery OrderStatus = "out for delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
	StatusRejected       OrderStatus = "rejected"
)

// allowedTransitions defines valid status transitions.
// Key is current status, value is the set of statuses it can transition to.
// Carrier states may repeat so a courier can post several updates for the same leg.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusProcessing, StatusCancelled, StatusRejected},
	StatusProcessing:     {StatusShipped, StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusCompleted, StatusCancelled},
	StatusShipped:        {StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusCompleted},
	StatusInTransit:      {StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusCompleted},
	StatusOutForDelivery: {StatusOutForDelivery, StatusDelivered, StatusCompleted},
	StatusDelivered:      {StatusCompleted},
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusInTransit, StatusOutForDelivery,
		StatusDelivered, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	_, ok := allowedTransitions[s]

	return !ok && s.IsValid()
}

// IsCarrierState reports whether the status is reported by a carrier while shipping.
func (s OrderStatus) IsCarrierState() bool {
	switch s {
	case StatusShipped, StatusInTransit, StatusOutForDelivery, StatusDelivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(allowedTransitions[s], next)
}

// AllowedNext lists the statuses reachable from s.
func (s OrderStatus) AllowedNext() []OrderStatus {
	return slices.Clone(allowedTransitions[s])
}

// ValidateStatusTransition checks if the transition from current to next is allowed.
func ValidateStatusTransition(current, next OrderStatus) error {
	if !next.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + next.String())
	}
	if !current.CanTransitionTo(next) {
		return domainerrors.ErrInvalidTransition.WithDetails(current.String() + " -> " + next.String())
	}

	return nil
}
