package entity

import (
	"strings"

	domainerrors "smartfit/internal/domain/errors"
)

// ShopStatus is the approval state of a shop registration.
type ShopStatus string

const (
	ShopStatusPending  ShopStatus = "pending"
	ShopStatusApproved ShopStatus = "approved"
	ShopStatusRejected ShopStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s ShopStatus) IsValid() bool {
	switch s {
	case ShopStatusPending, ShopStatusApproved, ShopStatusRejected:
		return true
	default:
		return false
	}
}

// Shop is a seller registration. Its ID is the owner's auth uid.
type Shop struct {
	ID              string                `json:"shopId"`
	ShopName        string                `json:"shopName"`
	OwnerName       string                `json:"ownerName,omitempty"`
	Email           string                `json:"email"`
	Phone           string                `json:"ownerPhone,omitempty"`
	Status          ShopStatus            `json:"status"`
	Uploads         map[string]ShopUpload `json:"uploads,omitempty"`
	Address         string                `json:"shopAddress,omitempty"`
	City            string                `json:"shopCity,omitempty"`
	Latitude        float64               `json:"latitude,omitempty"`
	Longitude       float64               `json:"longitude,omitempty"`
	RejectionReason string                `json:"rejectionReason,omitempty"`
	DateProcessed   int64                 `json:"dateProcessed,omitempty"`
	DateSubmitted   int64                 `json:"dateSubmitted,omitempty"`
}

// ShopUpload is one registration document.
type ShopUpload struct {
	URL string `json:"url"`
}

// HasLocation reports whether the shop has coordinates.
func (s *Shop) HasLocation() bool {
	return s.Latitude != 0 || s.Longitude != 0
}

// Approve marks a pending shop as approved.
func (s *Shop) Approve(now int64) error {
	if s.Status != ShopStatusPending {
		return domainerrors.ErrInvalidTransition.WithDetails("shop is " + string(s.Status))
	}

	s.Status = ShopStatusApproved
	s.RejectionReason = ""
	s.DateProcessed = now

	return nil
}

// Reject marks a pending shop as rejected with a required reason.
func (s *Shop) Reject(reason string, now int64) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domainerrors.ErrRejectionReasonRequired
	}
	if s.Status != ShopStatusPending {
		return domainerrors.ErrInvalidTransition.WithDetails("shop is " + string(s.Status))
	}

	s.Status = ShopStatusRejected
	s.RejectionReason = reason
	s.DateProcessed = now

	return nil
}

// Reapply returns a rejected shop to the review queue.
func (s *Shop) Reapply(now int64) error {
	if s.Status != ShopStatusRejected {
		return domainerrors.ErrInvalidTransition.WithDetails("only rejected shops can reapply")
	}

	s.Status = ShopStatusPending
	s.RejectionReason = ""
	s.DateSubmitted = now
	s.DateProcessed = 0

	return nil
}
