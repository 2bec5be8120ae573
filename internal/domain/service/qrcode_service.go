package service

import (
	"smartfit/internal/domain/entity"
)

// QRCodeService defines the interface for order tracking QR codes
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code encoding the tracking link of an order
	GenerateOrderQR(ref entity.OrderRef) ([]byte, error)

	// ParseOrderQR parses QR code data back into an order reference
	ParseOrderQR(qrData string) (entity.OrderRef, error)
}
