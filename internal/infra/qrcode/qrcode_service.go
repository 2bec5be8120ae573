package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"smartfit/config"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	defaultSize     = 256
	orderQRCodeType = "order_tracking"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type    string           `json:"type"`
	Kind    entity.OrderKind `json:"kind"`
	UserID  string           `json:"user_id"`
	OrderID string           `json:"order_id"`
	// URL is the customer-facing tracking page, set when a base URL is configured.
	URL string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProvideQRCodeService builds the service from the qrcode config section.
func ProvideQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func (s *qrcodeService) trackingURL(ref entity.OrderRef) string {
	if s.baseURL == "" {
		return ""
	}

	return s.baseURL + "/orders/" + url.PathEscape(string(ref.Kind)) + "/" +
		url.PathEscape(ref.UserID) + "/" + url.PathEscape(ref.OrderID)
}

// GenerateOrderQR generates a PNG QR code for an order
func (s *qrcodeService) GenerateOrderQR(ref entity.OrderRef) ([]byte, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(QRCodeData{
		Type:    orderQRCodeType,
		Kind:    ref.Kind,
		UserID:  ref.UserID,
		OrderID: ref.OrderID,
		URL:     s.trackingURL(ref),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR parses QR code data and returns the order reference
func (s *qrcodeService) ParseOrderQR(qrData string) (entity.OrderRef, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return entity.OrderRef{}, domainerrors.ErrValidationFailed.WithDetails("unreadable QR code data")
	}

	if data.Type != orderQRCodeType {
		return entity.OrderRef{}, domainerrors.ErrValidationFailed.WithDetails("invalid QR code type: " + data.Type)
	}

	ref := entity.OrderRef{Kind: data.Kind, UserID: data.UserID, OrderID: data.OrderID}
	if err := validateRef(ref); err != nil {
		return entity.OrderRef{}, err
	}

	return ref, nil
}

func validateRef(ref entity.OrderRef) error {
	if !ref.Kind.IsValid() || ref.UserID == "" || ref.OrderID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("invalid order reference: " + ref.String())
	}

	return nil
}

// Module provides the QR code FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(ProvideQRCodeService),
)
