package qrcode

import (
	"encoding/json"
	"testing"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRef() entity.OrderRef {
	return entity.OrderRef{Kind: entity.OrderKindStandard, UserID: "user-1", OrderID: "order-1"}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://smartfit.test/")

	qrBytes, err := service.GenerateOrderQR(testRef())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOrderQR_InvalidRef(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateOrderQR(entity.OrderRef{Kind: "layaway", UserID: "u", OrderID: "o"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://smartfit.test")

	valid, err := json.Marshal(QRCodeData{Type: "order_tracking", Kind: entity.OrderKindCustom, UserID: "u1", OrderID: "o1"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(QRCodeData{Type: "subscription", Kind: entity.OrderKindCustom, UserID: "u1", OrderID: "o1"})
	require.NoError(t, err)
	missingOrder, err := json.Marshal(QRCodeData{Type: "order_tracking", Kind: entity.OrderKindCustom, UserID: "u1"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    entity.OrderRef
		wantErr bool
	}{
		{name: "valid", data: string(valid), want: entity.OrderRef{Kind: entity.OrderKindCustom, UserID: "u1", OrderID: "o1"}},
		{name: "wrong type", data: string(wrongType), wantErr: true},
		{name: "missing order", data: string(missingOrder), wantErr: true},
		{name: "not json", data: "https://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := service.ParseOrderQR(tt.data)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestQRCodeService_TrackingURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://smartfit.test/").(*qrcodeService)

	assert.Equal(t, "https://smartfit.test/orders/standard/user-1/order-1", service.trackingURL(testRef()))
	assert.Empty(t, NewQRCodeService(256, "M", "").(*qrcodeService).trackingURL(testRef()))
}
