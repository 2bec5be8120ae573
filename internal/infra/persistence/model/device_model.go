package model

import (
	"time"

	"smartfit/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceModel is the stored form of a device at devices/{userId}/{deviceId}.
// Timestamps are Unix milliseconds.
type DeviceModel struct {
	ID        string `json:"id" validate:"required,uuid"`
	UserID    string `json:"userId" validate:"required"`
	FCMToken  string `json:"fcmToken" validate:"required"`
	DeviceID  string `json:"deviceId" validate:"required"`
	Platform  string `json:"platform" validate:"omitempty,oneof=ios android web"`
	IsActive  bool   `json:"isActive"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// FromDeviceDomain converts a domain device into its stored form.
func FromDeviceDomain(device *entity.UserDevice) *DeviceModel {
	return &DeviceModel{
		ID:        device.ID.String(),
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt.UnixMilli(),
		UpdatedAt: device.UpdatedAt.UnixMilli(),
	}
}

// ToDomain converts the stored form into a domain device.
func (m *DeviceModel) ToDomain() (*entity.UserDevice, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	return &entity.UserDevice{
		ID:        id,
		UserID:    m.UserID,
		FCMToken:  m.FCMToken,
		DeviceID:  m.DeviceID,
		Platform:  m.Platform,
		IsActive:  m.IsActive,
		CreatedAt: time.UnixMilli(m.CreatedAt),
		UpdatedAt: time.UnixMilli(m.UpdatedAt),
	}, nil
}
