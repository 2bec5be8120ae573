package repository

import (
	"context"

	"smartfit/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for device persistence.
// Devices live under devices/{userId}/{deviceId}.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDevice retrieves a user's device by its ID.
	FindDevice(ctx context.Context, userID string, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, userID string, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a device inactive.
	DeactivateDevice(ctx context.Context, userID string, id uuid.UUID) error

	// DeactivateTokens marks every device of userID holding one of tokens inactive.
	DeactivateTokens(ctx context.Context, userID string, tokens []string) error
}
