package impl

import (
	"context"
	"time"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	validate   *validator.Validate
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		now:        time.Now,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device info is required")
	}
	if err := s.validate.Struct(deviceInfo); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	// A known client device keeps its record and gets the new token.
	for _, device := range devices {
		if device.DeviceID == deviceInfo.DeviceID {
			if err := s.deviceRepo.UpdateFCMToken(ctx, userID, device.ID, deviceInfo.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}

			updatedDevice, err := s.deviceRepo.FindDevice(ctx, userID, device.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to find device by ID")
			}

			return updatedDevice, nil
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate device ID")
	}

	now := s.now()
	device := &entity.UserDevice{
		ID:        id,
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID string, deviceID uuid.UUID, fcmToken string) error {
	if fcmToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm token is required")
	}

	// Devices are stored per user, so a device of someone else is simply not found.
	if _, err := s.deviceRepo.FindDevice(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "failed to find device by ID")
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, userID, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID string, deviceID uuid.UUID) error {
	if _, err := s.deviceRepo.FindDevice(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "failed to find device by ID")
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
