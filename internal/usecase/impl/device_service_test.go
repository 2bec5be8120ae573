package impl

import (
	"context"
	"testing"
	"time"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
	mockRepo "smartfit/internal/mocks/repository"
	"smartfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo}).(*deviceService)
	service.now = func() time.Time { return time.UnixMilli(1_000).UTC() }

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := "cust-1"
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
	assert.Equal(t, int64(1_000), device.CreatedAt.UnixMilli())
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := "cust-1"
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	updatedDevice := *existingDevice
	updatedDevice.FCMToken = "new-fcm-token"

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDevice(ctx, userID, deviceID).
		Return(&updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), "cust-1", &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device-123",
		Platform: "symbian",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, "cust-1").
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("unavailable"), "read devices/cust-1"))

	_, err := fx.service.RegisterDevice(ctx, "cust-1", &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	deviceID := uuid.New()

	tests := []struct {
		name      string
		setup     func(fx deviceServiceFixtures)
		wantErr   error
		wantInErr string
	}{
		{
			name: "success",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDevice(mock.Anything, "cust-1", deviceID).Return(&entity.UserDevice{ID: deviceID}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, "cust-1", deviceID, "new-token").Return(nil)
			},
		},
		{
			name: "not found",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDevice(mock.Anything, "cust-1", deviceID).Return(nil, domainerrors.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "update error",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDevice(mock.Anything, "cust-1", deviceID).Return(&entity.UserDevice{ID: deviceID}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, "cust-1", deviceID, "new-token").Return(errors.New("write failed"))
			},
			wantInErr: "failed to update FCM token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx)

			err := fx.service.UpdateFCMToken(context.Background(), "cust-1", deviceID, "new-token")
			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr))
			case tt.wantInErr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantInErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: "cust-1", DeviceID: "device-1", IsActive: true},
		{ID: uuid.New(), UserID: "cust-1", DeviceID: "device-2", IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "cust-1").
		Return(devices, nil)

	result, err := fx.service.GetUserDevices(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		deviceID := uuid.New()

		fx.deviceRepo.EXPECT().FindDevice(mock.Anything, "cust-1", deviceID).Return(&entity.UserDevice{ID: deviceID}, nil)
		fx.deviceRepo.EXPECT().DeactivateDevice(mock.Anything, "cust-1", deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(context.Background(), "cust-1", deviceID))
	})

	t.Run("device of another user", func(t *testing.T) {
		fx := createTestDeviceService(t)
		deviceID := uuid.New()

		fx.deviceRepo.EXPECT().FindDevice(mock.Anything, "cust-2", deviceID).Return(nil, domainerrors.ErrDeviceNotFound)

		err := fx.service.DeactivateDevice(context.Background(), "cust-2", deviceID)
		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
		fx.deviceRepo.AssertNotCalled(t, "DeactivateDevice", mock.Anything, mock.Anything, mock.Anything)
	})
}
