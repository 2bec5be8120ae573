package document

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/infra/docstore"
	"smartfit/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	base
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(store docstore.Store, logger *slog.Logger) repository.DeviceRepository {
	return &deviceRepository{base: base{store: store, logger: logger}}
}

func devicePath(userID string, id uuid.UUID) string {
	return docstore.Join(pathDevices, userID, id.String())
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	if err := validKey(device.UserID); err != nil {
		return err
	}

	deviceM := model.FromDeviceDomain(device)
	if err := model.Check(devicePath(device.UserID, device.ID), deviceM); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return repo.store.Create(ctx, devicePath(device.UserID, device.ID), device.UserID, deviceM)
}

// FindDevice retrieves a user's device by its ID.
func (repo *deviceRepository) FindDevice(ctx context.Context, userID string, id uuid.UUID) (*entity.UserDevice, error) {
	if err := validKey(userID); err != nil {
		return nil, err
	}

	deviceM, err := readDoc[model.DeviceModel](ctx, repo.base, devicePath(userID, id), domainerrors.ErrDeviceNotFound)
	if err != nil {
		return nil, err
	}

	device, err := deviceM.ToDomain()
	if err != nil {
		return nil, domainerrors.ErrMalformedDocument.WithDetails(err.Error())
	}

	return device, nil
}

// FindDevicesByUser retrieves all devices for a user, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	if err := validKey(userID); err != nil {
		return nil, err
	}

	models, err := readCollection[model.DeviceModel](ctx, repo.base, docstore.Join(pathDevices, userID), nil)
	if err != nil {
		return nil, err
	}

	devices := make([]*entity.UserDevice, 0, len(models))
	for _, deviceM := range models {
		device, err := deviceM.ToDomain()
		if err != nil {
			repo.log(ctx).Warn("Skipping device with invalid id", slog.String("id", deviceM.ID))

			continue
		}
		devices = append(devices, device)
	}

	slices.SortFunc(devices, func(a, b *entity.UserDevice) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return devices, nil
}

// FindActiveDevicesByUser retrieves the active devices of a user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	devices, err := repo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(devices, func(d *entity.UserDevice) bool { return !d.IsActive }), nil
}

// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, userID string, deviceID uuid.UUID, fcmToken string) error {
	if _, err := repo.FindDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	return repo.store.Update(ctx, devicePath(userID, deviceID), map[string]any{
		"fcmToken":  fcmToken,
		"isActive":  true,
		"updatedAt": time.Now().UnixMilli(),
	})
}

// DeactivateDevice marks a device inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := repo.FindDevice(ctx, userID, id); err != nil {
		return err
	}

	return repo.store.Update(ctx, devicePath(userID, id), map[string]any{
		"isActive":  false,
		"updatedAt": time.Now().UnixMilli(),
	})
}

// DeactivateTokens marks every device of userID holding one of tokens inactive.
func (repo *deviceRepository) DeactivateTokens(ctx context.Context, userID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	devices, err := repo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	patch := map[string]any{}
	for _, d := range devices {
		if d.IsActive && slices.Contains(tokens, d.FCMToken) {
			patch[docstore.Join(d.ID.String(), "isActive")] = false
			patch[docstore.Join(d.ID.String(), "updatedAt")] = now
		}
	}
	if len(patch) == 0 {
		return nil
	}

	return repo.store.Update(ctx, docstore.Join(pathDevices, userID), patch)
}
