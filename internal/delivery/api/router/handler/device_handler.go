package handler

import (
	"log/slog"
	"net/http"

	"smartfit/internal/delivery/api/response"
	deliverycontext "smartfit/internal/delivery/context"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler lets a signed-in customer or shop user manage the devices that
// receive order status pushes.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// TokenRotation carries a refreshed messaging token for one device.
type TokenRotation struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// deviceTarget is the caller plus the :id route parameter.
type deviceTarget struct {
	userID   string
	deviceID uuid.UUID
}

func deviceTargetOf(c echo.Context) (deviceTarget, error) {
	actor, err := actorOf(c)
	if err != nil {
		return deviceTarget{}, err
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return deviceTarget{}, domainerrors.ErrValidationFailed.WithDetails("device id must be a UUID")
	}

	return deviceTarget{userID: actor.UserID, deviceID: deviceID}, nil
}

// RegisterDevice stores the caller's device, refreshing it when the hardware id is known.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var info usecase.DeviceInfo
	if err := bindAndValidate(c, &info); err != nil {
		return err
	}

	ctx := c.Request().Context()
	device, err := h.deviceUC.RegisterDevice(ctx, actor.UserID, &info)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Device registered",
		slog.String("user_id", actor.UserID),
		slog.String("device_id", device.ID.String()),
		slog.String("platform", device.Platform),
	)

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices lists the caller's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken replaces the messaging token of one of the caller's devices.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	target, err := deviceTargetOf(c)
	if err != nil {
		return err
	}

	var rotation TokenRotation
	if err := bindAndValidate(c, &rotation); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), target.userID, target.deviceID, rotation.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice stops pushes to one of the caller's devices.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	target, err := deviceTargetOf(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.deviceUC.DeactivateDevice(ctx, target.userID, target.deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Device deactivated",
		slog.String("user_id", target.userID),
		slog.String("device_id", target.deviceID.String()),
	)

	return c.NoContent(http.StatusNoContent)
}
