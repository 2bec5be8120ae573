// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the device.
	UserID    string    `json:"userId"`    // The auth uid of the user who owns this device.
	FCMToken  string    `json:"fcmToken"`  // Firebase Cloud Messaging token for push notifications.
	DeviceID  string    `json:"deviceId"`  // Unique device identifier from the client.
	Platform  string    `json:"platform"`  // Device platform (ios, android, web).
	IsActive  bool      `json:"isActive"`  // Indicates if this device is active for notifications.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification.
}
