package usecase

import (
	"context"

	"smartfit/internal/domain/entity"
	"smartfit/internal/domain/service"
)

// AuthState is the resolved identity of a bearer token.
type AuthState struct {
	Authenticated bool         `json:"authenticated"`
	Role          entity.Role  `json:"role"`
	UserID        string       `json:"userId"`
	Email         string       `json:"email"`
	UserData      any          `json:"userData,omitempty"`
	Actor         entity.Actor `json:"-"`
}

// LoginOutput is a successful sign-in.
type LoginOutput struct {
	Session *service.AuthSession `json:"session"`
	Auth    *AuthState           `json:"auth"`
}

// RegisterCustomerInput creates a shopper account.
type RegisterCustomerInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=30"`
}

// ChangePasswordInput requires the current password to be confirmed.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// SessionUsecase defines sign-in and session management.
type SessionUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginOutput, error)
	// CheckAuth verifies token and resolves the account's role:
	// admin, then shop owner, then employee, then customer.
	CheckAuth(ctx context.Context, token string) (*AuthState, error)
	// Logout revokes every session of the user.
	Logout(ctx context.Context, uid string) error
	ChangePassword(ctx context.Context, auth *AuthState, input *ChangePasswordInput) error
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*entity.Customer, []string, error)
}
