package service

import (
	"context"
)

// AuthSession is the result of a successful password sign-in.
type AuthSession struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn"` // Seconds.
}

// IdentityClaims are the verified contents of an ID token.
type IdentityClaims struct {
	UID           string
	Email         string
	EmailVerified bool
}

// IdentityProvider wraps the authentication backend. Provider errors are
// returned as AppErrors with friendly messages.
type IdentityProvider interface {
	// CreateUser registers an email/password credential and returns its UID.
	CreateUser(ctx context.Context, email, password string) (string, error)

	// SignIn verifies email and password.
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)

	// SendEmailVerification sends a verification link to the user's email.
	SendEmailVerification(ctx context.Context, email string) error

	// ChangePassword sets a new password for uid.
	ChangePassword(ctx context.Context, uid, newPassword string) error

	// VerifyToken validates an ID token and returns its claims.
	VerifyToken(ctx context.Context, idToken string) (*IdentityClaims, error)

	// RevokeSessions invalidates every token issued to uid.
	RevokeSessions(ctx context.Context, uid string) error

	// DeleteUser removes the credential of uid.
	DeleteUser(ctx context.Context, uid string) error
}
