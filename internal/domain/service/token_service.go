package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in Claims.Type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	Type   string `json:"type"`
	// IssuedAtMs is iat with millisecond precision; iat itself is whole seconds.
	IssuedAtMs int64 `json:"iat_ms,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID, email string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string and that it is of the expected type.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
