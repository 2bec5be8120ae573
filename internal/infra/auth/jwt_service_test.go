package auth

import (
	"testing"
	"time"

	"smartfit/config"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{
		Access:  "test_access_secret_key_very_long_for_testing",
		Refresh: "test_refresh_secret_key_very_long_for_testing",
	}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens("uid-1", "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)

	claims, err = svc.ValidateToken(refresh, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, claims.Type)
}

func TestJWTService_RejectsWrongTypeAndTampering(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens("uid-1", "")
	require.NoError(t, err)

	// Different secret per type, so a refresh token never validates as access.
	_, err = svc.ValidateToken(refresh, service.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = svc.ValidateToken(access+"x", service.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = svc.ValidateToken("garbage", service.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Now().Add(-2 * defaultAccessTTL)
	svc.now = func() time.Time { return issued }

	access, _, err := svc.GenerateTokens("uid-1", "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(access, service.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Equal(t, defaultRefreshTTL, newTestJWTService(t).GetRefreshTokenDuration())
}
