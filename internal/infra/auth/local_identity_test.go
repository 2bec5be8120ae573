package auth

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"smartfit/config"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
	"smartfit/internal/infra/persistence/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []*service.Email
}

func (m *recordingMailer) Send(_ context.Context, email *service.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)

	return nil
}

type localIdentityFixtures struct {
	identity *localIdentity
	mailer   *recordingMailer
}

func createTestLocalIdentity(t *testing.T) localIdentityFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "access-secret-for-tests", Refresh: "refresh-secret-for-tests"},
		Auth:      &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	mailer := &recordingMailer{}
	credentials := document.NewCredentialRepository(docstore.NewMemoryStore(), logger)
	identity := NewLocalIdentity(credentials, NewBcryptHasher(cfg), tokens, mailer, logger)

	return localIdentityFixtures{identity: identity.(*localIdentity), mailer: mailer}
}

func TestLocalIdentity_CreateAndSignIn(t *testing.T) {
	fx := createTestLocalIdentity(t)
	ctx := context.Background()

	uid, err := fx.identity.CreateUser(ctx, "staff@shop.test", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	session, err := fx.identity.SignIn(ctx, "STAFF@shop.test", "secret123")
	require.NoError(t, err)
	assert.Equal(t, uid, session.UID)
	assert.NotEmpty(t, session.IDToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, int64(3600), session.ExpiresIn)

	claims, err := fx.identity.VerifyToken(ctx, session.IDToken)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, "staff@shop.test", claims.Email)
	assert.False(t, claims.EmailVerified)
}

func TestLocalIdentity_CreateUserErrors(t *testing.T) {
	fx := createTestLocalIdentity(t)
	ctx := context.Background()

	_, err := fx.identity.CreateUser(ctx, "taken@shop.test", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		want     error
		message  string
	}{
		{name: "duplicate email", email: "Taken@shop.test", password: "secret123", want: domainerrors.ErrUserAlreadyExists},
		{name: "weak password", email: "new@shop.test", password: "123", want: domainerrors.ErrAuthProvider, message: "Password should be at least 6 characters"},
		{name: "invalid email", email: "not-an-email", password: "secret123", want: domainerrors.ErrAuthProvider, message: "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.identity.CreateUser(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			if tt.message != "" {
				appErr, ok := errors.AsType[domainerrors.AppError](err)
				require.True(t, ok)
				assert.Equal(t, tt.message, appErr.Message())
			}
		})
	}
}

func TestLocalIdentity_SignInRejectsBadCredentials(t *testing.T) {
	fx := createTestLocalIdentity(t)
	ctx := context.Background()

	_, err := fx.identity.CreateUser(ctx, "owner@shop.test", "secret123")
	require.NoError(t, err)

	for _, tc := range []struct{ email, password string }{
		{"owner@shop.test", "wrong-password"},
		{"nobody@shop.test", "secret123"},
	} {
		_, err := fx.identity.SignIn(ctx, tc.email, tc.password)
		require.Error(t, err)
		appErr, ok := errors.AsType[domainerrors.AppError](err)
		require.True(t, ok)
		assert.Equal(t, "Invalid email or password", appErr.Message())
	}
}

func TestLocalIdentity_ChangePassword(t *testing.T) {
	fx := createTestLocalIdentity(t)
	ctx := context.Background()

	uid, err := fx.identity.CreateUser(ctx, "emp@shop.test", "secret123")
	require.NoError(t, err)

	require.Error(t, fx.identity.ChangePassword(ctx, uid, "abc"))
	require.NoError(t, fx.identity.ChangePassword(ctx, uid, "newsecret"))

	_, err = fx.identity.SignIn(ctx, "emp@shop.test", "secret123")
	require.Error(t, err)
	_, err = fx.identity.SignIn(ctx, "emp@shop.test", "newsecret")
	require.NoError(t, err)

	err = fx.identity.ChangePassword(ctx, "missing-uid", "newsecret")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestLocalIdentity_SendEmailVerification(t *testing.T) {
	fx := createTestLocalIdentity(t)
	ctx := context.Background()

	_, err := fx.identity.CreateUser(ctx, "verify@shop.test", "secret123")
	require.NoError(t, err)
	require.NoError(t, fx.identity.SendEmailVerification(ctx, "verify@shop.test"))

	require.Len(t, fx.mailer.sent, 1)
	assert.Equal(t, "verify@shop.test", fx.mailer.sent[0].To)

	session, err := fx.identity.SignIn(ctx, "verify@shop.test", "secret123")
	require.NoError(t, err)
	claims, err := fx.identity.VerifyToken(ctx, session.IDToken)
	require.NoError(t, err)
	assert.True(t, claims.EmailVerified)
}

func TestLocalIdentity_RevokeSessions_SameSecond(t *testing.T) {
	fx := createTestLocalIdentity(t)
	ctx := context.Background()

	uid, err := fx.identity.CreateUser(ctx, "quick@shop.test", "secret123")
	require.NoError(t, err)

	issued := time.UnixMilli(1_700_000_000_250)
	setClock := func(at time.Time) {
		fx.identity.now = func() time.Time { return at }
		fx.identity.tokens.(*jwtService).now = func() time.Time { return at }
	}

	setClock(issued)
	session, err := fx.identity.SignIn(ctx, "quick@shop.test", "secret123")
	require.NoError(t, err)

	setClock(issued.Add(500 * time.Millisecond))
	require.NoError(t, fx.identity.RevokeSessions(ctx, uid))

	_, err = fx.identity.VerifyToken(ctx, session.IDToken)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated), "token from the revoked second must be rejected")

	setClock(issued.Add(501 * time.Millisecond))
	fresh, err := fx.identity.SignIn(ctx, "quick@shop.test", "secret123")
	require.NoError(t, err)
	claims, err := fx.identity.VerifyToken(ctx, fresh.IDToken)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
}

func TestLocalIdentity_RevokeAndDelete(t *testing.T) {
	fx := createTestLocalIdentity(t)
	ctx := context.Background()

	uid, err := fx.identity.CreateUser(ctx, "gone@shop.test", "secret123")
	require.NoError(t, err)
	session, err := fx.identity.SignIn(ctx, "gone@shop.test", "secret123")
	require.NoError(t, err)

	fx.identity.now = func() time.Time { return time.Now().Add(time.Minute) }
	require.NoError(t, fx.identity.RevokeSessions(ctx, uid))

	_, err = fx.identity.VerifyToken(ctx, session.IDToken)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	require.NoError(t, fx.identity.DeleteUser(ctx, uid))
	_, err = fx.identity.SignIn(ctx, "gone@shop.test", "secret123")
	require.Error(t, err)
}
