package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "smartfit/internal/delivery/context"
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const minPasswordLength = 6

// localIdentity implements service.IdentityProvider with bcrypt credentials kept
// in the document store and locally signed JWTs. Provider errors use the same
// codes as Firebase so messages map the same way.
type localIdentity struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	mailer      service.Mailer
	validate    *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
}

// NewLocalIdentity is the constructor for localIdentity.
func NewLocalIdentity(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	mailer service.Mailer,
	logger *slog.Logger,
) service.IdentityProvider {
	return &localIdentity{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		mailer:      mailer,
		validate:    validator.New(),
		logger:      logger,
		now:         time.Now,
	}
}

func (p *localIdentity) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

func providerError(code string) error {
	return domainerrors.NewAuthProviderError(errors.New(code))
}

func (p *localIdentity) checkPassword(password string) error {
	if len(password) < minPasswordLength {
		return providerError("WEAK_PASSWORD : Password should be at least 6 characters")
	}

	return nil
}

func (p *localIdentity) CreateUser(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if err := p.validate.Var(email, "required,email"); err != nil {
		return "", providerError("INVALID_EMAIL")
	}
	if err := p.checkPassword(password); err != nil {
		return "", err
	}

	_, err := p.credentials.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", domainerrors.ErrUserAlreadyExists.WithDetails(email)
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return "", err
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	uid, err := uuid.NewV7()
	if err != nil {
		return "", errors.WithStack(err)
	}

	credential := &entity.Credential{
		UID:          uid.String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    p.now().UnixMilli(),
	}
	if err := p.credentials.SaveCredential(ctx, credential); err != nil {
		return "", err
	}

	p.log(ctx).Info("Local credential created", slog.String("uid", credential.UID))

	return credential.UID, nil
}

func (p *localIdentity) SignIn(ctx context.Context, email, password string) (*service.AuthSession, error) {
	credential, err := p.credentials.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, providerError("INVALID_LOGIN_CREDENTIALS")
		}

		return nil, err
	}
	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, providerError("INVALID_LOGIN_CREDENTIALS")
	}

	access, refresh, err := p.tokens.GenerateTokens(credential.UID, credential.Email)
	if err != nil {
		return nil, err
	}

	return &service.AuthSession{
		UID:          credential.UID,
		Email:        credential.Email,
		IDToken:      access,
		RefreshToken: refresh,
		ExpiresIn:    int64(defaultAccessTTL / time.Second),
	}, nil
}

// SendEmailVerification marks the address verified and sends a confirmation.
// There is no link to follow in local development.
func (p *localIdentity) SendEmailVerification(ctx context.Context, email string) error {
	credential, err := p.credentials.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	credential.EmailVerified = true
	credential.UpdatedAt = p.now().UnixMilli()
	if err := p.credentials.SaveCredential(ctx, credential); err != nil {
		return err
	}

	return p.mailer.Send(ctx, verificationEmail(email, ""))
}

func (p *localIdentity) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if err := p.checkPassword(newPassword); err != nil {
		return err
	}

	credential, err := p.credentials.FindByUID(ctx, uid)
	if err != nil {
		return err
	}

	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	credential.PasswordHash = hash
	credential.UpdatedAt = p.now().UnixMilli()

	return p.credentials.SaveCredential(ctx, credential)
}

func (p *localIdentity) VerifyToken(ctx context.Context, idToken string) (*service.IdentityClaims, error) {
	claims, err := p.tokens.ValidateToken(idToken, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	credential, err := p.credentials.FindByUID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
		}

		return nil, err
	}
	if credential.TokensValidAfter > 0 && issuedAtMs(claims) <= credential.TokensValidAfter {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("session revoked")
	}

	return &service.IdentityClaims{
		UID:           credential.UID,
		Email:         credential.Email,
		EmailVerified: credential.EmailVerified,
	}, nil
}

// RevokeSessions rejects tokens issued up to and including the current millisecond.
func (p *localIdentity) RevokeSessions(ctx context.Context, uid string) error {
	credential, err := p.credentials.FindByUID(ctx, uid)
	if err != nil {
		return err
	}

	now := p.now().UnixMilli()
	credential.TokensValidAfter = now
	credential.UpdatedAt = now

	return p.credentials.SaveCredential(ctx, credential)
}

// issuedAtMs falls back to the whole-second iat for tokens without iat_ms.
func issuedAtMs(claims *service.Claims) int64 {
	switch {
	case claims.IssuedAtMs > 0:
		return claims.IssuedAtMs
	case claims.IssuedAt != nil:
		return claims.IssuedAt.UnixMilli()
	default:
		return 0
	}
}

func (p *localIdentity) DeleteUser(ctx context.Context, uid string) error {
	return p.credentials.DeleteCredential(ctx, uid)
}
