package auth

import (
	"context"
	"log/slog"

	deliverycontext "smartfit/internal/delivery/context"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// firebaseIdentity implements service.IdentityProvider on Firebase Authentication.
// Admin operations use the Admin SDK; password sign-in uses the Identity Toolkit
// REST API with the project's web API key.
type firebaseIdentity struct {
	client  *fbauth.Client
	toolkit *identitytoolkit.Service
	mailer  service.Mailer
	logger  *slog.Logger
}

// NewFirebaseIdentity creates the provider from an initialized Firebase app.
func NewFirebaseIdentity(ctx context.Context, app *firebase.App, webAPIKey string, mailer service.Mailer, logger *slog.Logger) (service.IdentityProvider, error) {
	if app == nil {
		return nil, errors.New("firebase app is not configured")
	}
	if webAPIKey == "" {
		return nil, errors.New("auth.webApiKey is required for the firebase provider")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(webAPIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &firebaseIdentity{client: client, toolkit: toolkit, mailer: mailer, logger: logger}, nil
}

func (p *firebaseIdentity) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

func (p *firebaseIdentity) fail(ctx context.Context, op string, err error) error {
	p.log(ctx).Error("Auth provider call failed", slog.String("op", op), slog.Any("error", err))

	return domainerrors.NewAuthProviderError(err)
}

func (p *firebaseIdentity) CreateUser(ctx context.Context, email, password string) (string, error) {
	user, err := p.client.CreateUser(ctx, (&fbauth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", domainerrors.ErrUserAlreadyExists.WithDetails(email)
		}

		return "", p.fail(ctx, "create_user", err)
	}

	return user.UID, nil
}

func (p *firebaseIdentity) SignIn(ctx context.Context, email, password string) (*service.AuthSession, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, p.fail(ctx, "sign_in", err)
	}

	return &service.AuthSession{
		UID:          resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// SendEmailVerification generates a verification link and mails it.
func (p *firebaseIdentity) SendEmailVerification(ctx context.Context, email string) error {
	link, err := p.client.EmailVerificationLink(ctx, email)
	if err != nil {
		return p.fail(ctx, "email_verification_link", err)
	}

	return p.mailer.Send(ctx, verificationEmail(email, link))
}

func (p *firebaseIdentity) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if _, err := p.client.UpdateUser(ctx, uid, (&fbauth.UserToUpdate{}).Password(newPassword)); err != nil {
		if fbauth.IsUserNotFound(err) {
			return domainerrors.ErrUserNotFound.WithDetails(uid)
		}

		return p.fail(ctx, "change_password", err)
	}

	return nil
}

func (p *firebaseIdentity) VerifyToken(ctx context.Context, idToken string) (*service.IdentityClaims, error) {
	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	claims := &service.IdentityClaims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		claims.EmailVerified = verified
	}

	return claims, nil
}

func (p *firebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return p.fail(ctx, "revoke_sessions", err)
	}

	return nil
}

func (p *firebaseIdentity) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil
		}

		return p.fail(ctx, "delete_user", err)
	}

	return nil
}
