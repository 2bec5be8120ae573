package impl

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
	"smartfit/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity     service.IdentityProvider
	accountRepo  repository.AccountRepository
	shopRepo     repository.ShopRepository
	employeeRepo repository.EmployeeRepository
	validate     *validator.Validate
	logger       *slog.Logger
	now          func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity     service.IdentityProvider
	AccountRepo  repository.AccountRepository
	ShopRepo     repository.ShopRepository
	EmployeeRepo repository.EmployeeRepository
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identity:     params.Identity,
		accountRepo:  params.AccountRepo,
		shopRepo:     params.ShopRepo,
		employeeRepo: params.EmployeeRepo,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	session, err := srv.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(err, "sign in")
	}

	auth, err := srv.resolve(ctx, session.UID, session.Email)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed in", slog.String("uid", session.UID), slog.String("role", auth.Role.String()))

	return &usecase.LoginOutput{Session: session, Auth: auth}, nil
}

func (srv *sessionService) CheckAuth(ctx context.Context, token string) (*usecase.AuthState, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.identity.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "verify token")
	}

	return srv.resolve(ctx, claims.UID, claims.Email)
}

// resolve finds the account behind uid. The first match wins: admin, shop
// owner, active employee, then customer. Owners of shops that are not approved
// get no shop scope. An account with no profile at all is
// treated as a customer.
func (srv *sessionService) resolve(ctx context.Context, uid, email string) (*usecase.AuthState, error) {
	auth := &usecase.AuthState{Authenticated: true, UserID: uid, Email: email}

	isAdmin, err := srv.accountRepo.IsAdmin(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "check admin")
	}
	if isAdmin {
		auth.Role = entity.RoleAdmin
		auth.Actor = entity.Actor{UserID: uid, Role: entity.RoleAdmin}

		return auth, nil
	}

	shop, err := srv.shopRepo.FindShop(ctx, uid)
	switch {
	case err == nil:
		auth.Role = entity.RoleShopOwner
		auth.UserData = shop
		auth.Actor = entity.Actor{UserID: uid, Role: entity.RoleShopOwner, Name: shop.OwnerName}
		// Until approval the owner may only follow and resubmit the application.
		if shop.Status == entity.ShopStatusApproved {
			auth.Actor.ShopID = shop.ID
		}

		return auth, nil
	case !errors.Is(err, domainerrors.ErrShopNotFound):
		return nil, errors.Wrap(err, "find shop")
	}

	employee, err := srv.employeeRepo.FindEmployee(ctx, uid)
	switch {
	case err == nil && employee.Status == entity.EmployeeStatusActive:
		auth.Role = entity.RoleEmployee
		auth.UserData = employee
		auth.Actor = entity.Actor{UserID: uid, Role: entity.RoleEmployee, ShopID: employee.ShopID, Name: employee.Name}

		return auth, nil
	case err != nil && !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "find employee")
	}

	auth.Role = entity.RoleCustomer
	auth.Actor = entity.Actor{UserID: uid, Role: entity.RoleCustomer}

	customer, err := srv.accountRepo.FindCustomer(ctx, uid)
	switch {
	case err == nil:
		auth.UserData = customer
		auth.Actor.Name = strings.TrimSpace(customer.FirstName + " " + customer.LastName)
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "find customer")
	}

	return auth, nil
}

func (srv *sessionService) Logout(ctx context.Context, uid string) error {
	if uid == "" {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.identity.RevokeSessions(ctx, uid); err != nil {
		return errors.Wrap(err, "revoke sessions")
	}

	srv.log(ctx).Info("User signed out", slog.String("uid", uid))

	return nil
}

func (srv *sessionService) ChangePassword(ctx context.Context, auth *usecase.AuthState, input *usecase.ChangePasswordInput) error {
	if auth == nil || !auth.Authenticated {
		return domainerrors.ErrUnauthenticated
	}
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("password input is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if input.CurrentPassword == input.NewPassword {
		return domainerrors.ErrValidationFailed.WithDetails("new password must differ from the current one")
	}

	if _, err := srv.identity.SignIn(ctx, auth.Email, input.CurrentPassword); err != nil {
		return errors.Wrap(err, "confirm current password")
	}
	if err := srv.identity.ChangePassword(ctx, auth.UserID, input.NewPassword); err != nil {
		return errors.Wrap(err, "change password")
	}

	srv.log(ctx).Info("Password changed", slog.String("uid", auth.UserID))

	return nil
}

// RegisterCustomer creates the credential and then the profile. When the
// profile cannot be written the credential is deleted again.
func (srv *sessionService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, []string, error) {
	if input == nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("registration input is required")
	}
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.Struct(input); err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	uid, err := srv.identity.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create customer credential")
	}

	customer := &entity.Customer{
		ID:        uid,
		Email:     input.Email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: srv.now().UnixMilli(),
	}
	if err := srv.accountRepo.SaveCustomer(ctx, customer); err != nil {
		if delErr := srv.identity.DeleteUser(ctx, uid); delErr != nil {
			srv.log(ctx).Error("Failed to remove credential of unregistered customer",
				slog.String("uid", uid),
				slog.Any("error", delErr),
			)
		}

		return nil, nil, errors.Wrap(err, "save customer profile")
	}

	var warnings []string
	if err := srv.identity.SendEmailVerification(ctx, input.Email); err != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.String("uid", uid), slog.Any("error", err))
		warnings = append(warnings, "the verification email could not be sent")
	}

	srv.log(ctx).Info("Customer registered", slog.String("uid", uid))

	return customer, warnings, nil
}
