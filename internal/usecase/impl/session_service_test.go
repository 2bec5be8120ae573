package impl

import (
	"context"
	"testing"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"
	mockRepo "smartfit/internal/mocks/repository"
	mockSvc "smartfit/internal/mocks/service"
	"smartfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	identity     *mockSvc.MockIdentityProvider
	accountRepo  *mockRepo.MockAccountRepository
	shopRepo     *mockRepo.MockShopRepository
	employeeRepo *mockRepo.MockEmployeeRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	identity := mockSvc.NewMockIdentityProvider(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)

	srv := NewSessionService(SessionServiceParams{
		Identity:     identity,
		AccountRepo:  accountRepo,
		ShopRepo:     shopRepo,
		EmployeeRepo: employeeRepo,
		Logger:       discardLogger(),
	}).(*sessionService)
	srv.now = fixedClock(7_000)

	return sessionServiceFixtures{
		service:      srv,
		identity:     identity,
		accountRepo:  accountRepo,
		shopRepo:     shopRepo,
		employeeRepo: employeeRepo,
	}
}

func TestSessionService_CheckAuth_RoleResolution(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(fx sessionServiceFixtures)
		wantRole   entity.Role
		wantShopID string
	}{
		{
			name: "admin wins over everything",
			setup: func(fx sessionServiceFixtures) {
				fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(true, nil)
			},
			wantRole: entity.RoleAdmin,
		},
		{
			name: "shop owner",
			setup: func(fx sessionServiceFixtures) {
				fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)
				fx.shopRepo.EXPECT().FindShop(mock.Anything, "uid-1").
					Return(&entity.Shop{ID: "uid-1", OwnerName: "Jane", Status: entity.ShopStatusApproved}, nil)
			},
			wantRole:   entity.RoleShopOwner,
			wantShopID: "uid-1",
		},
		{
			name: "owner of a pending shop has no shop scope",
			setup: func(fx sessionServiceFixtures) {
				fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)
				fx.shopRepo.EXPECT().FindShop(mock.Anything, "uid-1").
					Return(&entity.Shop{ID: "uid-1", OwnerName: "Jane", Status: entity.ShopStatusPending}, nil)
			},
			wantRole: entity.RoleShopOwner,
		},
		{
			name: "owner of a rejected shop has no shop scope",
			setup: func(fx sessionServiceFixtures) {
				fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)
				fx.shopRepo.EXPECT().FindShop(mock.Anything, "uid-1").
					Return(&entity.Shop{ID: "uid-1", OwnerName: "Jane", Status: entity.ShopStatusRejected}, nil)
			},
			wantRole: entity.RoleShopOwner,
		},
		{
			name: "active employee",
			setup: func(fx sessionServiceFixtures) {
				fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)
				fx.shopRepo.EXPECT().FindShop(mock.Anything, "uid-1").Return(nil, domainerrors.ErrShopNotFound)
				fx.employeeRepo.EXPECT().FindEmployee(mock.Anything, "uid-1").
					Return(&entity.Employee{ID: "uid-1", ShopID: "shop-9", Status: entity.EmployeeStatusActive}, nil)
			},
			wantRole:   entity.RoleEmployee,
			wantShopID: "shop-9",
		},
		{
			name: "pending employee record falls through to customer",
			setup: func(fx sessionServiceFixtures) {
				fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)
				fx.shopRepo.EXPECT().FindShop(mock.Anything, "uid-1").Return(nil, domainerrors.ErrShopNotFound)
				fx.employeeRepo.EXPECT().FindEmployee(mock.Anything, "uid-1").
					Return(&entity.Employee{ID: "uid-1", Status: entity.EmployeeStatusPending}, nil)
				fx.accountRepo.EXPECT().FindCustomer(mock.Anything, "uid-1").Return(nil, domainerrors.ErrUserNotFound)
			},
			wantRole: entity.RoleCustomer,
		},
		{
			name: "customer",
			setup: func(fx sessionServiceFixtures) {
				fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)
				fx.shopRepo.EXPECT().FindShop(mock.Anything, "uid-1").Return(nil, domainerrors.ErrShopNotFound)
				fx.employeeRepo.EXPECT().FindEmployee(mock.Anything, "uid-1").Return(nil, domainerrors.ErrUserNotFound)
				fx.accountRepo.EXPECT().FindCustomer(mock.Anything, "uid-1").
					Return(&entity.Customer{ID: "uid-1", FirstName: "Ana"}, nil)
			},
			wantRole: entity.RoleCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			fx.identity.EXPECT().VerifyToken(mock.Anything, "token").
				Return(&service.IdentityClaims{UID: "uid-1", Email: "a@example.com"}, nil)
			tt.setup(fx)

			auth, err := fx.service.CheckAuth(context.Background(), "token")
			require.NoError(t, err)
			assert.True(t, auth.Authenticated)
			assert.Equal(t, tt.wantRole, auth.Role)
			assert.Equal(t, tt.wantRole, auth.Actor.Role)
			assert.Equal(t, tt.wantShopID, auth.Actor.ShopID)
			assert.Equal(t, "uid-1", auth.UserID)
		})
	}
}

func TestSessionService_CheckAuth_Failures(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		fx := createTestSessionService(t)

		_, err := fx.service.CheckAuth(context.Background(), " ")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("store failure is not treated as a customer", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.identity.EXPECT().VerifyToken(mock.Anything, "token").Return(&service.IdentityClaims{UID: "uid-1"}, nil)
		fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(false, nil)
		fx.shopRepo.EXPECT().FindShop(mock.Anything, "uid-1").Return(nil, errors.New("unavailable"))

		_, err := fx.service.CheckAuth(context.Background(), "token")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unavailable")
	})
}

func TestSessionService_Login(t *testing.T) {
	fx := createTestSessionService(t)
	session := &service.AuthSession{UID: "uid-1", Email: "a@example.com", IDToken: "id-token", ExpiresIn: 3600}
	fx.identity.EXPECT().SignIn(mock.Anything, "a@example.com", "secret").Return(session, nil)
	fx.accountRepo.EXPECT().IsAdmin(mock.Anything, "uid-1").Return(true, nil)

	out, err := fx.service.Login(context.Background(), " a@example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "id-token", out.Session.IDToken)
	assert.Equal(t, entity.RoleAdmin, out.Auth.Role)
}

func TestSessionService_ChangePassword(t *testing.T) {
	auth := &usecase.AuthState{Authenticated: true, UserID: "uid-1", Email: "a@example.com"}

	t.Run("confirms the current password first", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.identity.EXPECT().SignIn(mock.Anything, "a@example.com", "old-pass").Return(nil, domainerrors.ErrInvalidCredentials)

		err := fx.service.ChangePassword(context.Background(), auth, &usecase.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "new-pass"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		fx.identity.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("changes the password", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.identity.EXPECT().SignIn(mock.Anything, "a@example.com", "old-pass").Return(&service.AuthSession{UID: "uid-1"}, nil)
		fx.identity.EXPECT().ChangePassword(mock.Anything, "uid-1", "new-pass").Return(nil)

		require.NoError(t, fx.service.ChangePassword(context.Background(), auth,
			&usecase.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "new-pass"}))
	})

	t.Run("short password", func(t *testing.T) {
		fx := createTestSessionService(t)

		err := fx.service.ChangePassword(context.Background(), auth, &usecase.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "123"})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestSessionService_RegisterCustomer(t *testing.T) {
	input := func() *usecase.RegisterCustomerInput {
		return &usecase.RegisterCustomerInput{Email: "ana@example.com", Password: "secret1", FirstName: "Ana"}
	}

	t.Run("success with verification warning", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.identity.EXPECT().CreateUser(mock.Anything, "ana@example.com", "secret1").Return("uid-7", nil)
		fx.accountRepo.EXPECT().
			SaveCustomer(mock.Anything, &entity.Customer{ID: "uid-7", Email: "ana@example.com", FirstName: "Ana", CreatedAt: 7_000}).
			Return(nil)
		fx.identity.EXPECT().SendEmailVerification(mock.Anything, "ana@example.com").Return(errors.New("quota"))

		customer, warnings, err := fx.service.RegisterCustomer(context.Background(), input())
		require.NoError(t, err)
		assert.Equal(t, "uid-7", customer.ID)
		assert.Len(t, warnings, 1)
	})

	t.Run("profile failure removes the credential", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.identity.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).Return("uid-7", nil)
		fx.accountRepo.EXPECT().SaveCustomer(mock.Anything, mock.Anything).Return(errors.New("denied"))
		fx.identity.EXPECT().DeleteUser(mock.Anything, "uid-7").Return(nil)

		_, _, err := fx.service.RegisterCustomer(context.Background(), input())
		require.Error(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.identity.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).Return("", domainerrors.ErrUserAlreadyExists)

		_, _, err := fx.service.RegisterCustomer(context.Background(), input())
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})
}

func TestSessionService_Logout(t *testing.T) {
	fx := createTestSessionService(t)
	fx.identity.EXPECT().RevokeSessions(mock.Anything, "uid-1").Return(nil)

	require.NoError(t, fx.service.Logout(context.Background(), "uid-1"))
	assert.True(t, errors.Is(fx.service.Logout(context.Background(), ""), domainerrors.ErrUnauthenticated))
}
