package impl

import (
	"context"
	"testing"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
	mockRepo "smartfit/internal/mocks/repository"
	mockSvc "smartfit/internal/mocks/service"
	"smartfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activationServiceFixtures struct {
	service        usecase.ActivationUsecase
	employeeRepo   *mockRepo.MockEmployeeRepository
	activationRepo *mockRepo.MockActivationRepository
	shopRepo       *mockRepo.MockShopRepository
	identity       *mockSvc.MockIdentityProvider
}

func createTestActivationService(t *testing.T) activationServiceFixtures {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	activationRepo := mockRepo.NewMockActivationRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)

	srv := NewActivationService(ActivationServiceParams{
		EmployeeRepo:   employeeRepo,
		ActivationRepo: activationRepo,
		ShopRepo:       shopRepo,
		Identity:       identity,
		Logger:         discardLogger(),
	}).(*activationService)
	srv.now = fixedClock(1_700_000_000_000)

	return activationServiceFixtures{
		service:        srv,
		employeeRepo:   employeeRepo,
		activationRepo: activationRepo,
		shopRepo:       shopRepo,
		identity:       identity,
	}
}

func defaultEmployee() *entity.Employee {
	temp := "Temp1234"

	return &entity.Employee{
		ID:               "def-1",
		ShopID:           "shop-1",
		ShopName:         "Sole Mates",
		Email:            "emp1.shop-1@smartfit.local",
		TempPassword:     &temp,
		IsDefaultAccount: true,
		Status:           entity.EmployeeStatusPending,
		CreatedAt:        1,
	}
}

func activationInput() *usecase.ActivateEmployeeInput {
	return &usecase.ActivateEmployeeInput{
		DefaultEmail:    "emp1.shop-1@smartfit.local",
		DefaultPassword: "Temp1234",
		NewEmail:        "maria@example.com",
		NewPassword:     "s3cret!",
	}
}

// recordStages captures the stage of every saved activation.
func recordStages(fx activationServiceFixtures) *[]entity.ActivationStage {
	stages := &[]entity.ActivationStage{}
	fx.activationRepo.EXPECT().
		SaveActivation(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *entity.Activation) { *stages = append(*stages, a.Stage) }).
		Return(nil)

	return stages
}

func TestActivationService_ActivateEmployee(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	other := defaultEmployee()
	other.ID, other.Email = "def-2", "emp2.shop-1@smartfit.local"

	fx.employeeRepo.EXPECT().ListEmployees(ctx).Return([]*entity.Employee{other, defaultEmployee()}, nil)
	fx.identity.EXPECT().CreateUser(ctx, "maria@example.com", "s3cret!").Return("uid-1", nil)
	stages := recordStages(fx)
	fx.employeeRepo.EXPECT().
		SaveEmployee(ctx, mock.MatchedBy(func(e *entity.Employee) bool {
			return e.ID == "uid-1" && e.UID == "uid-1" && e.Email == "maria@example.com" &&
				e.Status == entity.EmployeeStatusActive && !e.IsDefaultAccount && e.TempPassword == nil &&
				e.ShopID == "shop-1" && e.CreatedAt == 1
		})).
		Return(nil)
	fx.employeeRepo.EXPECT().DeleteEmployee(ctx, "def-1").Return(nil)
	fx.identity.EXPECT().SendEmailVerification(ctx, "maria@example.com").Return(nil)

	result, err := fx.service.ActivateEmployee(ctx, activationInput())
	require.NoError(t, err)
	assert.Equal(t, "uid-1", result.UID)
	assert.Equal(t, entity.ActivationCompleted, result.Stage)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []entity.ActivationStage{
		entity.ActivationCredentialCreated,
		entity.ActivationRecordCreated,
		entity.ActivationCompleted,
	}, *stages)
}

func TestActivationService_ActivateEmployee_FailsBeforeAnyWrite(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		fx := createTestActivationService(t)
		input := activationInput()
		input.NewEmail = "not-an-email"

		_, err := fx.service.ActivateEmployee(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("wrong temporary password", func(t *testing.T) {
		fx := createTestActivationService(t)
		input := activationInput()
		input.DefaultPassword = "guess"
		fx.employeeRepo.EXPECT().ListEmployees(mock.Anything).Return([]*entity.Employee{defaultEmployee()}, nil)

		_, err := fx.service.ActivateEmployee(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrDefaultAccountNotFound))
		assert.Equal(t, "Default account not found or already activated", err.Error())
	})

	t.Run("default email differs in case", func(t *testing.T) {
		fx := createTestActivationService(t)
		input := activationInput()
		input.DefaultEmail = "EMP1.shop-1@smartfit.local"
		fx.employeeRepo.EXPECT().ListEmployees(mock.Anything).Return([]*entity.Employee{defaultEmployee()}, nil)

		_, err := fx.service.ActivateEmployee(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrDefaultAccountNotFound))
	})

	t.Run("default email with surrounding spaces", func(t *testing.T) {
		fx := createTestActivationService(t)
		input := activationInput()
		input.DefaultEmail = " emp1.shop-1@smartfit.local "
		fx.employeeRepo.EXPECT().ListEmployees(mock.Anything).Return([]*entity.Employee{defaultEmployee()}, nil).Maybe()

		_, err := fx.service.ActivateEmployee(context.Background(), input)
		assert.True(t, errors.IsAny(err, domainerrors.ErrValidationFailed, domainerrors.ErrDefaultAccountNotFound))
		assert.Equal(t, " emp1.shop-1@smartfit.local ", input.DefaultEmail)
	})

	t.Run("already activated", func(t *testing.T) {
		fx := createTestActivationService(t)
		activated := defaultEmployee().Activated("uid-9", "x@example.com", 5)
		fx.employeeRepo.EXPECT().ListEmployees(mock.Anything).Return([]*entity.Employee{activated}, nil)

		_, err := fx.service.ActivateEmployee(context.Background(), activationInput())
		assert.True(t, errors.Is(err, domainerrors.ErrDefaultAccountNotFound))
	})

	t.Run("credential creation fails", func(t *testing.T) {
		fx := createTestActivationService(t)
		fx.employeeRepo.EXPECT().ListEmployees(mock.Anything).Return([]*entity.Employee{defaultEmployee()}, nil)
		fx.identity.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).Return("", domainerrors.ErrUserAlreadyExists)

		_, err := fx.service.ActivateEmployee(context.Background(), activationInput())
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
		fx.activationRepo.AssertNotCalled(t, "SaveActivation", mock.Anything, mock.Anything)
	})
}

func TestActivationService_ActivateEmployee_RecordWriteFails(t *testing.T) {
	fx := createTestActivationService(t)
	fx.employeeRepo.EXPECT().ListEmployees(mock.Anything).Return([]*entity.Employee{defaultEmployee()}, nil)
	fx.identity.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).Return("uid-1", nil)
	stages := recordStages(fx)
	fx.employeeRepo.EXPECT().SaveEmployee(mock.Anything, mock.Anything).Return(errors.New("PERMISSION_DENIED"))

	_, err := fx.service.ActivateEmployee(context.Background(), activationInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrActivationIncomplete))
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
	assert.Equal(t, []entity.ActivationStage{entity.ActivationCredentialCreated, entity.ActivationCredentialCreated}, *stages)
	fx.employeeRepo.AssertNotCalled(t, "DeleteEmployee", mock.Anything, mock.Anything)
}

func TestActivationService_ActivateEmployee_PartialFailuresAreWarnings(t *testing.T) {
	fx := createTestActivationService(t)
	fx.employeeRepo.EXPECT().ListEmployees(mock.Anything).Return([]*entity.Employee{defaultEmployee()}, nil)
	fx.identity.EXPECT().CreateUser(mock.Anything, mock.Anything, mock.Anything).Return("uid-1", nil)
	recordStages(fx)
	fx.employeeRepo.EXPECT().SaveEmployee(mock.Anything, mock.Anything).Return(nil)
	fx.employeeRepo.EXPECT().DeleteEmployee(mock.Anything, "def-1").Return(errors.New("network"))
	fx.identity.EXPECT().SendEmailVerification(mock.Anything, mock.Anything).Return(errors.New("smtp"))

	result, err := fx.service.ActivateEmployee(context.Background(), activationInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ActivationRecordCreated, result.Stage)
	assert.Len(t, result.Warnings, 2)
}

func TestActivationService_ReconcilePending(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	interrupted := &entity.Activation{
		ID:                "a1",
		DefaultEmployeeID: "def-1",
		UID:               "uid-1",
		Stage:             entity.ActivationCredentialCreated,
		Employee:          defaultEmployee().Activated("uid-1", "maria@example.com", 10),
		Attempts:          1,
	}
	stuck := &entity.Activation{
		ID:                "a2",
		DefaultEmployeeID: "def-2",
		UID:               "uid-2",
		Stage:             entity.ActivationRecordCreated,
		Attempts:          3,
	}

	fx.activationRepo.EXPECT().ListPendingActivations(ctx).Return([]*entity.Activation{interrupted, stuck}, nil)
	fx.employeeRepo.EXPECT().SaveEmployee(ctx, interrupted.Employee).Return(nil)
	fx.employeeRepo.EXPECT().DeleteEmployee(ctx, "def-1").Return(nil)
	fx.employeeRepo.EXPECT().DeleteEmployee(ctx, "def-2").Return(errors.New("unavailable"))
	fx.activationRepo.EXPECT().SaveActivation(ctx, mock.Anything).Return(nil).Times(2)

	result, err := fx.service.ReconcilePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.ReconcileResult{Examined: 2, Completed: 1, Failed: 1}, *result)

	assert.Equal(t, entity.ActivationCompleted, interrupted.Stage)
	assert.Equal(t, 2, interrupted.Attempts)
	assert.Empty(t, interrupted.LastError)

	assert.Equal(t, entity.ActivationRecordCreated, stuck.Stage)
	assert.Equal(t, 4, stuck.Attempts)
	assert.Contains(t, stuck.LastError, "unavailable")
}

func TestActivationService_ProvisionDefaultAccounts(t *testing.T) {
	shopOwner := entity.Actor{UserID: "shop-1", Role: entity.RoleShopOwner, ShopID: "shop-1"}

	t.Run("creates numbered default accounts", func(t *testing.T) {
		fx := createTestActivationService(t)
		ctx := context.Background()

		fx.shopRepo.EXPECT().FindShop(ctx, "shop-1").
			Return(&entity.Shop{ID: "shop-1", ShopName: "Sole Mates", Status: entity.ShopStatusApproved}, nil)
		fx.employeeRepo.EXPECT().ListEmployees(ctx).Return([]*entity.Employee{defaultEmployee()}, nil)
		fx.employeeRepo.EXPECT().
			SaveEmployee(ctx, mock.MatchedBy(func(e *entity.Employee) bool {
				return e.IsDefaultAccount && e.TempPassword != nil && e.ShopName == "Sole Mates"
			})).
			Return(nil).
			Times(2)

		accounts, err := fx.service.ProvisionDefaultAccounts(ctx, shopOwner, "shop-1", 2)
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "emp2.shop-1@smartfit.local", accounts[0].Email)
		assert.Equal(t, "emp3.shop-1@smartfit.local", accounts[1].Email)
		assert.Len(t, accounts[0].TempPassword, 10)
		assert.NotEqual(t, accounts[0].TempPassword, accounts[1].TempPassword)
	})

	t.Run("employees cannot provision", func(t *testing.T) {
		fx := createTestActivationService(t)

		_, err := fx.service.ProvisionDefaultAccounts(context.Background(),
			entity.Actor{UserID: "e1", Role: entity.RoleEmployee, ShopID: "shop-1"}, "shop-1", 1)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("count is bounded", func(t *testing.T) {
		fx := createTestActivationService(t)

		_, err := fx.service.ProvisionDefaultAccounts(context.Background(), shopOwner, "shop-1", 0)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
