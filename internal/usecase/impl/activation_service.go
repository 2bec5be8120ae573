package impl

import (
	"context"
	"crypto/rand"
	"fmt"
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
	"smartfit/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxProvisionBatch    = 50
	tempPasswordLength   = 10
	defaultAccountDomain = "smartfit.local"
)

type activationService struct {
	employeeRepo   repository.EmployeeRepository
	activationRepo repository.ActivationRepository
	shopRepo       repository.ShopRepository
	identity       service.IdentityProvider
	validate       *validator.Validate
	logger         *slog.Logger
	now            func() time.Time
}

// ActivationServiceParams holds dependencies for ActivationService, injected by Fx.
type ActivationServiceParams struct {
	fx.In

	EmployeeRepo   repository.EmployeeRepository
	ActivationRepo repository.ActivationRepository
	ShopRepo       repository.ShopRepository
	Identity       service.IdentityProvider
	Logger         *slog.Logger
}

// NewActivationService creates the employee onboarding service.
func NewActivationService(params ActivationServiceParams) usecase.ActivationUsecase {
	return &activationService{
		employeeRepo:   params.EmployeeRepo,
		activationRepo: params.ActivationRepo,
		shopRepo:       params.ShopRepo,
		identity:       params.Identity,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *activationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ActivateEmployee finds the default account, creates the real credential,
// writes the activated record under the new uid and only then removes the
// default record. Progress is tracked in an activation record so a run that
// stops halfway can be finished by ReconcilePending.
func (srv *activationService) ActivateEmployee(ctx context.Context, input *usecase.ActivateEmployeeInput) (*usecase.ActivationResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("activation input is required")
	}
	input.NewEmail = strings.TrimSpace(input.NewEmail)
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	defaultAccount, err := srv.findDefaultAccount(ctx, input.DefaultEmail, input.DefaultPassword)
	if err != nil {
		return nil, err
	}

	uid, err := srv.identity.CreateUser(ctx, input.NewEmail, input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(err, "create employee credential")
	}

	now := srv.now().UnixMilli()
	sagaID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generate activation id")
	}

	activated := defaultAccount.Activated(uid, input.NewEmail, now)
	saga := &entity.Activation{
		ID:                sagaID.String(),
		DefaultEmployeeID: defaultAccount.ID,
		UID:               uid,
		NewEmail:          input.NewEmail,
		Stage:             entity.ActivationCredentialCreated,
		Employee:          activated,
		Attempts:          1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	srv.saveSaga(ctx, saga)

	if err := srv.employeeRepo.SaveEmployee(ctx, activated); err != nil {
		srv.log(ctx).Error("Failed to write activated employee record",
			slog.String("activation_id", saga.ID),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		saga.LastError = err.Error()
		srv.saveSaga(ctx, saga)

		return nil, errors.Wrap(domainerrors.ErrActivationIncomplete.WithDetails(saga.ID), err.Error())
	}
	saga.Stage = entity.ActivationRecordCreated
	srv.saveSaga(ctx, saga)

	result := &usecase.ActivationResult{ActivationID: saga.ID, UID: uid, Employee: activated, Stage: saga.Stage}

	removed := true
	if err := srv.employeeRepo.DeleteEmployee(ctx, defaultAccount.ID); err != nil {
		removed = false
		srv.log(ctx).Warn("Failed to remove default employee record",
			slog.String("activation_id", saga.ID),
			slog.String("employee_id", defaultAccount.ID),
			slog.Any("error", err),
		)
		saga.LastError = err.Error()
		result.Warnings = append(result.Warnings, "the default account could not be removed and will be cleaned up later")
	}

	if err := srv.identity.SendEmailVerification(ctx, input.NewEmail); err != nil {
		srv.log(ctx).Warn("Failed to send verification email",
			slog.String("activation_id", saga.ID),
			slog.Any("error", err),
		)
		result.Warnings = append(result.Warnings, "the verification email could not be sent")
	}

	if removed {
		saga.Stage = entity.ActivationCompleted
		saga.LastError = ""
	}
	saga.UpdatedAt = srv.now().UnixMilli()
	srv.saveSaga(ctx, saga)
	result.Stage = saga.Stage

	srv.log(ctx).Info("Employee activated",
		slog.String("activation_id", saga.ID),
		slog.String("uid", uid),
		slog.String("shop_id", activated.ShopID),
		slog.String("stage", string(saga.Stage)),
	)

	return result, nil
}

func (srv *activationService) findDefaultAccount(ctx context.Context, email, tempPassword string) (*entity.Employee, error) {
	employees, err := srv.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}

	var match *entity.Employee
	for _, employee := range employees {
		if !employee.MatchesDefaultCredentials(email, tempPassword) {
			continue
		}
		if match != nil {
			srv.log(ctx).Warn("Several default accounts share the same credentials",
				slog.String("first", match.ID),
				slog.String("other", employee.ID),
			)

			continue
		}
		match = employee
	}
	if match == nil {
		return nil, domainerrors.ErrDefaultAccountNotFound
	}

	return match, nil
}

// saveSaga records progress. The activation itself does not depend on it.
func (srv *activationService) saveSaga(ctx context.Context, saga *entity.Activation) {
	saga.UpdatedAt = srv.now().UnixMilli()
	if err := srv.activationRepo.SaveActivation(ctx, saga); err != nil {
		srv.log(ctx).Warn("Failed to save activation progress",
			slog.String("activation_id", saga.ID),
			slog.String("stage", string(saga.Stage)),
			slog.Any("error", err),
		)
	}
}

func (srv *activationService) ReconcilePending(ctx context.Context) (*usecase.ReconcileResult, error) {
	started := srv.now()

	pending, err := srv.activationRepo.ListPendingActivations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list pending activations")
	}

	result := &usecase.ReconcileResult{Examined: len(pending)}
	for _, saga := range pending {
		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		saga.Attempts++
		if err := srv.finish(ctx, saga); err != nil {
			saga.LastError = err.Error()
			result.Failed++
			srv.log(ctx).Warn("Activation still incomplete",
				slog.String("activation_id", saga.ID),
				slog.String("stage", string(saga.Stage)),
				slog.Int("attempts", saga.Attempts),
				slog.Any("error", err),
			)
		} else {
			saga.LastError = ""
			result.Completed++
		}
		srv.saveSaga(ctx, saga)
	}

	if result.Examined > 0 {
		srv.log(ctx).Info("Reconciled pending activations",
			slog.Int("examined", result.Examined),
			slog.Int("completed", result.Completed),
			slog.Int("failed", result.Failed),
			slog.String("took", util.FormatDuration(srv.now().Sub(started))),
		)
	}

	return result, nil
}

// finish advances one saga as far as it can.
func (srv *activationService) finish(ctx context.Context, saga *entity.Activation) error {
	if saga.Stage == entity.ActivationCredentialCreated {
		if saga.Employee == nil {
			return errors.New("activation has no employee record to write")
		}
		if err := srv.employeeRepo.SaveEmployee(ctx, saga.Employee); err != nil {
			return errors.Wrap(err, "write activated employee record")
		}
		saga.Stage = entity.ActivationRecordCreated
	}

	if saga.Stage == entity.ActivationRecordCreated {
		if saga.DefaultEmployeeID != "" && saga.DefaultEmployeeID != saga.UID {
			if err := srv.employeeRepo.DeleteEmployee(ctx, saga.DefaultEmployeeID); err != nil {
				return errors.Wrap(err, "remove default employee record")
			}
		}
		saga.Stage = entity.ActivationCompleted
	}

	return nil
}

func (srv *activationService) ProvisionDefaultAccounts(ctx context.Context, actor entity.Actor, shopID string, count int) ([]*usecase.ProvisionedAccount, error) {
	if !actor.IsAdmin() && (actor.Role != entity.RoleShopOwner || actor.ShopID != shopID) {
		return nil, domainerrors.ErrForbidden.WithDetails("only the shop owner can add employees")
	}
	if count < 1 || count > maxProvisionBatch {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("count must be between 1 and %d", maxProvisionBatch))
	}

	shop, err := srv.shopRepo.FindShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrapf(err, "find shop %s", shopID)
	}
	if shop.Status != entity.ShopStatusApproved {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("shop is not approved")
	}

	employees, err := srv.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}
	existing := 0
	for _, employee := range employees {
		if employee.ShopID == shopID {
			existing++
		}
	}

	now := srv.now().UnixMilli()
	accounts := make([]*usecase.ProvisionedAccount, 0, count)
	for i := range count {
		id, err := uuid.NewV7()
		if err != nil {
			return accounts, errors.Wrap(err, "generate employee id")
		}

		password := rand.Text()[:tempPasswordLength]
		employee := &entity.Employee{
			ID:               id.String(),
			ShopID:           shopID,
			ShopName:         shop.ShopName,
			Email:            defaultEmail(shopID, existing+i+1),
			Role:             string(entity.RoleEmployee),
			TempPassword:     &password,
			IsDefaultAccount: true,
			Status:           entity.EmployeeStatusPending,
			CreatedAt:        now,
		}
		if err := srv.employeeRepo.SaveEmployee(ctx, employee); err != nil {
			return accounts, errors.Wrapf(err, "save default account %d of %d", i+1, count)
		}

		accounts = append(accounts, &usecase.ProvisionedAccount{
			EmployeeID:   employee.ID,
			Email:        employee.Email,
			TempPassword: password,
		})
	}

	srv.log(ctx).Info("Provisioned default employee accounts",
		slog.String("shop_id", shopID),
		slog.Int("count", len(accounts)),
	)

	return accounts, nil
}

func defaultEmail(shopID string, n int) string {
	prefix := strings.ToLower(shopID)
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}

	return fmt.Sprintf("emp%d.%s@%s", n, prefix, defaultAccountDomain)
}
