package usecase

import (
	"context"

	"smartfit/internal/domain/entity"
)

// ActivateEmployeeInput carries the default credentials and the employee's chosen login.
type ActivateEmployeeInput struct {
	DefaultEmail    string `json:"defaultEmail" validate:"required,email"`
	DefaultPassword string `json:"defaultPassword" validate:"required"`
	NewEmail        string `json:"newEmail" validate:"required,email"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// ActivationResult reports a finished activation. Warnings list steps after
// the record was created that failed and were left for reconciliation.
type ActivationResult struct {
	ActivationID string                 `json:"activationId"`
	UID          string                 `json:"uid"`
	Employee     *entity.Employee       `json:"employee"`
	Stage        entity.ActivationStage `json:"stage"`
	Warnings     []string               `json:"warnings,omitempty"`
}

// ReconcileResult counts the outcome of one reconciliation pass.
type ReconcileResult struct {
	Examined  int `json:"examined"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// ProvisionedAccount is a generated default account. The temporary password is
// only returned here.
type ProvisionedAccount struct {
	EmployeeID   string `json:"employeeId"`
	Email        string `json:"email"`
	TempPassword string `json:"tempPassword"`
}

// ActivationUsecase defines employee onboarding.
type ActivationUsecase interface {
	// ActivateEmployee moves a default account to a real login.
	ActivateEmployee(ctx context.Context, input *ActivateEmployeeInput) (*ActivationResult, error)
	// ReconcilePending finishes activations interrupted after the credential was created.
	ReconcilePending(ctx context.Context) (*ReconcileResult, error)
	// ProvisionDefaultAccounts generates count default accounts for a shop.
	ProvisionDefaultAccounts(ctx context.Context, actor entity.Actor, shopID string, count int) ([]*ProvisionedAccount, error)
}
