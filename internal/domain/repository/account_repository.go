package repository

import (
	"context"

	"smartfit/internal/domain/entity"
)

// EmployeeRepository persists employee records under employees/{id}.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)
	// FindEmployee returns ErrUserNotFound when absent.
	FindEmployee(ctx context.Context, id string) (*entity.Employee, error)
	SaveEmployee(ctx context.Context, employee *entity.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// ActivationRepository persists activation saga records under employeeActivations/{id}.
type ActivationRepository interface {
	SaveActivation(ctx context.Context, activation *entity.Activation) error
	ListPendingActivations(ctx context.Context) ([]*entity.Activation, error)
}

// AccountRepository answers role lookups and stores customer profiles.
type AccountRepository interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
	// FindCustomer returns ErrUserNotFound when absent.
	FindCustomer(ctx context.Context, uid string) (*entity.Customer, error)
	SaveCustomer(ctx context.Context, customer *entity.Customer) error
}

// CredentialRepository stores password hashes for the local identity provider
// under credentials/{uid}.
type CredentialRepository interface {
	// FindByEmail returns ErrUserNotFound when no credential uses email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	FindByUID(ctx context.Context, uid string) (*entity.Credential, error)
	SaveCredential(ctx context.Context, credential *entity.Credential) error
	DeleteCredential(ctx context.Context, uid string) error
}
