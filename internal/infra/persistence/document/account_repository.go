package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/domain/repository"
	"smartfit/internal/errors"
	"smartfit/internal/infra/docstore"
)

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	base
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(store docstore.Store, logger *slog.Logger) repository.EmployeeRepository {
	return &employeeRepository{base: base{store: store, logger: logger}}
}

func fillEmployee(employee *entity.Employee, id string) {
	if employee.ID == "" {
		employee.ID = id
	}
}

// ListEmployees lists every employee record, default and activated.
func (repo *employeeRepository) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	return readCollection(ctx, repo.base, pathEmployees, func(key string, e *entity.Employee) {
		fillEmployee(e, key)
	})
}

// FindEmployee returns ErrUserNotFound when absent.
func (repo *employeeRepository) FindEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	if err := validKey(id); err != nil {
		return nil, err
	}

	employee, err := readDoc[entity.Employee](ctx, repo.base, docstore.Join(pathEmployees, id), domainerrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	fillEmployee(employee, id)

	return employee, nil
}

// SaveEmployee writes the full record at employees/{id}.
func (repo *employeeRepository) SaveEmployee(ctx context.Context, employee *entity.Employee) error {
	if err := validKey(employee.ID); err != nil {
		return err
	}

	return repo.store.Create(ctx, docstore.Join(pathEmployees, employee.ID), employee.UID, employee)
}

// DeleteEmployee removes employees/{id}.
func (repo *employeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	if err := validKey(id); err != nil {
		return err
	}

	return repo.store.Delete(ctx, docstore.Join(pathEmployees, id))
}

// activationRepository implements the repository.ActivationRepository interface.
type activationRepository struct {
	base
}

// NewActivationRepository is the constructor for activationRepository.
func NewActivationRepository(store docstore.Store, logger *slog.Logger) repository.ActivationRepository {
	return &activationRepository{base: base{store: store, logger: logger}}
}

// SaveActivation writes the saga record.
func (repo *activationRepository) SaveActivation(ctx context.Context, activation *entity.Activation) error {
	if err := validKey(activation.ID); err != nil {
		return err
	}

	return repo.store.Create(ctx, docstore.Join(pathActivations, activation.ID), activation.UID, activation)
}

// ListPendingActivations lists saga records that still have work to do.
func (repo *activationRepository) ListPendingActivations(ctx context.Context) ([]*entity.Activation, error) {
	all, err := readCollection(ctx, repo.base, pathActivations, func(key string, a *entity.Activation) {
		if a.ID == "" {
			a.ID = key
		}
	})
	if err != nil {
		return nil, err
	}

	pending := make([]*entity.Activation, 0, len(all))
	for _, a := range all {
		if a.Stage.IsPending() {
			pending = append(pending, a)
		}
	}

	return pending, nil
}

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	base
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(store docstore.Store, logger *slog.Logger) repository.AccountRepository {
	return &accountRepository{base: base{store: store, logger: logger}}
}

// IsAdmin reports whether admins/{uid} exists.
func (repo *accountRepository) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if err := validKey(uid); err != nil {
		return false, err
	}

	var raw json.RawMessage
	if err := repo.store.Read(ctx, docstore.Join(pathAdmins, uid), &raw); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// FindCustomer returns ErrUserNotFound when absent.
func (repo *accountRepository) FindCustomer(ctx context.Context, uid string) (*entity.Customer, error) {
	if err := validKey(uid); err != nil {
		return nil, err
	}

	customer, err := readDoc[entity.Customer](ctx, repo.base, docstore.Join(pathCustomers, uid), domainerrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	if customer.ID == "" {
		customer.ID = uid
	}

	return customer, nil
}

// SaveCustomer writes customers/{uid}.
func (repo *accountRepository) SaveCustomer(ctx context.Context, customer *entity.Customer) error {
	if err := validKey(customer.ID); err != nil {
		return err
	}

	return repo.store.Create(ctx, docstore.Join(pathCustomers, customer.ID), customer.ID, customer)
}

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	base
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(store docstore.Store, logger *slog.Logger) repository.CredentialRepository {
	return &credentialRepository{base: base{store: store, logger: logger}}
}

// FindByEmail scans credentials for a case-insensitive email match.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	all, err := readCollection[entity.Credential](ctx, repo.base, pathCredentials, nil)
	if err != nil {
		return nil, err
	}

	for _, c := range all {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

// FindByUID returns ErrUserNotFound when absent.
func (repo *credentialRepository) FindByUID(ctx context.Context, uid string) (*entity.Credential, error) {
	if err := validKey(uid); err != nil {
		return nil, err
	}

	return readDoc[entity.Credential](ctx, repo.base, docstore.Join(pathCredentials, uid), domainerrors.ErrUserNotFound)
}

// SaveCredential writes credentials/{uid}.
func (repo *credentialRepository) SaveCredential(ctx context.Context, credential *entity.Credential) error {
	if err := validKey(credential.UID); err != nil {
		return err
	}

	return repo.store.Create(ctx, docstore.Join(pathCredentials, credential.UID), credential.UID, credential)
}

// DeleteCredential removes credentials/{uid}.
func (repo *credentialRepository) DeleteCredential(ctx context.Context, uid string) error {
	if err := validKey(uid); err != nil {
		return err
	}

	return repo.store.Delete(ctx, docstore.Join(pathCredentials, uid))
}
