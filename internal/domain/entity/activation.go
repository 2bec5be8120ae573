package entity

// ActivationStage is the progress of an employee activation.
type ActivationStage string

const (
	// ActivationCredentialCreated means the auth credential exists but no employee record does yet.
	ActivationCredentialCreated ActivationStage = "credential_created"
	// ActivationRecordCreated means the activated record exists; the default record may remain.
	ActivationRecordCreated ActivationStage = "record_created"
	// ActivationCompleted means the default record is gone.
	ActivationCompleted ActivationStage = "completed"
)

// IsPending reports whether reconciliation still has work to do.
func (s ActivationStage) IsPending() bool {
	return s == ActivationCredentialCreated || s == ActivationRecordCreated
}

// Activation records an employee activation so interrupted runs can be finished later.
type Activation struct {
	ID                string          `json:"id"`
	DefaultEmployeeID string          `json:"defaultEmployeeId"`
	UID               string          `json:"uid"`
	NewEmail          string          `json:"newEmail"`
	Stage             ActivationStage `json:"stage"`
	Employee          *Employee       `json:"employee"` // Record to be written at employees/{uid}.
	LastError         string          `json:"lastError,omitempty"`
	Attempts          int             `json:"attempts"`
	CreatedAt         int64           `json:"createdAt"`
	UpdatedAt         int64           `json:"updatedAt"`
}
