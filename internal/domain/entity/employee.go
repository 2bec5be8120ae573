package entity

// EmployeeStatusActive marks an employee whose login has been activated.
const EmployeeStatusActive = "active"

// EmployeeStatusPending marks a pre-provisioned default account.
const EmployeeStatusPending = "pending"

// Employee is a shop staff record. Default accounts are keyed by an internal id;
// activated accounts are keyed by the auth uid.
type Employee struct {
	ID               string  `json:"id"`
	ShopID           string  `json:"shopId"`
	ShopName         string  `json:"shopName,omitempty"`
	Name             string  `json:"name,omitempty"`
	Email            string  `json:"email"`
	Role             string  `json:"role,omitempty"`
	TempPassword     *string `json:"tempPassword"`
	IsDefaultAccount bool    `json:"isDefaultAccount"`
	Status           string  `json:"status,omitempty"`
	UID              string  `json:"uid,omitempty"`
	CreatedAt        int64   `json:"createdAt,omitempty"`
	ActivatedAt      int64   `json:"activatedAt,omitempty"`
	UpdatedAt        int64   `json:"updatedAt,omitempty"`
}

// MatchesDefaultCredentials reports whether this is an unactivated default
// account with exactly the given email and temporary password.
func (e *Employee) MatchesDefaultCredentials(email, tempPassword string) bool {
	return e.IsDefaultAccount &&
		e.TempPassword != nil &&
		e.Email == email &&
		*e.TempPassword == tempPassword
}

// Activated returns the record to store under the new auth uid.
func (e *Employee) Activated(uid, email string, now int64) *Employee {
	activated := *e
	activated.ID = uid
	activated.UID = uid
	activated.Email = email
	activated.Status = EmployeeStatusActive
	activated.IsDefaultAccount = false
	activated.TempPassword = nil
	activated.ActivatedAt = now
	activated.UpdatedAt = now
	if activated.CreatedAt == 0 {
		activated.CreatedAt = now
	}

	return &activated
}
