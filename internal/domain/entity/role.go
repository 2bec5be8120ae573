// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a shopper.
	RoleCustomer Role = "customer"
	// RoleShopOwner indicates the owner of a registered shop.
	RoleShopOwner Role = "shopowner"
	// RoleEmployee indicates an activated shop employee.
	RoleEmployee Role = "employee"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShopOwner, RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsShopStaff reports whether the role acts on behalf of a shop.
func (r Role) IsShopStaff() bool {
	return r == RoleShopOwner || r == RoleEmployee
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Actor is the authenticated principal performing an operation.
type Actor struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	ShopID string `json:"shopId,omitempty"` // Set for employees and owners of approved shops.
	Name   string `json:"name,omitempty"`
}

// Label is the name used in generated status messages.
func (a Actor) Label() string {
	if a.Role == RoleAdmin {
		return "admin"
	}
	if a.Name != "" {
		return a.Name
	}

	switch a.Role {
	case RoleShopOwner:
		return "shop owner"
	case RoleEmployee:
		return "employee"
	default:
		return "customer"
	}
}

// IsAdmin reports whether the actor is a platform administrator.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
