// Package entity contains the core business objects of the project.
package entity

// Role represents the single role an account holds in the system.
type Role string

const (
	// RoleBuyer indicates a regular buying account.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates an account allowed to upload listings.
	RoleSeller Role = "seller"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// AccountStatus represents the standing of an account.
type AccountStatus string

const (
	// AccountStatusActive marks an account in good standing.
	AccountStatusActive AccountStatus = "active"
	// AccountStatusInactive marks a deactivated account.
	AccountStatusInactive AccountStatus = "inactive"
	// AccountStatusBanned marks a banned account.
	AccountStatusBanned AccountStatus = "banned"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusBanned:
		return true
	default:
		return false
	}
}
