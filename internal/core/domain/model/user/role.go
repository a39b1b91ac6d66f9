package user

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Role represents the capability of an authenticated user. Roles form a
// small closed set; the four staff roles carry elevated, administrative
// capabilities.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Client is an ordering customer.
	Client

	// Restaurateur owns a restaurant and accepts, declines, and prepares
	// the orders placed on it.
	Restaurateur

	// Deliverer is a courier transporting ready orders.
	Deliverer

	// Developer is a staff role.
	Developer

	// Commercial is a staff role.
	Commercial

	// Technician is a staff role.
	Technician

	// Admin is a staff role.
	Admin
)

func getRoleNames() map[Role]string {
	return map[Role]string{
		Client:       "client",
		Restaurateur: "restaurateur",
		Deliverer:    "deliverer",
		Developer:    "developer",
		Commercial:   "commercial",
		Technician:   "technician",
		Admin:        "admin",
	}
}

// RoleFromString parses a role from its wire name. Returns an error for
// anything outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleNames() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value belongs to the closed set.
func (r Role) Validate() error {
	if _, ok := getRoleNames()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. This is the form used in
// persistence and over HTTP. Implements fmt.Stringer.
func (r Role) String() string {
	if name, ok := getRoleNames()[r]; ok {
		return name
	}
	return "unknown"
}

// IsStaff reports whether the role carries elevated administrative
// capability (developer, commercial, technician, admin). Staff see every
// order and may apply administrative overrides.
func (r Role) IsStaff() bool {
	switch r {
	case Developer, Commercial, Technician, Admin:
		return true
	case UnknownRole, Client, Restaurateur, Deliverer:
		return false
	default:
		return false
	}
}
