package entity

import "errors"

// Role represents the role of a person in the address book
type Role string

const (
	RolePatient   Role = "PATIENT"
	RoleCaregiver Role = "CAREGIVER"
)

// RoleConstraints is shown to the user when a role value is rejected
const RoleConstraints = "Roles should only be 'PATIENT' or 'CAREGIVER'"

var ErrInvalidRole = errors.New(RoleConstraints)

// ParseRole maps the exact, case-sensitive role name to a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient:
		return RolePatient, nil
	case RoleCaregiver:
		return RoleCaregiver, nil
	default:
		return "", ErrInvalidRole
	}
}

// IsValid checks if r is one of the known roles
func (r Role) IsValid() bool {
	return r == RolePatient || r == RoleCaregiver
}

func (r Role) String() string {
	return string(r)
}
