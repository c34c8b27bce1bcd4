package user

import (
	"bookstore/internal/pkg/errs"
)

// Role determines which operations an account may perform.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Staff
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Customer: "USER",
		Staff:    "STAFF",
		Admin:    "ADMIN",
	}
}

func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"USER":  Customer,
		"STAFF": Staff,
		"ADMIN": Admin,
	}
}

// RoleFromString parses a persisted role label.
func RoleFromString(value string) (Role, error) {
	role, ok := getValidRoleStrings()[value]
	if !ok {
		return UnknownRole, errs.NewValueIsInvalidError("role")
	}
	return role, nil
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

func (r Role) String() string {
	return getRoleStrings()[r]
}

// IsStaff reports whether the role may access staff operations.
func (r Role) IsStaff() bool {
	return r == Staff || r == Admin
}
