package model

import "strings"

// Role is the closed set of principal roles. Raw role strings are
// normalized exactly once, at the session boundary; downstream code
// compares Role values only.
type Role string

const (
	RoleUnknown    Role = ""
	RoleUser       Role = "user"
	RoleManager    Role = "manager"
	RoleAccountant Role = "accountant"
)

// ParseRole normalizes a raw role string. Anything outside the closed
// set maps to RoleUnknown.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "user":
		return RoleUser
	case "manager":
		return RoleManager
	case "accountant":
		return RoleAccountant
	default:
		return RoleUnknown
	}
}

// Known reports whether the role belongs to the closed set.
func (r Role) Known() bool {
	return r == RoleUser || r == RoleManager || r == RoleAccountant
}

func (r Role) String() string {
	return string(r)
}
