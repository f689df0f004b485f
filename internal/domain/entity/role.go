// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the closed set of profile roles. It gates every authorization decision.
type Role string

const (
	// RoleAdmin manages users and sees aggregate counts.
	RoleAdmin Role = "admin"
	// RoleStudent owns at most one business listing.
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRole converts s to a Role, returning false for anything outside the closed set.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
