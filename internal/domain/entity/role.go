package entity

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. Roles are stored and carried in
// tokens in canonical lowercase form; ParseRole is the only way a
// client-supplied string becomes a Role.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// ParseRole normalizes and validates a role string. Unknown roles are
// rejected here rather than silently skipped downstream.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case RolePatient, RoleDoctor, RoleStaff, RoleAdmin:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Equals compares roles case-insensitively to tolerate unnormalized
// legacy records.
func (r Role) Equals(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// HasProfile reports whether accounts with this role own a role-profile row.
// Admin accounts are identity-only.
func (r Role) HasProfile() bool {
	return r == RolePatient || r == RoleDoctor || r == RoleStaff
}

func (r Role) String() string {
	return string(r)
}
