// Package entity contains the core business objects of the project.
package entity

// Role represents the identity table a login attempt is resolved against.
type Role string

const (
	// RoleUser indicates a regular library member.
	RoleUser Role = "user"
	// RoleAdmin indicates a library administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value. Anything outside the closed
// set {user, admin} must be rejected before any store access.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
