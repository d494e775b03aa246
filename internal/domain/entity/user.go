// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered library member.
// The password is never held here in clear form; only its bcrypt digest is stored.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	FirstName    string    // The user's first name, returned as the display name after login.
	LastName     string    // The user's last name.
	Username     string    // The unique login/handle chosen at registration.
	Email        string    // The user's email address; unique across the users table.
	PasswordHash string    // The bcrypt digest of the user's password.
	Address      Address   // Optional postal address fields supplied at registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Address holds the optional postal address fields of a user.
// All fields may be empty; the core never validates them.
type Address struct {
	Line1 string
	Line2 string
	City  string
	State string
	Zip   string
}
