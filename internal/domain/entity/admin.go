package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a library administrator account.
// Admins are provisioned out-of-band and are read-only to this service.
type Admin struct {
	ID           uuid.UUID // The unique identifier for the admin.
	FirstName    string    // The admin's first name, returned as the display name after login.
	Email        string    // The admin's email address; unique across the admins table.
	PasswordHash string    // The bcrypt digest of the admin's password.
	CreatedAt    time.Time // Timestamp of when this account was provisioned.
}
