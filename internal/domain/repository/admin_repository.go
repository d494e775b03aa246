package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines read access to administrator records.
// Admins are provisioned out-of-band, so there is no Create here.
type AdminRepository interface {
	// FindByEmail retrieves a single admin by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
