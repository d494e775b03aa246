// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"libris/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new library member.
// The address fields are optional; everything else is required.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Address   string `json:"address"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// LoginInput defines the data required to log in. Role selects which identity
// table the attempt is resolved against.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"userType"`
}

// --- Output DTOs ---

// RegisterOutput carries the confirmation of a successful registration.
// It never includes the stored record or the password digest.
type RegisterOutput struct {
	Message string `json:"message"`
}

// Identity is the fact returned by a successful login. No session or token
// is issued; the caller receives only who authenticated and as what.
type Identity struct {
	DisplayName string      `json:"firstName"`
	Role        entity.Role `json:"userType"`
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*Identity, error)
}
