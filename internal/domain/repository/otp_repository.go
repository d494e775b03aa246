package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"
)

// ErrCodeNotFound is returned when no live code exists for an email.
var ErrCodeNotFound = errors.New("one-time code not found")

// OneTimeCodeRepository defines persistence for issued verification codes.
type OneTimeCodeRepository interface {
	// Save persists a freshly issued code, replacing any earlier code for
	// the same email.
	Save(ctx context.Context, code *entity.OneTimeCode) error

	// FindByEmail retrieves the most recently issued code for the email.
	FindByEmail(ctx context.Context, email string) (*entity.OneTimeCode, error)

	// Delete removes a code record once it has been consumed or superseded.
	Delete(ctx context.Context, id int64) error
}
