package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"
)

// ErrBorrowRecordNotFound is returned when a borrow record is not found.
var ErrBorrowRecordNotFound = errors.New("borrow record not found")

// BorrowRepository defines the operations over the borrow ledger.
type BorrowRepository interface {
	// UpdateStatus sets the status of an existing borrow record.
	// Returns ErrBorrowRecordNotFound when the ID does not exist.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// ListWithBooks retrieves every borrow record joined with its book's
	// title and image reference, in insertion order.
	ListWithBooks(ctx context.Context) ([]*entity.BorrowedBook, error)
}
