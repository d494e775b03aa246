package repository

import (
	"context"

	"libris/internal/domain/entity"
)

// BookRepository defines the standard operations for catalog persistence.
type BookRepository interface {
	// List retrieves every book in insertion order.
	List(ctx context.Context) ([]*entity.Book, error)

	// Create persists a new book record and fills in its generated ID.
	Create(ctx context.Context, book *entity.Book) error

	// Delete removes a book by ID. Deleting an absent ID is a no-op success.
	Delete(ctx context.Context, id int64) error
}
