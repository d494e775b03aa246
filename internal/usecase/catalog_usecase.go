package usecase

import "context"

// CreateBookInput defines the data required to add a catalog record.
type CreateBookInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsAvailable bool   `json:"is_available"`
	ImgSrc      string `json:"imgsrc" validate:"required"`
}

// BookOutput is the wire shape of a catalog record.
type BookOutput struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsAvailable bool   `json:"is_available"`
	ImgSrc      string `json:"imgsrc"`
}

// CatalogUsecase defines the interface for book catalog operations.
type CatalogUsecase interface {
	ListBooks(ctx context.Context) ([]*BookOutput, error)
	CreateBook(ctx context.Context, input *CreateBookInput) (*BookOutput, error)

	// DeleteBook removes a book by id. Deleting an id that is already absent
	// is a success.
	DeleteBook(ctx context.Context, id int64) error
}
