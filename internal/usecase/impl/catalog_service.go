package impl

import (
	"context"
	"log/slog"
	"strings"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	bookRepo repository.BookRepository
	logger   *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	BookRepo repository.BookRepository
	Logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		bookRepo: params.BookRepo,
		logger:   params.Logger,
	}
}

// ListBooks returns the full catalog in insertion order.
func (srv *catalogService) ListBooks(ctx context.Context) ([]*usecase.BookOutput, error) {
	books, err := srv.bookRepo.List(ctx)
	if err != nil {
		srv.logger.Error("Failed to list books", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list books")
	}

	outputs := make([]*usecase.BookOutput, 0, len(books))
	for _, book := range books {
		outputs = append(outputs, toBookOutput(book))
	}

	return outputs, nil
}

// CreateBook validates and persists a new catalog record, returning it with
// its assigned identifier.
func (srv *catalogService) CreateBook(ctx context.Context, input *usecase.CreateBookInput) (*usecase.BookOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.ImgSrc) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title, description and imgsrc are required")
	}

	book := &entity.Book{
		Title:       input.Title,
		Description: input.Description,
		IsAvailable: input.IsAvailable,
		ImgSrc:      input.ImgSrc,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		srv.logger.Error("Failed to create book", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.logger.Info("Book added to catalog", slog.Int64("id", book.ID), slog.String("title", book.Title))

	return toBookOutput(book), nil
}

func toBookOutput(book *entity.Book) *usecase.BookOutput {
	return &usecase.BookOutput{
		ID:          book.ID,
		Title:       book.Title,
		Description: book.Description,
		IsAvailable: book.IsAvailable,
		ImgSrc:      book.ImgSrc,
	}
}

// DeleteBook removes a book by id. The operation is idempotent: deleting an
// absent id succeeds.
func (srv *catalogService) DeleteBook(ctx context.Context, id int64) error {
	if err := srv.bookRepo.Delete(ctx, id); err != nil {
		srv.logger.Error("Failed to delete book", slog.Int64("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete book")
	}

	srv.logger.Info("Book removed from catalog", slog.Int64("id", id))

	return nil
}
