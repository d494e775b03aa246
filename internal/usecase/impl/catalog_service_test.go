package impl

import (
	"context"
	"log/slog"
	"testing"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/mocks"
	"libris/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(bookRepo *mocks.MockBookRepository) usecase.CatalogUsecase {
	return &catalogService{
		bookRepo: bookRepo,
		logger:   slog.New(slog.DiscardHandler),
	}
}

func TestCatalogService_CreateBook_AssignsID(t *testing.T) {
	bookRepo := new(mocks.MockBookRepository)
	srv := newTestCatalogService(bookRepo)

	bookRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Book).ID = 42
	}).Return(nil)

	book, err := srv.CreateBook(context.Background(), &usecase.CreateBookInput{
		Title:       "Dune",
		Description: "Desert planet epic",
		IsAvailable: true,
		ImgSrc:      "d.png",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.True(t, book.IsAvailable)
}

func TestCatalogService_CreateBook_MissingFieldTouchesNothing(t *testing.T) {
	bookRepo := new(mocks.MockBookRepository)
	srv := newTestCatalogService(bookRepo)

	book, err := srv.CreateBook(context.Background(), &usecase.CreateBookInput{
		Title:  "Dune",
		ImgSrc: "d.png",
	})

	require.Error(t, err)
	assert.Nil(t, book)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_ListBooks_PreservesOrder(t *testing.T) {
	bookRepo := new(mocks.MockBookRepository)
	srv := newTestCatalogService(bookRepo)

	bookRepo.On("List", mock.Anything).Return([]*entity.Book{
		{ID: 1, Title: "Dune"},
		{ID: 2, Title: "Foundation"},
	}, nil)

	books, err := srv.ListBooks(context.Background())

	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Foundation", books[1].Title)
}

func TestCatalogService_DeleteBook_AbsentIDSucceeds(t *testing.T) {
	bookRepo := new(mocks.MockBookRepository)
	srv := newTestCatalogService(bookRepo)

	// The store reports no-op deletes as success, so a second delete of the
	// same id goes through unchanged.
	bookRepo.On("Delete", mock.Anything, int64(42)).Return(nil).Twice()

	require.NoError(t, srv.DeleteBook(context.Background(), 42))
	require.NoError(t, srv.DeleteBook(context.Background(), 42))
	bookRepo.AssertExpectations(t)
}
