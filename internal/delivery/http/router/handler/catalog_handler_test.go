package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"libris/internal/mocks"
	"libris/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogHandler_CreateBook_Created(t *testing.T) {
	uc := new(mocks.MockCatalogUsecase)
	uc.On("CreateBook", mock.Anything, mock.MatchedBy(func(in *usecase.CreateBookInput) bool {
		return in.Title == "Dune" && in.ImgSrc == "d.png"
	})).Return(&usecase.BookOutput{ID: 42, Title: "Dune", IsAvailable: true, ImgSrc: "d.png"}, nil)

	e := newTestEcho()
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))
	e.POST("/books", h.CreateBook)

	rec := performJSON(e, http.MethodPost, "/books",
		`{"title":"Dune","description":"Desert planet epic","is_available":true,"imgsrc":"d.png"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Dune"`)
}

func TestCatalogHandler_CreateBook_NullBodyRejected(t *testing.T) {
	uc := new(mocks.MockCatalogUsecase)

	e := newTestEcho()
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))
	e.POST("/books", h.CreateBook)

	rec := performJSON(e, http.MethodPost, "/books", `null`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "CreateBook", mock.Anything, mock.Anything)
}

func TestCatalogHandler_DeleteBook_AbsentIDStillOK(t *testing.T) {
	uc := new(mocks.MockCatalogUsecase)
	uc.On("DeleteBook", mock.Anything, int64(404)).Return(nil)

	e := newTestEcho()
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))
	e.DELETE("/books/:id", h.DeleteBook)

	rec := performJSON(e, http.MethodDelete, "/books/404", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book deleted successfully!")
}

func TestCatalogHandler_ListBooks_OK(t *testing.T) {
	uc := new(mocks.MockCatalogUsecase)
	uc.On("ListBooks", mock.Anything).Return([]*usecase.BookOutput{
		{ID: 1, Title: "Dune", IsAvailable: true, ImgSrc: "d.png"},
		{ID: 2, Title: "Foundation", IsAvailable: false, ImgSrc: "f.png"},
	}, nil)

	e := newTestEcho()
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))
	e.GET("/books", h.ListBooks)

	rec := performJSON(e, http.MethodGet, "/books", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Foundation")
}
