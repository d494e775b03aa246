package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LedgerHandler holds dependencies for the borrow-ledger handlers.
type LedgerHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler, injected by Fx.
func NewLedgerHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateStatus moves a loan to a new status.
func (h *LedgerHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Borrow record id must be a number")
	}

	var input *usecase.UpdateStatusInput
	// A body of literal JSON null binds without error and leaves input nil.
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated successfully!")
}

// ListBorrowed returns every loan joined with its book's display fields.
func (h *LedgerHandler) ListBorrowed(c echo.Context) error {
	rows, err := h.uc.ListBorrowed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}
