package impl

import (
	"context"
	"log/slog"

	"libris/config"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	borrowRepo repository.BorrowRepository
	statuses   entity.StatusSet
	logger     *slog.Logger
}

// LedgerServiceParams holds dependencies for ledgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	BorrowRepo repository.BorrowRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		borrowRepo: params.BorrowRepo,
		statuses:   params.Config.StatusSet(),
		logger:     params.Logger,
	}
}

// UpdateStatus moves an existing loan to a new status. The status must belong
// to the configured set; setting the status a record already has succeeds.
func (srv *ledgerService) UpdateStatus(ctx context.Context, id int64, input *usecase.UpdateStatusInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}
	if !srv.statuses.Contains(input.Status) {
		srv.logger.Warn("Rejected unknown borrow status", slog.String("status", input.Status))

		return domainerrors.ErrInvalidBorrowStatus.WithDetails("status must be one of the configured loan statuses")
	}

	err := srv.borrowRepo.UpdateStatus(ctx, id, input.Status)
	if errors.Is(err, repository.ErrBorrowRecordNotFound) {
		return domainerrors.ErrBorrowRecordNotFound
	}
	if err != nil {
		srv.logger.Error("Failed to update borrow status", slog.Int64("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update borrow status")
	}

	srv.logger.Info("Borrow status updated", slog.Int64("id", id), slog.String("status", input.Status))

	return nil
}

// ListBorrowed returns every loan joined with its book's display fields.
func (srv *ledgerService) ListBorrowed(ctx context.Context) ([]*usecase.BorrowedBookOutput, error) {
	records, err := srv.borrowRepo.ListWithBooks(ctx)
	if err != nil {
		srv.logger.Error("Failed to list borrowed books", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list borrowed books")
	}

	outputs := make([]*usecase.BorrowedBookOutput, 0, len(records))
	for _, rec := range records {
		outputs = append(outputs, &usecase.BorrowedBookOutput{
			ID:        rec.Record.ID,
			BookID:    rec.Record.BookID,
			Status:    rec.Record.Status,
			BookTitle: rec.BookTitle,
			BookImg:   rec.BookImg,
		})
	}

	return outputs, nil
}
