package usecase

import "context"

// UpdateStatusInput defines the data required to move a loan to a new status.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// BorrowedBookOutput is one row of the borrowed-books listing: the raw record
// enriched with its book's display fields.
type BorrowedBookOutput struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"book_id"`
	Status    string `json:"status"`
	BookTitle string `json:"title"`
	BookImg   string `json:"imgsrc"`
}

// LedgerUsecase defines the interface for borrow-ledger operations.
type LedgerUsecase interface {
	// UpdateStatus sets the status of an existing loan. The status must
	// belong to the deployer-configured set; reapplying the current status
	// is a no-op success.
	UpdateStatus(ctx context.Context, id int64, input *UpdateStatusInput) error

	ListBorrowed(ctx context.Context) ([]*BorrowedBookOutput, error)
}
