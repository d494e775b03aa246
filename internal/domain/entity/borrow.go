package entity

import (
	"slices"
	"time"
)

// Default borrow statuses used when the deployer configures no custom set.
const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
	StatusOverdue  = "overdue"
)

// BorrowRecord represents a single loan event linking a book to a status.
// Records are created when a loan begins (outside this service) and mutated
// only through the status-update operation.
type BorrowRecord struct {
	ID        int64     // The auto-assigned identifier of the loan.
	BookID    int64     // The borrowed book; always references an existing Book.
	Status    string    // The current loan status, from the deployer-configured set.
	CreatedAt time.Time // Timestamp of when the loan began.
	UpdatedAt time.Time // Timestamp of the last status change.
}

// BorrowedBook is a read-only projection of a borrow record joined with
// display fields of its book.
type BorrowedBook struct {
	Record    BorrowRecord
	BookTitle string
	BookImg   string
}

// StatusSet is the closed set of loan statuses a deployment accepts.
type StatusSet []string

// DefaultStatusSet returns the statuses accepted when none are configured.
func DefaultStatusSet() StatusSet {
	return StatusSet{StatusBorrowed, StatusReturned, StatusOverdue}
}

// Contains reports whether status belongs to the set.
func (s StatusSet) Contains(status string) bool {
	return slices.Contains(s, status)
}
