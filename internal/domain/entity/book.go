package entity

import "time"

// Book represents a single catalog record.
// IsAvailable is an advisory flag set by the catalog caller; the borrow ledger
// remains the source of truth for whether a copy is actually out.
type Book struct {
	ID          int64     // The auto-assigned identifier of the book.
	Title       string    // The book's title.
	Description string    // A free-text description of the book.
	IsAvailable bool      // Advisory availability flag shown in the catalog.
	ImgSrc      string    // Reference to the book's cover image.
	CreatedAt   time.Time // Timestamp of when this record was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this record.
}
