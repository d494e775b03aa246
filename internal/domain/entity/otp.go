package entity

import "time"

// OneTimeCode represents an issued email verification code.
// Only the SHA-256 digest of the 6-digit code is stored; the plain code exists
// solely in the email handed to the notifier.
type OneTimeCode struct {
	ID        int64     // The auto-assigned identifier of the code record.
	Email     string    // The address the code was sent to.
	CodeHash  []byte    // SHA-256 digest of the 6-digit code.
	IssuedAt  time.Time // Timestamp of when the code was generated.
	ExpiresAt time.Time // The moment after which the code is no longer accepted.
}

// Expired reports whether the code is past its expiry at the given time.
func (c *OneTimeCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
