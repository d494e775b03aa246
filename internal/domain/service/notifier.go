package service

import "context"

// Notifier defines the capability of delivering a message to an external
// address. The OTP service depends on this interface, not on a transport.
type Notifier interface {
	// Send delivers a message with the given subject and body to the address.
	Send(ctx context.Context, to, subject, body string) error
}
