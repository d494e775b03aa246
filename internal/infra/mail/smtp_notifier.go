// Package mail implements the domain Notifier capability over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"libris/config"
	"libris/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpNotifier sends messages through a plain-auth SMTP endpoint.
type smtpNotifier struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPNotifier builds a Notifier from the configured SMTP endpoint.
func NewSMTPNotifier(cfg *config.Config) (service.Notifier, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is required")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpNotifier{
		addr: net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		auth: auth,
		from: cfg.SMTP.From,
	}, nil
}

// Send delivers one message. smtp.SendMail is a single blocking round trip;
// cancellation is checked before dialing since net/smtp does not take a context.
func (n *smtpNotifier) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send cancelled")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", n.from, to, subject, body)

	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
