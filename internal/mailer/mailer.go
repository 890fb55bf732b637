package mailer

import (
	"context"
	"fmt"

	"reviewhub/internal/config"
)

// Mailer is the outbound email channel consumed by signup.
// Implementations report delivery failure synchronously; callers decide
// what to roll back.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New selects a Mailer implementation from config.
func New(cfg *config.Config) (Mailer, error) {
	switch cfg.MailDriver {
	case "smtp":
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailSender, cfg.SMTPPassword), nil
	case "sendgrid":
		return NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailSender), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.MailDriver)
	}
}
