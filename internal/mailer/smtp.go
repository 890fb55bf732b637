package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer sends plain-text mail over an authenticated SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	sender   string
	password string
}

func NewSMTPMailer(host, port, sender, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s\r\n", m.sender)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += body

	auth := smtp.PlainAuth("", m.sender, m.password, m.host)

	if err := smtp.SendMail(m.host+":"+m.port, auth, m.sender, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
