package repository

import (
	"context"
	"fmt"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/pkg/logger"

	"gopkg.in/gomail.v2"
)

// Dialer is the part of gomail.Dialer used to deliver messages
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailRepository sends emails through an SMTP server
type SMTPMailRepository struct {
	dialer Dialer
	logger logger.Logger
}

// NewSMTPMailRepository creates a mail repository for the given SMTP account.
// STARTTLS is used when the server offers it.
func NewSMTPMailRepository(host string, port int, username, password string, logger logger.Logger) repository.MailRepository {
	return NewSMTPMailRepositoryWithDialer(gomail.NewDialer(host, port, username, password), logger)
}

// NewSMTPMailRepositoryWithDialer creates a mail repository over an existing dialer
func NewSMTPMailRepositoryWithDialer(dialer Dialer, logger logger.Logger) *SMTPMailRepository {
	return &SMTPMailRepository{
		dialer: dialer,
		logger: logger,
	}
}

// Send delivers the email. The SMTP session is not cancellable once dialed.
func (r *SMTPMailRepository) Send(ctx context.Context, email *entity.OutgoingEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.dialer.DialAndSend(BuildMailMessage(email)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	r.logger.Debug("Email sent via SMTP", "to", email.To, "subject", email.Subject)
	return nil
}
