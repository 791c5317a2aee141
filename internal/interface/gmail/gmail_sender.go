package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	mailRepo "boardingpass-service/internal/interface/repository"
	"boardingpass-service/pkg/logger"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender delivers emails through the Gmail API instead of SMTP
type GmailSender struct {
	gmailService *gmail.Service
	logger       logger.Logger
}

// NewGmailSender creates a Gmail API mail repository. Callers pass
// option.WithTokenSource for the authorised account.
func NewGmailSender(ctx context.Context, logger logger.Logger, opts ...option.ClientOption) (repository.MailRepository, error) {
	service, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &GmailSender{
		gmailService: service,
		logger:       logger,
	}, nil
}

// Send encodes the email as RFC 822 and posts it to users.messages.send
func (s *GmailSender) Send(ctx context.Context, email *entity.OutgoingEmail) error {
	var raw bytes.Buffer
	if _, err := mailRepo.BuildMailMessage(email).WriteTo(&raw); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw.Bytes()),
	}

	sent, err := s.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		s.logger.Error("Failed to send message via Gmail", "to", email.To, "error", err)
		return fmt.Errorf("failed to send email via Gmail: %w", err)
	}

	s.logger.Debug("Email sent via Gmail", "to", email.To, "messageID", sent.Id)
	return nil
}
