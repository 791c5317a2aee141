package repository

import (
	"context"

	"boardingpass-service/internal/domain/entity"
)

// MailRepository dispatches rendered emails through a mail transport
type MailRepository interface {
	Send(ctx context.Context, email *entity.OutgoingEmail) error
}
