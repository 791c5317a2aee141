package usecase

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/templates"
)

const (
	DefaultSenderName    = "Boarding System"
	defaultPassengerName = "Utas"
)

// PassNotifier emails a boarding pass to a passenger
type PassNotifier interface {
	Send(ctx context.Context, to string, pass *entity.BoardingPass, from, dest entity.Airport) error
}

// Notifier renders the boarding pass email and hands it to the mail transport
type Notifier struct {
	mailRepo    repository.MailRepository
	fromName    string
	fromAddress string
	now         func() time.Time
}

// NewNotifier creates a notifier sending as "fromName" <fromAddress>
func NewNotifier(mailRepo repository.MailRepository, fromName, fromAddress string) *Notifier {
	if fromName == "" {
		fromName = DefaultSenderName
	}
	return &Notifier{
		mailRepo:    mailRepo,
		fromName:    fromName,
		fromAddress: fromAddress,
		now:         time.Now,
	}
}

// Send renders and dispatches the email. Transport errors are returned as-is, without retry.
func (n *Notifier) Send(ctx context.Context, to string, pass *entity.BoardingPass, from, dest entity.Airport) error {
	email, err := n.Compose(to, pass, from, dest)
	if err != nil {
		return err
	}
	return n.mailRepo.Send(ctx, email)
}

// Compose builds the outgoing email without sending it
func (n *Notifier) Compose(to string, pass *entity.BoardingPass, from, dest entity.Airport) (*entity.OutgoingEmail, error) {
	name := pass.PassengerName
	if name == "" {
		name = defaultPassengerName
	}

	body, err := templates.RenderBoardingPassEmail(templates.BoardingPassEmail{
		PassengerName: name,
		Route:         RouteDescription(from, dest, pass.ConnectionCode()),
		PassID:        pass.ID,
		FlightNumber:  pass.FlightNumber,
		Seat:          pass.Seat,
		QR:            pass.QR,
		Barcode:       template.URL(pass.Barcode),
		Year:          n.now().Year(),
	})
	if err != nil {
		return nil, err
	}

	return &entity.OutgoingEmail{
		FromName:    n.fromName,
		FromAddress: n.fromAddress,
		To:          to,
		Subject:     Subject(from, dest, pass.ConnectionCode()),
		HTMLBody:    body,
	}, nil
}

// RouteDescription formats "Name (CODE) → Name (CODE)" with an optional " via CODE"
func RouteDescription(from, dest entity.Airport, connection string) string {
	return fmt.Sprintf("%s (%s) → %s (%s)%s", from.Name, from.Code, dest.Name, dest.Code, via(connection))
}

// Subject is the email subject for a route
func Subject(from, dest entity.Airport, connection string) string {
	return fmt.Sprintf("Boarding Pass - %s → %s%s", from.Code, dest.Code, via(connection))
}

func via(connection string) string {
	if connection == "" {
		return ""
	}
	return " via " + connection
}
