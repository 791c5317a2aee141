package repository

import (
	"boardingpass-service/internal/domain/entity"

	"gopkg.in/gomail.v2"
)

// BuildMailMessage converts an outgoing email into a gomail message
func BuildMailMessage(email *entity.OutgoingEmail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(email.FromAddress, email.FromName))
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)
	return m
}
