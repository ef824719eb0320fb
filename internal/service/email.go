package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendChangeRequestDecision(ctx context.Context, toEmail, toName, carName string, approved bool) error {
	subject := "Your car change request was rejected"
	body := fmt.Sprintf("Hello %s,\n\nYour request to change your rental to %s was rejected. Your booking keeps its current car.\n\nThe DriveSync Team", toName, carName)
	if approved {
		subject = "Your car change request was approved"
		body = fmt.Sprintf("Hello %s,\n\nYour request to change your rental to %s was approved. Your booking now uses the new car.\n\nThe DriveSync Team", toName, carName)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// noopEmailService is used when no SendGrid key is configured.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendChangeRequestDecision(ctx context.Context, toEmail, toName, carName string, approved bool) error {
	return nil
}
