package email

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// ErrNotConfigured is returned by Send when no API key is set.
var ErrNotConfigured = errors.New("sendgrid api key not configured")

// Service sends notifications through the SendGrid API.
type Service struct {
	apiKey string
}

// NewService creates a sender. An empty API key is allowed; Send then fails
// with ErrNotConfigured and callers fall back to simulation.
func NewService(apiKey string) *Service {
	return &Service{apiKey: apiKey}
}

// Configured reports whether an API key is available.
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// Send delivers a rendered payload through SendGrid.
func (s *Service) Send(ctx context.Context, p Payload) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	from := mail.NewEmail(p.From.Name, p.From.Email)
	to := mail.NewEmail("", p.To)
	message := mail.NewSingleEmail(from, p.Subject, to, p.Text, p.HTML)
	if p.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", p.ReplyTo))
	}

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// Simulate writes the notification to the log instead of sending it. It is
// the terminal delivery fallback and never fails.
func Simulate(p Payload) {
	log.Println("[Email] EMAIL NOTIFICATION SIMULATION")
	log.Println("[Email] ================================")
	log.Printf("[Email] To: %s", p.To)
	log.Printf("[Email] From: %s <%s>", p.From.Name, p.From.Email)
	log.Printf("[Email] Subject: %s", p.Subject)
	log.Println("[Email] --- EMAIL CONTENT ---")
	log.Println(p.Text)
	log.Println("[Email] ================================")
	log.Println("[Email] Email simulation completed")
}
