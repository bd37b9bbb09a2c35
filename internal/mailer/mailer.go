package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Email is a single outbound message.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer dispatches email. Delivery is best-effort; callers decide whether
// a failure matters.
type Mailer interface {
	Send(e Email) error
}

// SendGridMailer delivers through the SendGrid v3 API.
type SendGridMailer struct {
	apiKey string
	from   string
}

func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, from: from}
}

func (m *SendGridMailer) Send(e Email) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail("", m.from),
		e.Subject,
		mail.NewEmail("", e.To),
		e.Text,
		e.HTML,
	)

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogMailer logs instead of sending. Used in dev mode and whenever no API
// key is configured.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) Send(e Email) error {
	m.Logger.Info("email not sent (no mail provider configured)",
		zap.String("to", e.To),
		zap.String("subject", e.Subject))
	return nil
}
