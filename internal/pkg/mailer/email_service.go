// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ContactMessage carries an already-sanitized contact submission. Name,
// Email and Message are interpolated into an HTML body, so the caller must
// escape them first; ReplyTo is the submitter's raw address.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
	ReplyTo string
}

// ProviderAck is the upstream provider's acknowledgment payload, returned
// to the caller verbatim on success.
type ProviderAck map[string]interface{}

type IEmailService interface {
	SendContactMessage(ctx context.Context, msg *ContactMessage) (ProviderAck, error)
}

type smtpEmailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	toEmail     string
}

// NewSMTPEmailService sends contact mail through an SMTP relay. toEmail is
// the owner inbox every submission lands in.
func NewSMTPEmailService(host string, port int, username, password, senderEmail, senderName, toEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &smtpEmailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		toEmail:     toEmail,
	}
}

func (s *smtpEmailService) SendContactMessage(_ context.Context, msg *ContactMessage) (ProviderAck, error) {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", s.toEmail)
	m.SetHeader("Reply-To", msg.ReplyTo)
	m.SetHeader("Subject", fmt.Sprintf("Portfolio contact from %s", msg.Name))
	m.SetBody("text/html", BuildContactBody(msg))

	if err := s.dialer.DialAndSend(m); err != nil {
		return nil, fmt.Errorf("smtp send failed: %w", err)
	}

	return ProviderAck{"status": "sent", "provider": "smtp"}, nil
}

// BuildContactBody renders the fixed HTML template shared by both mail
// providers. Fields must already be HTML-escaped.
func BuildContactBody(msg *ContactMessage) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact form submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		</div>
	`, msg.Name, msg.Email, msg.Message)
}
