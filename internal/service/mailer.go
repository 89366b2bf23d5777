package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

// ResendMailer delivers transactional mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey string, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendVerificationCode(_ context.Context, to string, code string) error {
	return m.send(to, "Verify your email", "Your verification code is "+code)
}

func (m *ResendMailer) SendPasswordResetCode(_ context.Context, to string, code string) error {
	return m.send(to, "Reset your password", "Your password reset code is "+code)
}

func (m *ResendMailer) send(to string, subject string, text string) error {
	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

// JSONMailer is the fallback transport used when no Resend credentials are
// configured: it logs each message instead of delivering it and keeps the
// messages inspectable, which tests rely on.
type JSONMailer struct {
	Logger *logrus.Logger

	mu   sync.Mutex
	sent []SentMail
}

func (m *JSONMailer) SendVerificationCode(_ context.Context, to string, code string) error {
	m.record(to, "Verify your email", "Your verification code is "+code)
	return nil
}

func (m *JSONMailer) SendPasswordResetCode(_ context.Context, to string, code string) error {
	m.record(to, "Reset your password", "Your password reset code is "+code)
	return nil
}

func (m *JSONMailer) record(to string, subject string, body string) {
	m.mu.Lock()
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
	m.mu.Unlock()
	if m.Logger != nil {
		m.Logger.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("mail not delivered: json transport")
	}
}

// Sent returns a copy of every message handed to the transport.
func (m *JSONMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}
