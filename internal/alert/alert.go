package alert

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/errors"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/jordan-wright/email"
)

//go:generate mockgen -source=alert.go -destination=mock/alert_mock.go -package=alert_mock

// Sender delivers operator alerts raised by batch processing.
type Sender interface {
	Send(ctx context.Context, subject string, body string) error
}

// Mailer sends alerts over SMTP.
type Mailer struct {
	cfg    config.AlertConfig
	logger logger.Interface
}

// NewMailer creates a new Mailer.
func NewMailer(cfg config.AlertConfig, logger logger.Interface) *Mailer {
	return &Mailer{
		cfg:    cfg,
		logger: logger,
	}
}

// Send delivers one alert mail to the configured recipients.
func (m *Mailer) Send(ctx context.Context, subject string, body string) error {
	if len(m.cfg.To) == 0 {
		m.logger.WarnContext(ctx, "Alert raised with no recipients configured", logger.Field{
			Key:   "subject",
			Value: subject,
		})
		return nil
	}

	msg := email.NewEmail()
	msg.From = m.cfg.From
	msg.To = m.cfg.To
	msg.Subject = subject
	msg.Text = []byte(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	}

	if err := msg.Send(addr, auth); err != nil {
		return errors.TracerFromError(err)
	}

	m.logger.InfoContext(ctx, "Alert mail sent", logger.Field{
		Key:   "subject",
		Value: subject,
	}, logger.Field{
		Key:   "recipients",
		Value: len(m.cfg.To),
	})

	return nil
}
