package notification

import (
	"context"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/memberconnect/backend/internal/infrastructure/config"
)

// SMTPSender delivers mail through an SMTP relay using gomail.
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
	logger   *zap.Logger
}

// NewSMTPSender creates an SMTP-based mail sender
func NewSMTPSender(cfg config.MailConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.From,
		logger:   logger,
	}
}

func (s *SMTPSender) Send(_ context.Context, msg Message) bool {
	subject, body, err := RenderTemplate(msg.Template, msg.Context)
	if err != nil {
		s.logger.Error("failed to render notification template",
			zap.String("template", msg.Template),
			zap.Error(err),
		)
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Error("SMTP delivery failed",
			zap.String("template", msg.Template),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("notification sent via SMTP",
		zap.String("template", msg.Template),
		zap.String("to", msg.To),
	)
	return true
}
