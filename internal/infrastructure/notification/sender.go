package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/infrastructure/config"
)

// Message is a templated email to deliver. Context holds the template
// variables; ReplyTo is optional and lets recipients answer the person
// who triggered the notification rather than the system address.
type Message struct {
	To       string
	Template string
	Context  map[string]string
	ReplyTo  string
}

// Sender delivers notification emails. Send reports whether delivery
// succeeded; callers treat notification failures as non-fatal, so Send
// logs its own errors instead of returning them.
type Sender interface {
	Send(ctx context.Context, msg Message) bool
}

// NewSender builds a Sender according to the configured mail mode.
// When mail is disabled it returns a sender that drops everything.
func NewSender(cfg config.MailConfig, logger *zap.Logger) (Sender, error) {
	if !cfg.Enabled {
		logger.Warn("mail delivery disabled, notifications will be dropped")
		return &NoopSender{logger: logger}, nil
	}

	switch cfg.Mode {
	case "api":
		return NewAPISender(cfg, logger), nil
	case "smtp":
		return NewSMTPSender(cfg, logger), nil
	case "api_with_fallback":
		return &FallbackSender{
			primary:   NewAPISender(cfg, logger),
			secondary: NewSMTPSender(cfg, logger),
			logger:    logger,
		}, nil
	default:
		return nil, fmt.Errorf("unknown mail mode: %s", cfg.Mode)
	}
}

// FallbackSender tries a primary sender and falls back to a secondary
// when the primary fails.
type FallbackSender struct {
	primary   Sender
	secondary Sender
	logger    *zap.Logger
}

func (s *FallbackSender) Send(ctx context.Context, msg Message) bool {
	if s.primary.Send(ctx, msg) {
		return true
	}

	s.logger.Warn("primary mail delivery failed, trying fallback",
		zap.String("template", msg.Template),
	)
	return s.secondary.Send(ctx, msg)
}

// NoopSender drops every message. Used when mail is disabled.
type NoopSender struct {
	logger *zap.Logger
}

func (s *NoopSender) Send(_ context.Context, msg Message) bool {
	s.logger.Debug("dropping notification, mail disabled",
		zap.String("template", msg.Template),
		zap.String("to", msg.To),
	)
	return false
}
