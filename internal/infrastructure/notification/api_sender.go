package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/infrastructure/config"
)

// APISender delivers mail through a Mailgun-compatible HTTP API.
type APISender struct {
	baseURL    string
	domain     string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPISender creates an API-based mail sender
func NewAPISender(cfg config.MailConfig, logger *zap.Logger) *APISender {
	return &APISender{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		domain:  cfg.APIDomain,
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (s *APISender) Send(ctx context.Context, msg Message) bool {
	subject, body, err := RenderTemplate(msg.Template, msg.Context)
	if err != nil {
		s.logger.Error("failed to render notification template",
			zap.String("template", msg.Template),
			zap.Error(err),
		)
		return false
	}

	form := url.Values{}
	form.Set("from", s.from)
	form.Set("to", msg.To)
	form.Set("subject", subject)
	form.Set("text", body)
	if msg.ReplyTo != "" {
		form.Set("h:Reply-To", msg.ReplyTo)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", s.baseURL, s.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		s.logger.Error("failed to build mail API request", zap.Error(err))
		return false
	}
	req.SetBasicAuth("api", s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("mail API request failed",
			zap.String("template", msg.Template),
			zap.Error(err),
		)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.logger.Error("mail API returned error status",
			zap.String("template", msg.Template),
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(respBody)),
		)
		return false
	}

	s.logger.Info("notification sent via API",
		zap.String("template", msg.Template),
		zap.String("to", msg.To),
	)
	return true
}
