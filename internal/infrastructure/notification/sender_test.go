package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/infrastructure/config"
)

func TestRenderTemplate(t *testing.T) {
	t.Run("renders known template with context", func(t *testing.T) {
		subject, body, err := RenderTemplate(TemplatePasswordReset, map[string]string{
			"first_name": "Ada",
			"reset_url":  "https://app.example.org/reset-password?token=abc",
			"ttl":        "1 hour",
		})
		require.NoError(t, err)
		assert.Equal(t, "Reset your password", subject)
		assert.Contains(t, body, "Hi Ada,")
		assert.Contains(t, body, "https://app.example.org/reset-password?token=abc")
		assert.Contains(t, body, "expires in 1 hour")
	})

	t.Run("fails for unknown template", func(t *testing.T) {
		_, _, err := RenderTemplate("no_such_template", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown email template")
	})
}

func TestAPISender_Send(t *testing.T) {
	t.Run("posts form to messages endpoint", func(t *testing.T) {
		var gotPath string
		var gotForm map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, r.ParseForm())
			gotForm = map[string]string{
				"from":       r.PostFormValue("from"),
				"to":         r.PostFormValue("to"),
				"subject":    r.PostFormValue("subject"),
				"h:Reply-To": r.PostFormValue("h:Reply-To"),
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		sender := NewAPISender(config.MailConfig{
			APIBaseURL: server.URL,
			APIDomain:  "mg.example.org",
			APIKey:     "key-test",
			From:       "no-reply@example.org",
		}, zap.NewNop())

		ok := sender.Send(context.Background(), Message{
			To:       "expert@example.org",
			Template: TemplateExpertNewMessage,
			Context: map[string]string{
				"expert_name":    "Grace",
				"seeker_name":    "Ada",
				"contact_method": "Email",
				"message":        "Hello",
			},
			ReplyTo: "ada@example.org",
		})

		assert.True(t, ok)
		assert.Equal(t, "/mg.example.org/messages", gotPath)
		assert.Equal(t, "no-reply@example.org", gotForm["from"])
		assert.Equal(t, "expert@example.org", gotForm["to"])
		assert.Equal(t, "Someone wants to connect with you", gotForm["subject"])
		assert.Equal(t, "ada@example.org", gotForm["h:Reply-To"])
	})

	t.Run("reports failure on non-2xx response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		sender := NewAPISender(config.MailConfig{
			APIBaseURL: server.URL,
			APIDomain:  "mg.example.org",
			APIKey:     "bad-key",
			From:       "no-reply@example.org",
		}, zap.NewNop())

		ok := sender.Send(context.Background(), Message{
			To:       "user@example.org",
			Template: TemplateRegistrationReceived,
			Context:  map[string]string{"first_name": "Ada"},
		})
		assert.False(t, ok)
	})
}

type stubSender struct {
	result bool
	calls  int
}

func (s *stubSender) Send(context.Context, Message) bool {
	s.calls++
	return s.result
}

func TestFallbackSender(t *testing.T) {
	t.Run("uses primary when it succeeds", func(t *testing.T) {
		primary := &stubSender{result: true}
		secondary := &stubSender{result: true}
		sender := &FallbackSender{primary: primary, secondary: secondary, logger: zap.NewNop()}

		assert.True(t, sender.Send(context.Background(), Message{Template: TemplatePasswordReset}))
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, secondary.calls)
	})

	t.Run("falls back when primary fails", func(t *testing.T) {
		primary := &stubSender{result: false}
		secondary := &stubSender{result: true}
		sender := &FallbackSender{primary: primary, secondary: secondary, logger: zap.NewNop()}

		assert.True(t, sender.Send(context.Background(), Message{Template: TemplatePasswordReset}))
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 1, secondary.calls)
	})

	t.Run("reports failure when both fail", func(t *testing.T) {
		sender := &FallbackSender{
			primary:   &stubSender{result: false},
			secondary: &stubSender{result: false},
			logger:    zap.NewNop(),
		}
		assert.False(t, sender.Send(context.Background(), Message{Template: TemplatePasswordReset}))
	})
}

func TestNewSender(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns noop sender when disabled", func(t *testing.T) {
		sender, err := NewSender(config.MailConfig{Enabled: false}, logger)
		require.NoError(t, err)
		assert.IsType(t, &NoopSender{}, sender)
	})

	t.Run("selects sender by mode", func(t *testing.T) {
		cases := map[string]interface{}{
			"api":               &APISender{},
			"smtp":              &SMTPSender{},
			"api_with_fallback": &FallbackSender{},
		}
		for mode, want := range cases {
			sender, err := NewSender(config.MailConfig{Enabled: true, Mode: mode}, logger)
			require.NoError(t, err)
			assert.IsType(t, want, sender)
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := NewSender(config.MailConfig{Enabled: true, Mode: "pigeon"}, logger)
		require.Error(t, err)
	})
}
