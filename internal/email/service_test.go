// internal/email/service_test.go
package email

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexasuite/platform/internal/config"
)

func TestNewServicePicksTransport(t *testing.T) {
	t.Run("sendgrid when key set", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Sendgrid.APIKey = "SG.test"
		cfg.Sendgrid.From = "noreply@nexasuite.test"

		svc, err := NewService(cfg)
		require.NoError(t, err)
		assert.IsType(t, &sendgridSender{}, svc.sender)
		assert.Equal(t, "noreply@nexasuite.test", svc.from)
		assert.Len(t, svc.templates, len(allTemplates))
	})

	t.Run("smtp when only host set", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SMTP.Host = "mail.nexasuite.test"
		cfg.SMTP.Port = 587
		cfg.SMTP.From = "noreply@nexasuite.test"

		svc, err := NewService(cfg)
		require.NoError(t, err)
		assert.IsType(t, &smtpSender{}, svc.sender)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := NewService(&config.Config{})
		assert.Error(t, err)
	})
}

func TestTemplatesFormatRawValues(t *testing.T) {
	pair, err := parseTemplatePair(TemplateApprovalAssigned)
	require.NoError(t, err)

	deadline := time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC)
	data := struct {
		FirstName    string
		DocumentType string
		Amount       int64
		Link         string
		Deadline     *time.Time
	}{
		FirstName:    "Dana",
		DocumentType: "invoice",
		Amount:       1234550,
		Link:         "https://app.nexasuite.test/approvals/xyz",
		Deadline:     &deadline,
	}

	var html, text bytes.Buffer
	require.NoError(t, pair.html.Execute(&html, data))
	require.NoError(t, pair.text.Execute(&text, data))

	for name, body := range map[string]string{"html": html.String(), "text": text.String()} {
		assert.Contains(t, body, "12345.50", "%s body formats minor units", name)
		assert.Contains(t, body, "Mar 14, 2026 15:00 UTC", "%s body formats the deadline", name)
	}

	t.Run("no deadline omits the escalation note", func(t *testing.T) {
		data.Deadline = nil
		var text bytes.Buffer
		require.NoError(t, pair.text.Execute(&text, data))
		assert.NotContains(t, text.String(), "escalated")
	})
}

func TestSendRejectsUnknownTemplate(t *testing.T) {
	cfg := &config.Config{}
	cfg.SMTP.Host = "mail.nexasuite.test"
	svc, err := NewService(cfg)
	require.NoError(t, err)

	err = svc.Send(Message{To: "a@b.test", Template: Template("password_reset")})
	assert.ErrorContains(t, err, "unknown email template")
}
