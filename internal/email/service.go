// internal/email/service.go
package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	platform "github.com/nexasuite/platform"
	"github.com/nexasuite/platform/internal/config"
	"github.com/sendgrid/sendgrid-go"
)

// Template names a notification kind. The set is closed: each constant maps
// to an html.tmpl/plaintext.tmpl pair under templates/emails, and a missing
// pair fails at construction rather than at send time.
type Template string

const (
	TemplateApprovalAssigned  Template = "approval_assigned"
	TemplateApprovalEscalated Template = "approval_escalated"
	TemplateApprovalDecided   Template = "approval_decided"
)

var allTemplates = []Template{
	TemplateApprovalAssigned,
	TemplateApprovalEscalated,
	TemplateApprovalDecided,
}

// Message is one outbound notification. From is optional and defaults to
// the transport's configured sender address.
type Message struct {
	To       string
	From     string
	FromName string
	Subject  string
	Template Template
	Data     any
}

// sender delivers a rendered message over one transport.
type sender interface {
	send(msg Message, htmlBody, textBody string) error
}

type templatePair struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// templateFuncs are the helpers available to every template body. Amounts
// are stored in minor units and deadlines as timestamps; turning them into
// display strings is the template's job, not the caller's.
var templateFuncs = map[string]any{
	"money": func(minor int64) string {
		return fmt.Sprintf("%.2f", float64(minor)/100)
	},
	"when": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("Jan 2, 2006 15:04 MST")
	},
}

// Service renders the embedded notification templates and hands the result
// to the configured transport.
type Service struct {
	from      string
	sender    sender
	templates map[Template]templatePair
}

// NewService picks the transport from the configuration: Sendgrid when an
// API key is set, plain SMTP when a host is, otherwise an error. Callers
// that want no email at all skip construction entirely.
func NewService(cfg *config.Config) (*Service, error) {
	s := &Service{templates: make(map[Template]templatePair, len(allTemplates))}

	switch {
	case cfg.Sendgrid.APIKey != "":
		s.from = cfg.Sendgrid.From
		s.sender = &sendgridSender{client: sendgrid.NewSendClient(cfg.Sendgrid.APIKey)}
	case cfg.SMTP.Host != "":
		s.from = cfg.SMTP.From
		s.sender = &smtpSender{
			host:     cfg.SMTP.Host,
			port:     cfg.SMTP.Port,
			username: cfg.SMTP.Username,
			password: cfg.SMTP.Password,
		}
	default:
		return nil, fmt.Errorf("no email transport configured")
	}

	for _, kind := range allTemplates {
		pair, err := parseTemplatePair(kind)
		if err != nil {
			return nil, err
		}
		s.templates[kind] = pair
	}
	return s, nil
}

func parseTemplatePair(kind Template) (templatePair, error) {
	dir := "templates/emails/" + string(kind)

	html, err := htmltemplate.New("html.tmpl").
		Funcs(templateFuncs).
		ParseFS(platform.EmailFS, dir+"/html.tmpl")
	if err != nil {
		return templatePair{}, fmt.Errorf("parsing %s html body: %w", kind, err)
	}

	text, err := texttemplate.New("plaintext.tmpl").
		Funcs(templateFuncs).
		ParseFS(platform.EmailFS, dir+"/plaintext.tmpl")
	if err != nil {
		return templatePair{}, fmt.Errorf("parsing %s text body: %w", kind, err)
	}

	return templatePair{html: html, text: text}, nil
}

// Send renders both bodies of a message and delivers it.
func (s *Service) Send(msg Message) error {
	pair, ok := s.templates[msg.Template]
	if !ok {
		return fmt.Errorf("unknown email template %q", msg.Template)
	}
	if msg.From == "" {
		msg.From = s.from
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := pair.html.Execute(&htmlBuf, msg.Data); err != nil {
		return fmt.Errorf("rendering %s html body: %w", msg.Template, err)
	}
	if err := pair.text.Execute(&textBuf, msg.Data); err != nil {
		return fmt.Errorf("rendering %s text body: %w", msg.Template, err)
	}

	return s.sender.send(msg, htmlBuf.String(), textBuf.String())
}
