// internal/email/sendgrid.go
package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendgridSender delivers messages through the Sendgrid v3 mail API.
type sendgridSender struct {
	client *sendgrid.Client
}

func (g *sendgridSender) send(msg Message, htmlBody, textBody string) error {
	m := mail.NewSingleEmail(
		mail.NewEmail(msg.FromName, msg.From),
		msg.Subject,
		mail.NewEmail("", msg.To),
		textBody,
		htmlBody,
	)

	resp, err := g.client.Send(m)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	// The mail send endpoint acknowledges accepted messages with 202.
	if resp.StatusCode != 202 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
