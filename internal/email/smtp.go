// internal/email/smtp.go
package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"time"
)

// smtpSender delivers messages over plain SMTP as multipart/alternative,
// so clients without HTML rendering fall back to the text body.
type smtpSender struct {
	host     string
	port     int
	username string
	password string
}

func (m *smtpSender) send(msg Message, htmlBody, textBody string) error {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("From: %s <%s>\r\n", msg.FromName, msg.From))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	boundary := fmt.Sprintf("_MULTIPART_ALT_BOUNDARY_%d", time.Now().UnixNano())
	buf.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary))

	writePart(&buf, boundary, "text/plain", textBody)
	writePart(&buf, boundary, "text/html", htmlBody)
	buf.WriteString(fmt.Sprintf("\r\n--%s--", boundary))

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, buf.Bytes()); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func writePart(buf *bytes.Buffer, boundary, contentType, body string) {
	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString(fmt.Sprintf("Content-Type: %s; charset=utf-8\r\n", contentType))
	buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	buf.WriteString(base64.StdEncoding.EncodeToString([]byte(body)))
	buf.WriteString("\r\n\r\n")
}
