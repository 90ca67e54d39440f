// Package mailer delivers transactional email for the storefront. The
// transport is plain SMTP; message bodies are rendered by the templates in
// order_email.go with every interpolated order field HTML-escaped.
package mailer

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"biovibe-backend/internal/config"
)

type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Mailer struct {
	host string
	port string
	user string
	pass string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.EmailUser,
		pass: cfg.EmailPass,
	}
}

// From is the sender identity used on every storefront email.
func (m *Mailer) From() string {
	return fmt.Sprintf("%q <%s>", "BioVibe Peptides", m.user)
}

// Send delivers the message. Credentials are checked here, not at startup:
// a missing mail account is a configuration fault surfaced on first send.
func (m *Mailer) Send(msg Message) error {
	if m.user == "" || m.pass == "" {
		return fmt.Errorf("mailer: EMAIL_USER/EMAIL_PASS not configured")
	}

	raw := BuildRaw(msg)
	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)

	// Implicit TLS on 465; smtp.SendMail negotiates STARTTLS on 587/25.
	if m.port == "465" {
		return m.sendTLS(addr, auth, msg.To, raw)
	}
	return smtp.SendMail(addr, auth, m.user, []string{msg.To}, raw)
}

func (m *Mailer) sendTLS(addr string, auth smtp.Auth, to string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("mailer: TLS dial: %w", err)
	}
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(m.user); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)
	return err
}

// BuildRaw assembles the RFC 2045 message bytes. Without attachments the
// body is a single text/html part; with them it is multipart/mixed with
// base64-encoded attachment parts.
func BuildRaw(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + msg.From + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("UTF-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
		b.WriteString("\r\n")
		b.WriteString(msg.HTML)
		return []byte(b.String())
	}

	const boundary = "biovibe-mail-boundary"
	b.WriteString("Content-Type: multipart/mixed; boundary=\"" + boundary + "\"\r\n")
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", contentType, att.Filename))
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", att.Filename))
		b.WriteString("\r\n")
		writeBase64(&b, att.Content)
		b.WriteString("\r\n")
	}
	b.WriteString("--" + boundary + "--\r\n")

	return []byte(b.String())
}

// writeBase64 encodes content wrapped at 76 characters per RFC 2045.
func writeBase64(b *strings.Builder, content []byte) {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	if len(encoded) > 0 {
		b.WriteString(encoded)
		b.WriteString("\r\n")
	}
}
